package dto

// ── Módulo de bloques horarios y días ──

// CreateBloqueRequest registro de bloque horario.
// Las horas se aceptan como "HH:MM" o "HH:MM:SS"; el servicio normaliza a segundos.
type CreateBloqueRequest struct {
	Nombre      string `json:"nombre"      binding:"required,max=50"`
	HoraInicio  string `json:"hora_inicio" binding:"required"`
	HoraFin     string `json:"hora_fin"    binding:"required"`
	Descripcion string `json:"descripcion" binding:"max=300"`
}

// UpdateBloqueRequest actualización de bloque horario
type UpdateBloqueRequest struct {
	ID          int64  `json:"id"          binding:"required"`
	Nombre      string `json:"nombre"      binding:"required,max=50"`
	HoraInicio  string `json:"hora_inicio" binding:"required"`
	HoraFin     string `json:"hora_fin"    binding:"required"`
	Descripcion string `json:"descripcion" binding:"max=300"`
	Activo      *bool  `json:"activo"      binding:"required"`
}

// BloqueResponse bloque horario serializado
type BloqueResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	HoraInicio  string `json:"hora_inicio"`
	HoraFin     string `json:"hora_fin"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}

// CreateDiaRequest registro de día de la semana
type CreateDiaRequest struct {
	Nombre      string `json:"nombre"      binding:"required,max=20"`
	Abreviatura string `json:"abreviatura" binding:"required,max=5"`
}

// UpdateDiaRequest actualización de día
type UpdateDiaRequest struct {
	ID          int64  `json:"id"          binding:"required"`
	Nombre      string `json:"nombre"      binding:"required,max=20"`
	Abreviatura string `json:"abreviatura" binding:"required,max=5"`
}

// DiaResponse día serializado
type DiaResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Abreviatura string `json:"abreviatura"`
}
