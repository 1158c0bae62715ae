package dto

// ── Módulo de disponibilidad ──

// CreateDisponibilidadProfesorRequest alta de disponibilidad de profesor
type CreateDisponibilidadProfesorRequest struct {
	ProfesorID      int64 `json:"profesor_id"       binding:"required"`
	DiaSemanaID     int64 `json:"dia_semana_id"     binding:"required"`
	BloqueHorarioID int64 `json:"bloque_horario_id" binding:"required"`
	Disponible      *bool `json:"disponible"        binding:"required"`
}

// UpdateDisponibilidadProfesorRequest actualización de disponibilidad de profesor
type UpdateDisponibilidadProfesorRequest struct {
	ID              int64 `json:"id"                binding:"required"`
	ProfesorID      int64 `json:"profesor_id"       binding:"required"`
	DiaSemanaID     int64 `json:"dia_semana_id"     binding:"required"`
	BloqueHorarioID int64 `json:"bloque_horario_id" binding:"required"`
	Disponible      *bool `json:"disponible"        binding:"required"`
}

// DisponibilidadProfesorVista fila de la vista con etiquetas legibles
// (nombres de profesor, día y bloque resueltos por el servidor)
type DisponibilidadProfesorVista struct {
	ID              int64  `json:"id"`
	ProfesorID      int64  `json:"profesor_id"`
	Profesor        string `json:"profesor"`
	Cedula          string `json:"cedula"`
	DiaSemanaID     int64  `json:"dia_semana_id"`
	Dia             string `json:"dia"`
	BloqueHorarioID int64  `json:"bloque_horario_id"`
	Bloque          string `json:"bloque"`
	HoraInicio      string `json:"hora_inicio"`
	HoraFin         string `json:"hora_fin"`
	Disponible      bool   `json:"disponible"`
}

// CreateDisponibilidadAulaRequest alta de disponibilidad de aula
type CreateDisponibilidadAulaRequest struct {
	AulaID          int64 `json:"aula_id"           binding:"required"`
	DiaSemanaID     int64 `json:"dia_semana_id"     binding:"required"`
	BloqueHorarioID int64 `json:"bloque_horario_id" binding:"required"`
	Disponible      *bool `json:"disponible"        binding:"required"`
}

// UpdateDisponibilidadAulaRequest actualización de disponibilidad de aula
type UpdateDisponibilidadAulaRequest struct {
	ID              int64 `json:"id"                binding:"required"`
	AulaID          int64 `json:"aula_id"           binding:"required"`
	DiaSemanaID     int64 `json:"dia_semana_id"     binding:"required"`
	BloqueHorarioID int64 `json:"bloque_horario_id" binding:"required"`
	Disponible      *bool `json:"disponible"        binding:"required"`
}

// DisponibilidadAulaVista fila de la vista con etiquetas legibles
type DisponibilidadAulaVista struct {
	ID              int64  `json:"id"`
	AulaID          int64  `json:"aula_id"`
	Aula            string `json:"aula"`
	DiaSemanaID     int64  `json:"dia_semana_id"`
	Dia             string `json:"dia"`
	BloqueHorarioID int64  `json:"bloque_horario_id"`
	Bloque          string `json:"bloque"`
	HoraInicio      string `json:"hora_inicio"`
	HoraFin         string `json:"hora_fin"`
	Disponible      bool   `json:"disponible"`
}
