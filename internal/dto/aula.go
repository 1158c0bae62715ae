package dto

// ── Módulo de aulas ──

// CreateAulaRequest registro de aula
type CreateAulaRequest struct {
	Codigo    string `json:"codigo"    binding:"required,max=20"`
	Capacidad int    `json:"capacidad" binding:"required,min=1"`
	Tipo      string `json:"tipo"      binding:"required,oneof=teorica laboratorio taller"`
	Ubicacion string `json:"ubicacion" binding:"max=150"`
}

// UpdateAulaRequest actualización de aula (el id viaja en el cuerpo)
type UpdateAulaRequest struct {
	ID        int64  `json:"id"        binding:"required"`
	Codigo    string `json:"codigo"    binding:"required,max=20"`
	Capacidad int    `json:"capacidad" binding:"required,min=1"`
	Tipo      string `json:"tipo"      binding:"required,oneof=teorica laboratorio taller"`
	Ubicacion string `json:"ubicacion" binding:"max=150"`
	Activo    *bool  `json:"activo"    binding:"required"`
}

// AulaResponse aula serializada
type AulaResponse struct {
	ID        int64  `json:"id"`
	Codigo    string `json:"codigo"`
	Capacidad int    `json:"capacidad"`
	Tipo      string `json:"tipo"`
	Ubicacion string `json:"ubicacion"`
	Activo    bool   `json:"activo"`
}
