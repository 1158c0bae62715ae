package dto

// ── Módulo de profesores ──

// CreateProfesorRequest registro de profesor
type CreateProfesorRequest struct {
	Cedula       string `json:"cedula"       binding:"required,max=20"`
	Nombre       string `json:"nombre"       binding:"required,max=100"`
	Apellido     string `json:"apellido"     binding:"required,max=100"`
	Email        string `json:"email"        binding:"omitempty,email"`
	Telefono     string `json:"telefono"     binding:"max=30"`
	Especialidad string `json:"especialidad" binding:"max=150"`
}

// UpdateProfesorRequest actualización de profesor
type UpdateProfesorRequest struct {
	ID           int64  `json:"id"           binding:"required"`
	Cedula       string `json:"cedula"       binding:"required,max=20"`
	Nombre       string `json:"nombre"       binding:"required,max=100"`
	Apellido     string `json:"apellido"     binding:"required,max=100"`
	Email        string `json:"email"        binding:"omitempty,email"`
	Telefono     string `json:"telefono"     binding:"max=30"`
	Especialidad string `json:"especialidad" binding:"max=150"`
	Activo       *bool  `json:"activo"       binding:"required"`
}

// ProfesorResponse profesor serializado
type ProfesorResponse struct {
	ID           int64  `json:"id"`
	Cedula       string `json:"cedula"`
	Nombre       string `json:"nombre"`
	Apellido     string `json:"apellido"`
	Email        string `json:"email"`
	Telefono     string `json:"telefono"`
	Especialidad string `json:"especialidad"`
	Activo       bool   `json:"activo"`
}
