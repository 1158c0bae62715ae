package dto

// ── Módulo de autenticación ──

// LoginRequest credenciales de inicio de sesión
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse token de sesión emitido.
// El cuerpo expone solo {token}; la identidad se obtiene luego con /usuarios/:id
// usando el subject decodificado del token.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegistroUsuarioRequest alta de usuario (POST /api/auth/registro)
type RegistroUsuarioRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Nombre   string `json:"nombre"   binding:"required,max=100"`
	Apellido string `json:"apellido" binding:"required,max=100"`
	Email    string `json:"email"    binding:"omitempty,email"`
}
