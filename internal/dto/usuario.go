package dto

// ── Módulo de usuarios, roles y permisos ──

// UpdateUsuarioRequest actualización de usuario
type UpdateUsuarioRequest struct {
	ID       int64  `json:"id"       binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Nombre   string `json:"nombre"   binding:"required,max=100"`
	Apellido string `json:"apellido" binding:"required,max=100"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Activo   *bool  `json:"activo"   binding:"required"`
}

// UsuarioResponse identidad de sesión: datos del usuario más los conjuntos
// planos de nombres de roles y permisos efectivos (unión sobre sus roles)
type UsuarioResponse struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Nombre   string   `json:"nombre"`
	Apellido string   `json:"apellido"`
	Email    string   `json:"email"`
	Activo   bool     `json:"activo"`
	Roles    []string `json:"roles"`
	Permisos []string `json:"permisos"`
}

// CreateRolRequest registro de rol
type CreateRolRequest struct {
	Nombre      string `json:"nombre"      binding:"required,max=50"`
	Descripcion string `json:"descripcion" binding:"max=300"`
}

// UpdateRolRequest actualización de rol
type UpdateRolRequest struct {
	ID          int64  `json:"id"          binding:"required"`
	Nombre      string `json:"nombre"      binding:"required,max=50"`
	Descripcion string `json:"descripcion" binding:"max=300"`
}

// RolResponse rol serializado
type RolResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CreatePermisoRequest registro de permiso
type CreatePermisoRequest struct {
	Nombre      string `json:"nombre"      binding:"required,max=50"`
	Descripcion string `json:"descripcion" binding:"max=300"`
}

// UpdatePermisoRequest actualización de permiso
type UpdatePermisoRequest struct {
	ID          int64  `json:"id"          binding:"required"`
	Nombre      string `json:"nombre"      binding:"required,max=50"`
	Descripcion string `json:"descripcion" binding:"max=300"`
}

// PermisoResponse permiso serializado
type PermisoResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// CreateUsuarioRolRequest asociación usuario × rol
type CreateUsuarioRolRequest struct {
	UsuarioID int64 `json:"usuario_id" binding:"required"`
	RolID     int64 `json:"rol_id"     binding:"required"`
}

// UpdateUsuarioRolRequest reasignación usuario × rol
type UpdateUsuarioRolRequest struct {
	ID        int64 `json:"id"         binding:"required"`
	UsuarioID int64 `json:"usuario_id" binding:"required"`
	RolID     int64 `json:"rol_id"     binding:"required"`
}

// UsuarioRolVista fila de la vista usuario × rol
type UsuarioRolVista struct {
	ID        int64  `json:"id"`
	UsuarioID int64  `json:"usuario_id"`
	Usuario   string `json:"usuario"`
	RolID     int64  `json:"rol_id"`
	Rol       string `json:"rol"`
}

// CreateRolPermisoRequest asociación rol × permiso
type CreateRolPermisoRequest struct {
	RolID     int64 `json:"rol_id"     binding:"required"`
	PermisoID int64 `json:"permiso_id" binding:"required"`
}

// UpdateRolPermisoRequest reasignación rol × permiso
type UpdateRolPermisoRequest struct {
	ID        int64 `json:"id"         binding:"required"`
	RolID     int64 `json:"rol_id"     binding:"required"`
	PermisoID int64 `json:"permiso_id" binding:"required"`
}

// RolPermisoVista fila de la vista rol × permiso
type RolPermisoVista struct {
	ID        int64  `json:"id"`
	RolID     int64  `json:"rol_id"`
	Rol       string `json:"rol"`
	PermisoID int64  `json:"permiso_id"`
	Permiso   string `json:"permiso"`
}
