package model

// Usuario cuenta del sistema — tabla usuarios
type Usuario struct {
	ID           int64  `gorm:"primaryKey"                 json:"id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Nombre       string `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido     string `gorm:"type:varchar(100);not null" json:"apellido"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	Activo       bool   `gorm:"not null;default:true"      json:"activo"`
	BaseModel

	Roles []Rol `gorm:"many2many:usuarios_roles;joinForeignKey:usuario_id;joinReferences:rol_id" json:"roles,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }

// Rol rol RBAC — tabla roles
type Rol struct {
	ID          int64  `gorm:"primaryKey"                 json:"id"`
	Nombre      string `gorm:"type:varchar(50);not null;uniqueIndex" json:"nombre"`
	Descripcion string `gorm:"type:varchar(300);not null" json:"descripcion"`
	BaseModel

	Permisos []Permiso `gorm:"many2many:roles_permisos;joinForeignKey:rol_id;joinReferences:permiso_id" json:"permisos,omitempty"`
}

func (Rol) TableName() string { return "roles" }

// Permiso permiso RBAC — tabla permisos
type Permiso struct {
	ID          int64  `gorm:"primaryKey"                 json:"id"`
	Nombre      string `gorm:"type:varchar(50);not null;uniqueIndex" json:"nombre"`
	Descripcion string `gorm:"type:varchar(300);not null" json:"descripcion"`
	BaseModel
}

func (Permiso) TableName() string { return "permisos" }

// UsuarioRol fila de la tabla de unión usuarios_roles
type UsuarioRol struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	UsuarioID int64 `gorm:"not null"   json:"usuario_id"`
	RolID     int64 `gorm:"not null"   json:"rol_id"`
	BaseModel

	Usuario *Usuario `gorm:"foreignKey:UsuarioID" json:"usuario,omitempty"`
	Rol     *Rol     `gorm:"foreignKey:RolID"     json:"rol,omitempty"`
}

func (UsuarioRol) TableName() string { return "usuarios_roles" }

// RolPermiso fila de la tabla de unión roles_permisos
type RolPermiso struct {
	ID        int64 `gorm:"primaryKey" json:"id"`
	RolID     int64 `gorm:"not null"   json:"rol_id"`
	PermisoID int64 `gorm:"not null"   json:"permiso_id"`
	BaseModel

	Rol     *Rol     `gorm:"foreignKey:RolID"     json:"rol,omitempty"`
	Permiso *Permiso `gorm:"foreignKey:PermisoID" json:"permiso,omitempty"`
}

func (RolPermiso) TableName() string { return "roles_permisos" }

// PermisosEfectivos unión de los permisos de todos los roles del usuario,
// como lista plana de nombres sin duplicados.
func (u *Usuario) PermisosEfectivos() []string {
	seen := make(map[string]bool)
	var permisos []string
	for _, rol := range u.Roles {
		for _, p := range rol.Permisos {
			if !seen[p.Nombre] {
				seen[p.Nombre] = true
				permisos = append(permisos, p.Nombre)
			}
		}
	}
	return permisos
}

// NombresRoles lista plana de nombres de los roles asignados
func (u *Usuario) NombresRoles() []string {
	nombres := make([]string, 0, len(u.Roles))
	for _, rol := range u.Roles {
		nombres = append(nombres, rol.Nombre)
	}
	return nombres
}
