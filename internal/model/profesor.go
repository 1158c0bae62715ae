package model

// Profesor docente — tabla profesores
type Profesor struct {
	ID           int64  `gorm:"primaryKey"                 json:"id"`
	Cedula       string `gorm:"type:varchar(20);not null;uniqueIndex" json:"cedula"`
	Nombre       string `gorm:"type:varchar(100);not null" json:"nombre"`
	Apellido     string `gorm:"type:varchar(100);not null" json:"apellido"`
	Email        string `gorm:"type:varchar(255);not null" json:"email"`
	Telefono     string `gorm:"type:varchar(30);not null"  json:"telefono"`
	Especialidad string `gorm:"type:varchar(150);not null" json:"especialidad"`
	Activo       bool   `gorm:"not null;default:true"      json:"activo"`
	BaseModel
}

// TableName nombre de la tabla
func (Profesor) TableName() string { return "profesores" }
