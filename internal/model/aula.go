package model

// Aula aula física — tabla aulas
type Aula struct {
	ID        int64  `gorm:"primaryKey"                 json:"id"`
	Codigo    string `gorm:"type:varchar(20);not null;uniqueIndex" json:"codigo"`
	Capacidad int    `gorm:"not null"                   json:"capacidad"`
	Tipo      string `gorm:"type:varchar(30);not null"  json:"tipo"` // teorica | laboratorio | taller
	Ubicacion string `gorm:"type:varchar(150);not null" json:"ubicacion"`
	Activo    bool   `gorm:"not null;default:true"      json:"activo"`
	BaseModel
}

// TableName nombre de la tabla
func (Aula) TableName() string { return "aulas" }
