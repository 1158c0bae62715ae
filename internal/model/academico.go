package model

// Trayecto nivel/cohorte de estudio — tabla trayectos
type Trayecto struct {
	ID          int64  `gorm:"primaryKey"                 json:"id"`
	Nombre      string `gorm:"type:varchar(100);not null" json:"nombre"`
	Descripcion string `gorm:"type:varchar(300);not null" json:"descripcion"`
	Activo      bool   `gorm:"not null;default:true"      json:"activo"`
	BaseModel
}

func (Trayecto) TableName() string { return "trayectos" }

// UnidadCurricular asignatura — tabla unidades_curriculares
type UnidadCurricular struct {
	ID             int64  `gorm:"primaryKey"                 json:"id"`
	Codigo         string `gorm:"type:varchar(20);not null;uniqueIndex" json:"codigo"`
	Nombre         string `gorm:"type:varchar(150);not null" json:"nombre"`
	Creditos       int    `gorm:"not null"                   json:"creditos"`
	HorasTeoricas  int    `gorm:"not null"                   json:"horas_teoricas"`
	HorasPracticas int    `gorm:"not null"                   json:"horas_practicas"`
	Descripcion    string `gorm:"type:varchar(300);not null" json:"descripcion"`
	Activo         bool   `gorm:"not null;default:true"      json:"activo"`
	BaseModel
}

func (UnidadCurricular) TableName() string { return "unidades_curriculares" }

// TrayectoUnidadCurricular asociación trayecto × unidad curricular.
// La unicidad del par la garantiza la base de datos.
type TrayectoUnidadCurricular struct {
	ID                 int64 `gorm:"primaryKey"          json:"id"`
	TrayectoID         int64 `gorm:"not null"            json:"trayecto_id"`
	UnidadCurricularID int64 `gorm:"not null;column:unidad_curricular_id" json:"unidad_curricular_id"`
	BaseModel

	Trayecto         *Trayecto         `gorm:"foreignKey:TrayectoID"         json:"trayecto,omitempty"`
	UnidadCurricular *UnidadCurricular `gorm:"foreignKey:UnidadCurricularID" json:"unidad_curricular,omitempty"`
}

func (TrayectoUnidadCurricular) TableName() string { return "trayectos_unidades_curriculares" }
