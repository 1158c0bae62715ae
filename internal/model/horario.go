package model

// Horario asignación confirmada: unidad de un trayecto × día × bloque × aula × profesor.
// Tabla horarios. Color es un hex "#RRGGBB"; vacío indica que la vista debe
// derivar un color determinista del nombre de la unidad.
type Horario struct {
	ID                         int64  `gorm:"primaryKey"            json:"id"`
	TrayectoUnidadCurricularID int64  `gorm:"not null;column:trayecto_unidad_curricular_id" json:"trayecto_unidad_curricular_id"`
	DiaSemanaID                int64  `gorm:"not null"              json:"dia_semana_id"`
	BloqueHorarioID            int64  `gorm:"not null"              json:"bloque_horario_id"`
	AulaID                     int64  `gorm:"not null"              json:"aula_id"`
	ProfesorID                 int64  `gorm:"not null"              json:"profesor_id"`
	Color                      string `gorm:"type:varchar(7)"       json:"color"`
	Activo                     bool   `gorm:"not null;default:true" json:"activo"`
	BaseModel

	TrayectoUnidadCurricular *TrayectoUnidadCurricular `gorm:"foreignKey:TrayectoUnidadCurricularID" json:"trayecto_unidad_curricular,omitempty"`
	DiaSemana                *DiaSemana                `gorm:"foreignKey:DiaSemanaID"                json:"dia_semana,omitempty"`
	BloqueHorario            *BloqueHorario            `gorm:"foreignKey:BloqueHorarioID"            json:"bloque_horario,omitempty"`
	Aula                     *Aula                     `gorm:"foreignKey:AulaID"                     json:"aula,omitempty"`
	Profesor                 *Profesor                 `gorm:"foreignKey:ProfesorID"                 json:"profesor,omitempty"`
}

func (Horario) TableName() string { return "horarios" }
