package model

// DisponibilidadProfesor registro profesor × día × bloque — tabla disponibilidad_profesores.
// Solo las filas con Disponible=true habilitan asignaciones en ese cupo.
type DisponibilidadProfesor struct {
	ID              int64 `gorm:"primaryKey"                      json:"id"`
	ProfesorID      int64 `gorm:"not null"                        json:"profesor_id"`
	DiaSemanaID     int64 `gorm:"not null"                        json:"dia_semana_id"`
	BloqueHorarioID int64 `gorm:"not null"                        json:"bloque_horario_id"`
	Disponible      bool  `gorm:"not null;default:true"           json:"disponible"`
	BaseModel

	Profesor      *Profesor      `gorm:"foreignKey:ProfesorID"      json:"profesor,omitempty"`
	DiaSemana     *DiaSemana     `gorm:"foreignKey:DiaSemanaID"     json:"dia_semana,omitempty"`
	BloqueHorario *BloqueHorario `gorm:"foreignKey:BloqueHorarioID" json:"bloque_horario,omitempty"`
}

func (DisponibilidadProfesor) TableName() string { return "disponibilidad_profesores" }

// DisponibilidadAula registro aula × día × bloque — tabla disponibilidad_aulas
type DisponibilidadAula struct {
	ID              int64 `gorm:"primaryKey"            json:"id"`
	AulaID          int64 `gorm:"not null"              json:"aula_id"`
	DiaSemanaID     int64 `gorm:"not null"              json:"dia_semana_id"`
	BloqueHorarioID int64 `gorm:"not null"              json:"bloque_horario_id"`
	Disponible      bool  `gorm:"not null;default:true" json:"disponible"`
	BaseModel

	Aula          *Aula          `gorm:"foreignKey:AulaID"          json:"aula,omitempty"`
	DiaSemana     *DiaSemana     `gorm:"foreignKey:DiaSemanaID"     json:"dia_semana,omitempty"`
	BloqueHorario *BloqueHorario `gorm:"foreignKey:BloqueHorarioID" json:"bloque_horario,omitempty"`
}

func (DisponibilidadAula) TableName() string { return "disponibilidad_aulas" }
