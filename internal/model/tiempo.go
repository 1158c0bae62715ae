package model

// BloqueHorario intervalo de reloj del eje de tiempo — tabla bloques_horarios.
// Las horas viajan como "HH:MM:SS" aunque la UI edita con resolución de minutos.
type BloqueHorario struct {
	ID          int64  `gorm:"primaryKey"                 json:"id"`
	Nombre      string `gorm:"type:varchar(50);not null"  json:"nombre"`
	HoraInicio  string `gorm:"type:time;not null"         json:"hora_inicio"`
	HoraFin     string `gorm:"type:time;not null"         json:"hora_fin"`
	Descripcion string `gorm:"type:varchar(300);not null" json:"descripcion"`
	Activo      bool   `gorm:"not null;default:true"      json:"activo"`
	BaseModel
}

func (BloqueHorario) TableName() string { return "bloques_horarios" }

// DiaSemana día de la semana — tabla dias_semana
type DiaSemana struct {
	ID          int64  `gorm:"primaryKey"                json:"id"`
	Nombre      string `gorm:"type:varchar(20);not null;uniqueIndex" json:"nombre"`
	Abreviatura string `gorm:"type:varchar(5);not null"  json:"abreviatura"`
	BaseModel
}

func (DiaSemana) TableName() string { return "dias_semana" }
