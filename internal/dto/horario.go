package dto

// ── Módulo de horarios ──

// CreateHorarioRequest asignación de una celda (día × bloque) de la cuadrícula
type CreateHorarioRequest struct {
	TrayectoUnidadCurricularID int64  `json:"trayecto_unidad_curricular_id" binding:"required"`
	DiaSemanaID                int64  `json:"dia_semana_id"                 binding:"required"`
	BloqueHorarioID            int64  `json:"bloque_horario_id"             binding:"required"`
	AulaID                     int64  `json:"aula_id"                       binding:"required"`
	ProfesorID                 int64  `json:"profesor_id"                   binding:"required"`
	Color                      string `json:"color"                         binding:"omitempty,hexcolor"`
}

// UpdateHorarioRequest edición de una asignación existente.
// Día, bloque y profesor son inmutables en el flujo de edición: solo cambian
// unidad, aula, color y estado.
type UpdateHorarioRequest struct {
	ID                         int64  `json:"id"                            binding:"required"`
	TrayectoUnidadCurricularID int64  `json:"trayecto_unidad_curricular_id" binding:"required"`
	AulaID                     int64  `json:"aula_id"                       binding:"required"`
	Color                      string `json:"color"                         binding:"omitempty,hexcolor"`
	Activo                     *bool  `json:"activo"                        binding:"required"`
}

// HorarioVista fila de la vista de horarios con todas las etiquetas resueltas
type HorarioVista struct {
	ID                         int64  `json:"id"`
	TrayectoUnidadCurricularID int64  `json:"trayecto_unidad_curricular_id"`
	UnidadCurricular           string `json:"unidad_curricular"`
	CodigoUnidad               string `json:"codigo_unidad"`
	Trayecto                   string `json:"trayecto"`
	DiaSemanaID                int64  `json:"dia_semana_id"`
	Dia                        string `json:"dia"`
	BloqueHorarioID            int64  `json:"bloque_horario_id"`
	Bloque                     string `json:"bloque"`
	HoraInicio                 string `json:"hora_inicio"`
	HoraFin                    string `json:"hora_fin"`
	AulaID                     int64  `json:"aula_id"`
	Aula                       string `json:"aula"`
	ProfesorID                 int64  `json:"profesor_id"`
	Profesor                   string `json:"profesor"`
	Color                      string `json:"color"`
	Activo                     bool   `json:"activo"`
}
