package dto

// ── Módulo académico: trayectos, unidades curriculares y su asociación ──

// CreateTrayectoRequest registro de trayecto
type CreateTrayectoRequest struct {
	Nombre      string `json:"nombre"      binding:"required,max=100"`
	Descripcion string `json:"descripcion" binding:"max=300"`
}

// UpdateTrayectoRequest actualización de trayecto
type UpdateTrayectoRequest struct {
	ID          int64  `json:"id"          binding:"required"`
	Nombre      string `json:"nombre"      binding:"required,max=100"`
	Descripcion string `json:"descripcion" binding:"max=300"`
	Activo      *bool  `json:"activo"      binding:"required"`
}

// TrayectoResponse trayecto serializado
type TrayectoResponse struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Activo      bool   `json:"activo"`
}

// CreateUnidadCurricularRequest registro de unidad curricular
type CreateUnidadCurricularRequest struct {
	Codigo         string `json:"codigo"          binding:"required,max=20"`
	Nombre         string `json:"nombre"          binding:"required,max=150"`
	Creditos       int    `json:"creditos"        binding:"min=0"`
	HorasTeoricas  int    `json:"horas_teoricas"  binding:"min=0"`
	HorasPracticas int    `json:"horas_practicas" binding:"min=0"`
	Descripcion    string `json:"descripcion"     binding:"max=300"`
}

// UpdateUnidadCurricularRequest actualización de unidad curricular
type UpdateUnidadCurricularRequest struct {
	ID             int64  `json:"id"              binding:"required"`
	Codigo         string `json:"codigo"          binding:"required,max=20"`
	Nombre         string `json:"nombre"          binding:"required,max=150"`
	Creditos       int    `json:"creditos"        binding:"min=0"`
	HorasTeoricas  int    `json:"horas_teoricas"  binding:"min=0"`
	HorasPracticas int    `json:"horas_practicas" binding:"min=0"`
	Descripcion    string `json:"descripcion"     binding:"max=300"`
	Activo         *bool  `json:"activo"          binding:"required"`
}

// UnidadCurricularResponse unidad curricular serializada
type UnidadCurricularResponse struct {
	ID             int64  `json:"id"`
	Codigo         string `json:"codigo"`
	Nombre         string `json:"nombre"`
	Creditos       int    `json:"creditos"`
	HorasTeoricas  int    `json:"horas_teoricas"`
	HorasPracticas int    `json:"horas_practicas"`
	Descripcion    string `json:"descripcion"`
	Activo         bool   `json:"activo"`
}

// CreateTrayectoUnidadRequest asociación trayecto × unidad
type CreateTrayectoUnidadRequest struct {
	TrayectoID         int64 `json:"trayecto_id"          binding:"required"`
	UnidadCurricularID int64 `json:"unidad_curricular_id" binding:"required"`
}

// UpdateTrayectoUnidadRequest reasignación de la asociación
type UpdateTrayectoUnidadRequest struct {
	ID                 int64 `json:"id"                   binding:"required"`
	TrayectoID         int64 `json:"trayecto_id"          binding:"required"`
	UnidadCurricularID int64 `json:"unidad_curricular_id" binding:"required"`
}

// TrayectoUnidadVista fila de la vista trayecto × unidad con etiquetas legibles
type TrayectoUnidadVista struct {
	ID                 int64  `json:"id"`
	TrayectoID         int64  `json:"trayecto_id"`
	Trayecto           string `json:"trayecto"`
	UnidadCurricularID int64  `json:"unidad_curricular_id"`
	UnidadCurricular   string `json:"unidad_curricular"`
	CodigoUnidad       string `json:"codigo_unidad"`
}
