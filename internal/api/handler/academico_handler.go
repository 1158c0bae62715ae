package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// AcademicoHandler módulo académico: trayectos, unidades y su malla
type AcademicoHandler struct {
	academicoSvc service.AcademicoService
}

// NewAcademicoHandler crea un AcademicoHandler
func NewAcademicoHandler(academicoSvc service.AcademicoService) *AcademicoHandler {
	return &AcademicoHandler{academicoSvc: academicoSvc}
}

var camposTrayecto = []listquery.Campo[dto.TrayectoResponse]{
	{Clave: "id", Valor: func(t dto.TrayectoResponse) any { return t.ID }},
	{Clave: "nombre", Valor: func(t dto.TrayectoResponse) any { return t.Nombre }},
}

var camposUnidad = []listquery.Campo[dto.UnidadCurricularResponse]{
	{Clave: "id", Valor: func(u dto.UnidadCurricularResponse) any { return u.ID }},
	{Clave: "codigo", Valor: func(u dto.UnidadCurricularResponse) any { return u.Codigo }},
	{Clave: "nombre", Valor: func(u dto.UnidadCurricularResponse) any { return u.Nombre }},
	{Clave: "creditos", Valor: func(u dto.UnidadCurricularResponse) any { return u.Creditos }},
}

var camposTrayectoUnidad = []listquery.Campo[dto.TrayectoUnidadVista]{
	{Clave: "id", Valor: func(tu dto.TrayectoUnidadVista) any { return tu.ID }},
	{Clave: "trayecto", Valor: func(tu dto.TrayectoUnidadVista) any { return tu.Trayecto }},
	{Clave: "unidad_curricular", Valor: func(tu dto.TrayectoUnidadVista) any { return tu.UnidadCurricular }},
	{Clave: "codigo_unidad", Valor: func(tu dto.TrayectoUnidadVista) any { return tu.CodigoUnidad }},
}

// ── Trayectos ──

// TodosTrayectos lista de trayectos
// GET /api/trayectos/todos
func (h *AcademicoHandler) TodosTrayectos(c *gin.Context) {
	trayectos, err := h.academicoSvc.ListTrayectos(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, trayectos, camposTrayecto)
}

// RegistroTrayecto alta de trayecto
// POST /api/trayectos/registro
func (h *AcademicoHandler) RegistroTrayecto(c *gin.Context) {
	var req dto.CreateTrayectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	trayecto, err := h.academicoSvc.CreateTrayecto(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, trayecto)
}

// ActualizarTrayecto edición de trayecto
// PUT /api/trayectos/actualizar
func (h *AcademicoHandler) ActualizarTrayecto(c *gin.Context) {
	var req dto.UpdateTrayectoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	trayecto, err := h.academicoSvc.UpdateTrayecto(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrTrayectoNotFound) {
			response.NotFound(c, 24001, "el trayecto no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, trayecto)
}

// EliminarTrayecto baja de trayecto
// DELETE /api/trayectos/eliminar/:id
func (h *AcademicoHandler) EliminarTrayecto(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.academicoSvc.DeleteTrayecto(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTrayectoNotFound) {
			response.NotFound(c, 24001, "el trayecto no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Unidades curriculares ──

// TodasUnidades lista de unidades curriculares
// GET /api/unidades-curriculares/todas
func (h *AcademicoHandler) TodasUnidades(c *gin.Context) {
	unidades, err := h.academicoSvc.ListUnidades(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, unidades, camposUnidad)
}

// RegistroUnidad alta de unidad curricular
// POST /api/unidades-curriculares/registro
func (h *AcademicoHandler) RegistroUnidad(c *gin.Context) {
	var req dto.CreateUnidadCurricularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	unidad, err := h.academicoSvc.CreateUnidad(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCodigoUnidadEnUso) {
			response.Conflict(c, 24003, "ya existe una unidad curricular con ese código")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, unidad)
}

// ActualizarUnidad edición de unidad curricular
// PUT /api/unidades-curriculares/actualizar
func (h *AcademicoHandler) ActualizarUnidad(c *gin.Context) {
	var req dto.UpdateUnidadCurricularRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	unidad, err := h.academicoSvc.UpdateUnidad(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnidadNotFound):
			response.NotFound(c, 24002, "la unidad curricular no existe")
		case errors.Is(err, service.ErrCodigoUnidadEnUso):
			response.Conflict(c, 24003, "ya existe una unidad curricular con ese código")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, unidad)
}

// EliminarUnidad baja de unidad curricular
// DELETE /api/unidades-curriculares/eliminar/:id
func (h *AcademicoHandler) EliminarUnidad(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.academicoSvc.DeleteUnidad(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUnidadNotFound) {
			response.NotFound(c, 24002, "la unidad curricular no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Asociación trayecto × unidad ──

// VistaTrayectoUnidades vista de la malla con etiquetas resueltas.
// Acepta ?trayecto_id= para filtrar por trayecto.
// GET /api/trayectos-unidades/vista
func (h *AcademicoHandler) VistaTrayectoUnidades(c *gin.Context) {
	var (
		vistas []dto.TrayectoUnidadVista
		err    error
	)
	if raw := c.Query("trayecto_id"); raw != "" {
		trayectoID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || trayectoID <= 0 {
			response.BadRequest(c, 10001, "identificador de trayecto inválido")
			return
		}
		vistas, err = h.academicoSvc.ListTrayectoUnidadesPorTrayecto(c.Request.Context(), trayectoID)
	} else {
		vistas, err = h.academicoSvc.ListTrayectoUnidades(c.Request.Context())
	}
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, vistas, camposTrayectoUnidad)
}

// RegistroTrayectoUnidad asocia una unidad a un trayecto
// POST /api/trayectos-unidades/registro
func (h *AcademicoHandler) RegistroTrayectoUnidad(c *gin.Context) {
	var req dto.CreateTrayectoUnidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.academicoSvc.CreateTrayectoUnidad(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrayectoNotFound):
			response.NotFound(c, 24001, "el trayecto no existe")
		case errors.Is(err, service.ErrUnidadNotFound):
			response.NotFound(c, 24002, "la unidad curricular no existe")
		case errors.Is(err, service.ErrTrayectoUnidadDuplica):
			response.Conflict(c, 24005, "la unidad ya está asociada a ese trayecto")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, vista)
}

// ActualizarTrayectoUnidad reasigna la asociación
// PUT /api/trayectos-unidades/actualizar
func (h *AcademicoHandler) ActualizarTrayectoUnidad(c *gin.Context) {
	var req dto.UpdateTrayectoUnidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.academicoSvc.UpdateTrayectoUnidad(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrayectoUnidadNotFound):
			response.NotFound(c, 24004, "la asociación no existe")
		case errors.Is(err, service.ErrTrayectoNotFound):
			response.NotFound(c, 24001, "el trayecto no existe")
		case errors.Is(err, service.ErrUnidadNotFound):
			response.NotFound(c, 24002, "la unidad curricular no existe")
		case errors.Is(err, service.ErrTrayectoUnidadDuplica):
			response.Conflict(c, 24005, "la unidad ya está asociada a ese trayecto")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, vista)
}

// EliminarTrayectoUnidad elimina la asociación
// DELETE /api/trayectos-unidades/eliminar/:id
func (h *AcademicoHandler) EliminarTrayectoUnidad(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.academicoSvc.DeleteTrayectoUnidad(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTrayectoUnidadNotFound) {
			response.NotFound(c, 24004, "la asociación no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
