package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// DisponibilidadHandler módulo de disponibilidad de profesores y aulas
type DisponibilidadHandler struct {
	dispSvc service.DisponibilidadService
}

// NewDisponibilidadHandler crea un DisponibilidadHandler
func NewDisponibilidadHandler(dispSvc service.DisponibilidadService) *DisponibilidadHandler {
	return &DisponibilidadHandler{dispSvc: dispSvc}
}

var camposDispProfesor = []listquery.Campo[dto.DisponibilidadProfesorVista]{
	{Clave: "id", Valor: func(v dto.DisponibilidadProfesorVista) any { return v.ID }},
	{Clave: "profesor", Valor: func(v dto.DisponibilidadProfesorVista) any { return v.Profesor }},
	{Clave: "cedula", Valor: func(v dto.DisponibilidadProfesorVista) any { return v.Cedula }},
	{Clave: "dia", Valor: func(v dto.DisponibilidadProfesorVista) any { return v.Dia }},
	{Clave: "bloque", Valor: func(v dto.DisponibilidadProfesorVista) any { return v.Bloque }},
}

var camposDispAula = []listquery.Campo[dto.DisponibilidadAulaVista]{
	{Clave: "id", Valor: func(v dto.DisponibilidadAulaVista) any { return v.ID }},
	{Clave: "aula", Valor: func(v dto.DisponibilidadAulaVista) any { return v.Aula }},
	{Clave: "dia", Valor: func(v dto.DisponibilidadAulaVista) any { return v.Dia }},
	{Clave: "bloque", Valor: func(v dto.DisponibilidadAulaVista) any { return v.Bloque }},
}

// ── Disponibilidad de profesores ──

// VistaProfesores vista de disponibilidad de profesores
// GET /api/disponibilidad-profesores/vista
func (h *DisponibilidadHandler) VistaProfesores(c *gin.Context) {
	vistas, err := h.dispSvc.ListProfesores(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, vistas, camposDispProfesor)
}

// RegistroProfesor alta de disponibilidad de profesor
// POST /api/disponibilidad-profesores/registro
func (h *DisponibilidadHandler) RegistroProfesor(c *gin.Context) {
	var req dto.CreateDisponibilidadProfesorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.dispSvc.CreateProfesor(c.Request.Context(), &req)
	if err != nil {
		h.responderErrorProfesor(c, err)
		return
	}
	response.Created(c, vista)
}

// ActualizarProfesor edición de disponibilidad de profesor
// PUT /api/disponibilidad-profesores/actualizar
func (h *DisponibilidadHandler) ActualizarProfesor(c *gin.Context) {
	var req dto.UpdateDisponibilidadProfesorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.dispSvc.UpdateProfesor(c.Request.Context(), &req)
	if err != nil {
		h.responderErrorProfesor(c, err)
		return
	}
	response.OK(c, vista)
}

// EliminarProfesor baja de disponibilidad de profesor
// DELETE /api/disponibilidad-profesores/eliminar/:id
func (h *DisponibilidadHandler) EliminarProfesor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.dispSvc.DeleteProfesor(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDisponibilidadNotFound) {
			response.NotFound(c, 26001, "el registro de disponibilidad no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

func (h *DisponibilidadHandler) responderErrorProfesor(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDisponibilidadNotFound):
		response.NotFound(c, 26001, "el registro de disponibilidad no existe")
	case errors.Is(err, service.ErrProfesorNotFound):
		response.NotFound(c, 23001, "el profesor no existe")
	case errors.Is(err, service.ErrDiaNotFound):
		response.NotFound(c, 25003, "el día no existe")
	case errors.Is(err, service.ErrBloqueNotFound):
		response.NotFound(c, 25001, "el bloque horario no existe")
	case errors.Is(err, service.ErrCupoDuplicado):
		response.Conflict(c, 26002, "ya existe un registro para ese cupo")
	default:
		response.InternalError(c)
	}
}

// ── Disponibilidad de aulas ──

// VistaAulas vista de disponibilidad de aulas
// GET /api/disponibilidad-aulas/vista
func (h *DisponibilidadHandler) VistaAulas(c *gin.Context) {
	vistas, err := h.dispSvc.ListAulas(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, vistas, camposDispAula)
}

// RegistroAula alta de disponibilidad de aula
// POST /api/disponibilidad-aulas/registro
func (h *DisponibilidadHandler) RegistroAula(c *gin.Context) {
	var req dto.CreateDisponibilidadAulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.dispSvc.CreateAula(c.Request.Context(), &req)
	if err != nil {
		h.responderErrorAula(c, err)
		return
	}
	response.Created(c, vista)
}

// ActualizarAula edición de disponibilidad de aula
// PUT /api/disponibilidad-aulas/actualizar
func (h *DisponibilidadHandler) ActualizarAula(c *gin.Context) {
	var req dto.UpdateDisponibilidadAulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.dispSvc.UpdateAula(c.Request.Context(), &req)
	if err != nil {
		h.responderErrorAula(c, err)
		return
	}
	response.OK(c, vista)
}

// EliminarAula baja de disponibilidad de aula
// DELETE /api/disponibilidad-aulas/eliminar/:id
func (h *DisponibilidadHandler) EliminarAula(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.dispSvc.DeleteAula(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDisponibilidadNotFound) {
			response.NotFound(c, 26001, "el registro de disponibilidad no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

func (h *DisponibilidadHandler) responderErrorAula(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDisponibilidadNotFound):
		response.NotFound(c, 26001, "el registro de disponibilidad no existe")
	case errors.Is(err, service.ErrAulaNotFound):
		response.NotFound(c, 22001, "el aula no existe")
	case errors.Is(err, service.ErrDiaNotFound):
		response.NotFound(c, 25003, "el día no existe")
	case errors.Is(err, service.ErrBloqueNotFound):
		response.NotFound(c, 25001, "el bloque horario no existe")
	case errors.Is(err, service.ErrCupoDuplicado):
		response.Conflict(c, 26002, "ya existe un registro para ese cupo")
	default:
		response.InternalError(c)
	}
}
