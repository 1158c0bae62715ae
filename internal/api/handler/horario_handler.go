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

// HorarioHandler módulo de horarios: la cuadrícula y sus asignaciones
type HorarioHandler struct {
	horarioSvc service.HorarioService
}

// NewHorarioHandler crea un HorarioHandler
func NewHorarioHandler(horarioSvc service.HorarioService) *HorarioHandler {
	return &HorarioHandler{horarioSvc: horarioSvc}
}

var camposHorario = []listquery.Campo[dto.HorarioVista]{
	{Clave: "id", Valor: func(v dto.HorarioVista) any { return v.ID }},
	{Clave: "unidad_curricular", Valor: func(v dto.HorarioVista) any { return v.UnidadCurricular }},
	{Clave: "trayecto", Valor: func(v dto.HorarioVista) any { return v.Trayecto }},
	{Clave: "dia", Valor: func(v dto.HorarioVista) any { return v.Dia }},
	{Clave: "bloque", Valor: func(v dto.HorarioVista) any { return v.Bloque }},
	{Clave: "aula", Valor: func(v dto.HorarioVista) any { return v.Aula }},
	{Clave: "profesor", Valor: func(v dto.HorarioVista) any { return v.Profesor }},
}

// Vista vista completa de horarios con etiquetas resueltas.
// Acepta ?profesor_id= para limitar a un profesor.
// GET /api/horarios/vista
func (h *HorarioHandler) Vista(c *gin.Context) {
	var (
		vistas []dto.HorarioVista
		err    error
	)
	if raw := c.Query("profesor_id"); raw != "" {
		profesorID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil || profesorID <= 0 {
			response.BadRequest(c, 10001, "identificador de profesor inválido")
			return
		}
		vistas, err = h.horarioSvc.ListByProfesor(c.Request.Context(), profesorID)
	} else {
		vistas, err = h.horarioSvc.List(c.Request.Context())
	}
	if err != nil {
		if errors.Is(err, service.ErrProfesorNotFound) {
			response.NotFound(c, 23001, "el profesor no existe")
			return
		}
		response.InternalError(c)
		return
	}
	responderLista(c, vistas, camposHorario)
}

// AulasDisponibles aulas candidatas para un día × bloque
// GET /api/horarios/aulas-disponibles?dia_semana_id=&bloque_horario_id=
func (h *HorarioHandler) AulasDisponibles(c *gin.Context) {
	diaID, err1 := strconv.ParseInt(c.Query("dia_semana_id"), 10, 64)
	bloqueID, err2 := strconv.ParseInt(c.Query("bloque_horario_id"), 10, 64)
	if err1 != nil || err2 != nil || diaID <= 0 || bloqueID <= 0 {
		response.BadRequest(c, 10001, "día y bloque son obligatorios")
		return
	}

	aulas, err := h.horarioSvc.AulasDisponibles(c.Request.Context(), diaID, bloqueID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDiaNotFound):
			response.NotFound(c, 25003, "el día no existe")
		case errors.Is(err, service.ErrBloqueNotFound):
			response.NotFound(c, 25001, "el bloque horario no existe")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, aulas)
}

// Registro asigna una celda de la cuadrícula
// POST /api/horarios/registro
func (h *HorarioHandler) Registro(c *gin.Context) {
	var req dto.CreateHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.horarioSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.responderError(c, err)
		return
	}
	response.Created(c, vista)
}

// Actualizar edita una asignación existente
// PUT /api/horarios/actualizar
func (h *HorarioHandler) Actualizar(c *gin.Context) {
	var req dto.UpdateHorarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.horarioSvc.Update(c.Request.Context(), &req)
	if err != nil {
		h.responderError(c, err)
		return
	}
	response.OK(c, vista)
}

// Eliminar elimina una asignación
// DELETE /api/horarios/eliminar/:id
func (h *HorarioHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.horarioSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrHorarioNotFound) {
			response.NotFound(c, 27001, "el horario no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

func (h *HorarioHandler) responderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHorarioNotFound):
		response.NotFound(c, 27001, "el horario no existe")
	case errors.Is(err, service.ErrProfesorNoDisponible):
		response.Conflict(c, 27002, "el profesor no está disponible en ese día y bloque")
	case errors.Is(err, service.ErrAulaNoDisponible):
		response.Conflict(c, 27003, "el aula no está disponible en ese día y bloque")
	case errors.Is(err, service.ErrProfesorOcupado):
		response.Conflict(c, 27004, "el profesor ya tiene una asignación en ese día y bloque")
	case errors.Is(err, service.ErrAulaOcupada):
		response.Conflict(c, 27005, "el aula ya tiene una asignación en ese día y bloque")
	case errors.Is(err, service.ErrTrayectoUnidadNotFound):
		response.NotFound(c, 24004, "la asociación trayecto-unidad no existe")
	case errors.Is(err, service.ErrDiaNotFound):
		response.NotFound(c, 25003, "el día no existe")
	case errors.Is(err, service.ErrBloqueNotFound):
		response.NotFound(c, 25001, "el bloque horario no existe")
	case errors.Is(err, service.ErrAulaNotFound):
		response.NotFound(c, 22001, "el aula no existe")
	case errors.Is(err, service.ErrProfesorNotFound):
		response.NotFound(c, 23001, "el profesor no existe")
	default:
		response.InternalError(c)
	}
}
