package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// TiempoHandler módulo del eje de tiempo: bloques horarios y días
type TiempoHandler struct {
	tiempoSvc service.TiempoService
}

// NewTiempoHandler crea un TiempoHandler
func NewTiempoHandler(tiempoSvc service.TiempoService) *TiempoHandler {
	return &TiempoHandler{tiempoSvc: tiempoSvc}
}

var camposBloque = []listquery.Campo[dto.BloqueResponse]{
	{Clave: "id", Valor: func(b dto.BloqueResponse) any { return b.ID }},
	{Clave: "nombre", Valor: func(b dto.BloqueResponse) any { return b.Nombre }},
	{Clave: "hora_inicio", Valor: func(b dto.BloqueResponse) any { return b.HoraInicio }},
}

var camposDia = []listquery.Campo[dto.DiaResponse]{
	{Clave: "id", Valor: func(d dto.DiaResponse) any { return d.ID }},
	{Clave: "nombre", Valor: func(d dto.DiaResponse) any { return d.Nombre }},
}

// ── Bloques horarios ──

// TodosBloques lista de bloques
// GET /api/bloques/todos
func (h *TiempoHandler) TodosBloques(c *gin.Context) {
	bloques, err := h.tiempoSvc.ListBloques(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, bloques, camposBloque)
}

// RegistroBloque alta de bloque
// POST /api/bloques/registro
func (h *TiempoHandler) RegistroBloque(c *gin.Context) {
	var req dto.CreateBloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	bloque, err := h.tiempoSvc.CreateBloque(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHoraInvalida), errors.Is(err, service.ErrRangoHoraInvalido):
			response.BadRequest(c, 25002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, bloque)
}

// ActualizarBloque edición de bloque
// PUT /api/bloques/actualizar
func (h *TiempoHandler) ActualizarBloque(c *gin.Context) {
	var req dto.UpdateBloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	bloque, err := h.tiempoSvc.UpdateBloque(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBloqueNotFound):
			response.NotFound(c, 25001, "el bloque horario no existe")
		case errors.Is(err, service.ErrHoraInvalida), errors.Is(err, service.ErrRangoHoraInvalido):
			response.BadRequest(c, 25002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, bloque)
}

// EliminarBloque baja de bloque
// DELETE /api/bloques/eliminar/:id
func (h *TiempoHandler) EliminarBloque(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.tiempoSvc.DeleteBloque(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrBloqueNotFound) {
			response.NotFound(c, 25001, "el bloque horario no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Días de la semana ──

// TodosDias lista de días
// GET /api/dias/todos
func (h *TiempoHandler) TodosDias(c *gin.Context) {
	dias, err := h.tiempoSvc.ListDias(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, dias, camposDia)
}

// RegistroDia alta de día
// POST /api/dias/registro
func (h *TiempoHandler) RegistroDia(c *gin.Context) {
	var req dto.CreateDiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	dia, err := h.tiempoSvc.CreateDia(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, dia)
}

// ActualizarDia edición de día
// PUT /api/dias/actualizar
func (h *TiempoHandler) ActualizarDia(c *gin.Context) {
	var req dto.UpdateDiaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	dia, err := h.tiempoSvc.UpdateDia(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDiaNotFound) {
			response.NotFound(c, 25003, "el día no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, dia)
}

// EliminarDia baja de día
// DELETE /api/dias/eliminar/:id
func (h *TiempoHandler) EliminarDia(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.tiempoSvc.DeleteDia(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDiaNotFound) {
			response.NotFound(c, 25003, "el día no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
