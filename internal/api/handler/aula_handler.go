package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// AulaHandler módulo de aulas
type AulaHandler struct {
	aulaSvc service.AulaService
}

// NewAulaHandler crea un AulaHandler
func NewAulaHandler(aulaSvc service.AulaService) *AulaHandler {
	return &AulaHandler{aulaSvc: aulaSvc}
}

var camposAula = []listquery.Campo[dto.AulaResponse]{
	{Clave: "id", Valor: func(a dto.AulaResponse) any { return a.ID }},
	{Clave: "codigo", Valor: func(a dto.AulaResponse) any { return a.Codigo }},
	{Clave: "capacidad", Valor: func(a dto.AulaResponse) any { return a.Capacidad }},
	{Clave: "tipo", Valor: func(a dto.AulaResponse) any { return a.Tipo }},
	{Clave: "ubicacion", Valor: func(a dto.AulaResponse) any { return a.Ubicacion }},
}

// Todas lista de aulas
// GET /api/aulas/todas
func (h *AulaHandler) Todas(c *gin.Context) {
	aulas, err := h.aulaSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, aulas, camposAula)
}

// Registro alta de aula
// POST /api/aulas/registro
func (h *AulaHandler) Registro(c *gin.Context) {
	var req dto.CreateAulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	aula, err := h.aulaSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCodigoAulaEnUso) {
			response.Conflict(c, 22002, "ya existe un aula con ese código")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, aula)
}

// Actualizar edición de aula
// PUT /api/aulas/actualizar
func (h *AulaHandler) Actualizar(c *gin.Context) {
	var req dto.UpdateAulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	aula, err := h.aulaSvc.Update(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAulaNotFound):
			response.NotFound(c, 22001, "el aula no existe")
		case errors.Is(err, service.ErrCodigoAulaEnUso):
			response.Conflict(c, 22002, "ya existe un aula con ese código")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, aula)
}

// Eliminar baja de aula
// DELETE /api/aulas/eliminar/:id
func (h *AulaHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.aulaSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAulaNotFound) {
			response.NotFound(c, 22001, "el aula no existe")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
