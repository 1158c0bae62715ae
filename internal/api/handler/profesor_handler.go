package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// ProfesorHandler módulo de profesores
type ProfesorHandler struct {
	profesorSvc service.ProfesorService
}

// NewProfesorHandler crea un ProfesorHandler
func NewProfesorHandler(profesorSvc service.ProfesorService) *ProfesorHandler {
	return &ProfesorHandler{profesorSvc: profesorSvc}
}

var camposProfesor = []listquery.Campo[dto.ProfesorResponse]{
	{Clave: "id", Valor: func(p dto.ProfesorResponse) any { return p.ID }},
	{Clave: "cedula", Valor: func(p dto.ProfesorResponse) any { return p.Cedula }},
	{Clave: "nombre", Valor: func(p dto.ProfesorResponse) any { return p.Nombre }},
	{Clave: "apellido", Valor: func(p dto.ProfesorResponse) any { return p.Apellido }},
	{Clave: "especialidad", Valor: func(p dto.ProfesorResponse) any { return p.Especialidad }},
}

// Todos lista de profesores
// GET /api/profesores/todos
func (h *ProfesorHandler) Todos(c *gin.Context) {
	profesores, err := h.profesorSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, profesores, camposProfesor)
}

// Registro alta de profesor
// POST /api/profesores/registro
func (h *ProfesorHandler) Registro(c *gin.Context) {
	var req dto.CreateProfesorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	profesor, err := h.profesorSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCedulaEnUso) {
			response.Conflict(c, 23002, "ya existe un profesor con esa cédula")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, profesor)
}

// Actualizar edición de profesor
// PUT /api/profesores/actualizar
func (h *ProfesorHandler) Actualizar(c *gin.Context) {
	var req dto.UpdateProfesorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	profesor, err := h.profesorSvc.Update(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfesorNotFound):
			response.NotFound(c, 23001, "el profesor no existe")
		case errors.Is(err, service.ErrCedulaEnUso):
			response.Conflict(c, 23002, "ya existe un profesor con esa cédula")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, profesor)
}

// Eliminar baja de profesor
// DELETE /api/profesores/eliminar/:id
func (h *ProfesorHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.profesorSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProfesorNotFound) {
			response.NotFound(c, 23001, "el profesor no existe")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
