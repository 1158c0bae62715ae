package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// UsuarioHandler módulo de usuarios
type UsuarioHandler struct {
	usuarioSvc service.UsuarioService
}

// NewUsuarioHandler crea un UsuarioHandler
func NewUsuarioHandler(usuarioSvc service.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioSvc: usuarioSvc}
}

var camposUsuario = []listquery.Campo[dto.UsuarioResponse]{
	{Clave: "id", Valor: func(u dto.UsuarioResponse) any { return u.ID }},
	{Clave: "username", Valor: func(u dto.UsuarioResponse) any { return u.Username }},
	{Clave: "nombre", Valor: func(u dto.UsuarioResponse) any { return u.Nombre }},
	{Clave: "apellido", Valor: func(u dto.UsuarioResponse) any { return u.Apellido }},
	{Clave: "email", Valor: func(u dto.UsuarioResponse) any { return u.Email }},
}

// Perfil identidad del usuario autenticado
// GET /api/usuarios/perfil
func (h *UsuarioHandler) Perfil(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioSvc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			response.NotFound(c, 20001, "el usuario no existe")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, usuario)
}

// PorID consulta de un usuario puntual
// GET /api/usuarios/:id
func (h *UsuarioHandler) PorID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	usuario, err := h.usuarioSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			response.NotFound(c, 20001, "el usuario no existe")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, usuario)
}

// Todos lista de usuarios
// GET /api/usuarios/todos
func (h *UsuarioHandler) Todos(c *gin.Context) {
	usuarios, err := h.usuarioSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, usuarios, camposUsuario)
}

// Actualizar edición de usuario
// PUT /api/usuarios/actualizar
func (h *UsuarioHandler) Actualizar(c *gin.Context) {
	var req dto.UpdateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	usuario, err := h.usuarioSvc.Update(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNotFound):
			response.NotFound(c, 20001, "el usuario no existe")
		case errors.Is(err, service.ErrUsernameEnUso):
			response.Conflict(c, 20004, "el nombre de usuario ya está en uso")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, usuario)
}

// Eliminar baja de usuario
// DELETE /api/usuarios/eliminar/:id
func (h *UsuarioHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.usuarioSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUsuarioNotFound) {
			response.NotFound(c, 20001, "el usuario no existe")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
