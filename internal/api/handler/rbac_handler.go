package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/listquery"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// RBACHandler módulo de roles, permisos y sus asignaciones
type RBACHandler struct {
	rbacSvc service.RBACService
}

// NewRBACHandler crea un RBACHandler
func NewRBACHandler(rbacSvc service.RBACService) *RBACHandler {
	return &RBACHandler{rbacSvc: rbacSvc}
}

var camposRol = []listquery.Campo[dto.RolResponse]{
	{Clave: "id", Valor: func(r dto.RolResponse) any { return r.ID }},
	{Clave: "nombre", Valor: func(r dto.RolResponse) any { return r.Nombre }},
}

var camposPermiso = []listquery.Campo[dto.PermisoResponse]{
	{Clave: "id", Valor: func(p dto.PermisoResponse) any { return p.ID }},
	{Clave: "nombre", Valor: func(p dto.PermisoResponse) any { return p.Nombre }},
}

var camposUsuarioRol = []listquery.Campo[dto.UsuarioRolVista]{
	{Clave: "id", Valor: func(v dto.UsuarioRolVista) any { return v.ID }},
	{Clave: "usuario", Valor: func(v dto.UsuarioRolVista) any { return v.Usuario }},
	{Clave: "rol", Valor: func(v dto.UsuarioRolVista) any { return v.Rol }},
}

var camposRolPermiso = []listquery.Campo[dto.RolPermisoVista]{
	{Clave: "id", Valor: func(v dto.RolPermisoVista) any { return v.ID }},
	{Clave: "rol", Valor: func(v dto.RolPermisoVista) any { return v.Rol }},
	{Clave: "permiso", Valor: func(v dto.RolPermisoVista) any { return v.Permiso }},
}

// ── Roles ──

// TodosRoles lista de roles
// GET /api/roles/todos
func (h *RBACHandler) TodosRoles(c *gin.Context) {
	roles, err := h.rbacSvc.ListRoles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, roles, camposRol)
}

// RegistroRol alta de rol
// POST /api/roles/registro
func (h *RBACHandler) RegistroRol(c *gin.Context) {
	var req dto.CreateRolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	rol, err := h.rbacSvc.CreateRol(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRolEnUso) {
			response.Conflict(c, 21002, "ya existe un rol con ese nombre")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, rol)
}

// ActualizarRol edición de rol
// PUT /api/roles/actualizar
func (h *RBACHandler) ActualizarRol(c *gin.Context) {
	var req dto.UpdateRolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	rol, err := h.rbacSvc.UpdateRol(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRolNotFound):
			response.NotFound(c, 21001, "el rol no existe")
		case errors.Is(err, service.ErrRolEnUso):
			response.Conflict(c, 21002, "ya existe un rol con ese nombre")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, rol)
}

// EliminarRol baja de rol
// DELETE /api/roles/eliminar/:id
func (h *RBACHandler) EliminarRol(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.rbacSvc.DeleteRol(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRolNotFound) {
			response.NotFound(c, 21001, "el rol no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Permisos ──

// TodosPermisos lista de permisos
// GET /api/permisos/todos
func (h *RBACHandler) TodosPermisos(c *gin.Context) {
	permisos, err := h.rbacSvc.ListPermisos(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, permisos, camposPermiso)
}

// RegistroPermiso alta de permiso
// POST /api/permisos/registro
func (h *RBACHandler) RegistroPermiso(c *gin.Context) {
	var req dto.CreatePermisoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	permiso, err := h.rbacSvc.CreatePermiso(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, permiso)
}

// ActualizarPermiso edición de permiso
// PUT /api/permisos/actualizar
func (h *RBACHandler) ActualizarPermiso(c *gin.Context) {
	var req dto.UpdatePermisoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	permiso, err := h.rbacSvc.UpdatePermiso(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrPermisoNotFound) {
			response.NotFound(c, 21003, "el permiso no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, permiso)
}

// EliminarPermiso baja de permiso
// DELETE /api/permisos/eliminar/:id
func (h *RBACHandler) EliminarPermiso(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.rbacSvc.DeletePermiso(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPermisoNotFound) {
			response.NotFound(c, 21003, "el permiso no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Asignaciones usuario × rol ──

// VistaUsuarioRoles vista usuario × rol
// GET /api/usuarios-roles/vista
func (h *RBACHandler) VistaUsuarioRoles(c *gin.Context) {
	vistas, err := h.rbacSvc.ListUsuarioRoles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, vistas, camposUsuarioRol)
}

// RegistroUsuarioRol asigna un rol a un usuario
// POST /api/usuarios-roles/registro
func (h *RBACHandler) RegistroUsuarioRol(c *gin.Context) {
	var req dto.CreateUsuarioRolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.rbacSvc.CreateUsuarioRol(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioNotFound):
			response.NotFound(c, 20001, "el usuario no existe")
		case errors.Is(err, service.ErrRolNotFound):
			response.NotFound(c, 21001, "el rol no existe")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, vista)
}

// ActualizarUsuarioRol reasigna la relación usuario × rol
// PUT /api/usuarios-roles/actualizar
func (h *RBACHandler) ActualizarUsuarioRol(c *gin.Context) {
	var req dto.UpdateUsuarioRolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.rbacSvc.UpdateUsuarioRol(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsuarioRolNotFound):
			response.NotFound(c, 21004, "la asignación no existe")
		case errors.Is(err, service.ErrUsuarioNotFound):
			response.NotFound(c, 20001, "el usuario no existe")
		case errors.Is(err, service.ErrRolNotFound):
			response.NotFound(c, 21001, "el rol no existe")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, vista)
}

// EliminarUsuarioRol elimina la asignación usuario × rol
// DELETE /api/usuarios-roles/eliminar/:id
func (h *RBACHandler) EliminarUsuarioRol(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.rbacSvc.DeleteUsuarioRol(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrUsuarioRolNotFound) {
			response.NotFound(c, 21004, "la asignación no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}

// ── Asignaciones rol × permiso ──

// VistaRolPermisos vista rol × permiso
// GET /api/roles-permisos/vista
func (h *RBACHandler) VistaRolPermisos(c *gin.Context) {
	vistas, err := h.rbacSvc.ListRolPermisos(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	responderLista(c, vistas, camposRolPermiso)
}

// RegistroRolPermiso asigna un permiso a un rol
// POST /api/roles-permisos/registro
func (h *RBACHandler) RegistroRolPermiso(c *gin.Context) {
	var req dto.CreateRolPermisoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.rbacSvc.CreateRolPermiso(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRolNotFound):
			response.NotFound(c, 21001, "el rol no existe")
		case errors.Is(err, service.ErrPermisoNotFound):
			response.NotFound(c, 21003, "el permiso no existe")
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, vista)
}

// ActualizarRolPermiso reasigna la relación rol × permiso
// PUT /api/roles-permisos/actualizar
func (h *RBACHandler) ActualizarRolPermiso(c *gin.Context) {
	var req dto.UpdateRolPermisoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	vista, err := h.rbacSvc.UpdateRolPermiso(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRolPermisoNotFound):
			response.NotFound(c, 21005, "la asignación no existe")
		case errors.Is(err, service.ErrRolNotFound):
			response.NotFound(c, 21001, "el rol no existe")
		case errors.Is(err, service.ErrPermisoNotFound):
			response.NotFound(c, 21003, "el permiso no existe")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, vista)
}

// EliminarRolPermiso elimina la asignación rol × permiso
// DELETE /api/roles-permisos/eliminar/:id
func (h *RBACHandler) EliminarRolPermiso(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.rbacSvc.DeleteRolPermiso(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRolPermisoNotFound) {
			response.NotFound(c, 21005, "la asignación no existe")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
