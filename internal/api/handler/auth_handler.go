package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/internal/dto"
	"github.com/wolf0dev/gestion-horario-sub000/internal/service"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// AuthHandler módulo de autenticación
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler crea un AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login inicio de sesión
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	resp, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredencialesInvalidas):
			response.Unauthorized(c, 20002, "usuario o contraseña incorrectos")
		case errors.Is(err, service.ErrUsuarioInactivo):
			response.Forbidden(c, 20003, "el usuario está inactivo")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, resp)
}

// Registro alta de usuario
// POST /api/auth/registro
func (h *AuthHandler) Registro(c *gin.Context) {
	var req dto.RegistroUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "validación de parámetros fallida")
		return
	}

	usuario, err := h.authSvc.Registro(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameEnUso):
			response.Conflict(c, 20004, "el nombre de usuario ya está en uso")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, usuario)
}

// Logout cierre de sesión: revoca el token vigente
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
