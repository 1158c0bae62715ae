package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// Requisitos requerimientos de acceso de una ruta.
// Sin permisos ni roles exigidos, basta con estar autenticado. Con
// RequireAll la evaluación exige todos los requisitos; sin él, cualquiera.
type Requisitos struct {
	Permisos   []string
	Roles      []string
	RequireAll bool
}

// Authorize autorización por permisos y roles sobre las claims del token.
// El 403 nombra el primer requisito faltante.
func Authorize(req Requisitos) gin.HandlerFunc {
	return func(c *gin.Context) {
		valor, exists := c.Get("claims")
		if !exists {
			response.Unauthorized(c, 10002, "no autenticado")
			c.Abort()
			return
		}
		claims := valor.(*jwt.Claims)

		if len(req.Permisos) == 0 && len(req.Roles) == 0 {
			c.Next()
			return
		}

		if req.RequireAll {
			for _, p := range req.Permisos {
				if !contiene(claims.Permisos, p) {
					denegar(c, "falta el permiso: "+p)
					return
				}
			}
			for _, r := range req.Roles {
				if !contiene(claims.Roles, r) {
					denegar(c, "falta el rol: "+r)
					return
				}
			}
			c.Next()
			return
		}

		for _, p := range req.Permisos {
			if contiene(claims.Permisos, p) {
				c.Next()
				return
			}
		}
		for _, r := range req.Roles {
			if contiene(claims.Roles, r) {
				c.Next()
				return
			}
		}

		faltante := ""
		if len(req.Permisos) > 0 {
			faltante = "falta el permiso: " + req.Permisos[0]
		} else {
			faltante = "falta el rol: " + req.Roles[0]
		}
		denegar(c, faltante)
	}
}

func denegar(c *gin.Context, mensaje string) {
	response.Forbidden(c, 10003, mensaje)
	c.Abort()
}

func contiene(conjunto []string, valor string) bool {
	for _, v := range conjunto {
		if v == valor {
			return true
		}
	}
	return false
}
