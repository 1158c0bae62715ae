package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/pkg/jwt"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/redis"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// JWTAuth autenticación por token Bearer.
// Extrae y valida el token de Authorization: Bearer <token>, consulta la
// lista negra en Redis (si hay Redis; sin él se degrada a solo firma) e
// inyecta las claims en el contexto.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "falta la cabecera de autenticación")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "formato de cabecera de autenticación inválido")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, 10002, "token inválido o expirado")
			c.Abort()
			return
		}

		if rdb != nil {
			revocado, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revocado {
				response.Unauthorized(c, 10002, "la sesión fue cerrada")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("claims", claims)

		c.Next()
	}
}
