package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen límite del Request-ID externo para evitar inyección en logs
const requestIDMaxLen = 64

// RequestID identificador de traza por petición.
// Se lee de X-Request-ID; si falta o es inválido se genera un UUID. El valor
// queda en el contexto y en la cabecera de respuesta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
