package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wolf0dev/gestion-horario-sub000/pkg/redis"
	"github.com/wolf0dev/gestion-horario-sub000/pkg/response"
)

// RateLimit límite de peticiones por IP y ruta con ventana fija en Redis.
// Sin Redis, o con Redis caído, se degrada dejando pasar.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "demasiadas peticiones, intente más tarde")
			c.Abort()
			return
		}

		c.Next()
	}
}
