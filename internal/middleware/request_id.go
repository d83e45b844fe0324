package middleware

import (
	"gtb-hrms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID accepts a caller supplied X-Request-ID when it is short printable
// ASCII, otherwise it mints a uuid. The id is echoed back and stored in both
// the gin and the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if !validRequestID(rid) {
			rid = uuid.NewString()
		}

		c.Set("request_id", rid)
		c.Request = c.Request.WithContext(contextutil.WithRequestID(c.Request.Context(), rid))

		c.Header("X-Request-ID", rid)
		c.Next()
	}
}

func validRequestID(rid string) bool {
	if rid == "" || len(rid) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(rid); i++ {
		// tolak spasi dan karakter kontrol supaya aman dipakai di log
		if rid[i] <= ' ' || rid[i] > '~' {
			return false
		}
	}
	return true
}
