package middlewares

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets the response headers for an API that only ever serves
// JSON: nothing may embed it in a frame and no response should load active
// content of any kind.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		c.Next()
	}
}
