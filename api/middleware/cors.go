package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS sets wildcard cross-origin headers on every response and answers
// preflight OPTIONS requests with an empty 200.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
