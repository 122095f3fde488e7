package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UpgradeToHttps - if client is connecting over plaintext HTTP, upgrade to HTTPS.
// The TLS field of the request won't be set when the app sits behind a reverse
// proxy that terminates TLS, so check the X-Forwarded-Proto header instead.
func UpgradeToHttps() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Forwarded-Proto") == "http" {
			c.Redirect(http.StatusMovedPermanently, "https://"+c.Request.Host+c.Request.RequestURI)
			c.Abort()
			return
		}
		c.Next()
	}
}
