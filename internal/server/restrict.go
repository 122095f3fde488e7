package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RestrictIPAddresses guards the operational endpoints. An empty allow-list
// means no restriction.
func RestrictIPAddresses(ipAddresses []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(ipAddresses) == 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		for _, address := range ipAddresses {
			if strings.Contains(address, clientIP) {
				c.Next()
				return
			}
		}

		c.String(http.StatusUnauthorized, "Unauthorized access")
		c.Abort()
	}
}
