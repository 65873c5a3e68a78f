package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Ilia-Pringless/YaTube/internal/pkg/response"
)

// CheckRoles requires the caller to hold at least one of the roles.
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roles := c.GetStringSlice("roles")

		hasPermission := false
		for _, required := range requiredRoles {
			for _, userRole := range roles {
				if required == userRole {
					hasPermission = true
					break
				}
			}
			if hasPermission {
				break
			}
		}

		if !hasPermission {
			response.Fail(c, response.Forbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
