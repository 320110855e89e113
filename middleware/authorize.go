package middleware

import (
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
)

// Authorize gates a route to the given roles. Must run after Authenticate.
func Authorize(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := MustCurrentUser(c)

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "User is not authorized to access this route"})
	}
}
