package middleware

import (
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/auth"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CurrentUserKey is where Authenticate stores the resolved user on the context.
const CurrentUserKey = "currentUser"

// Authenticate resolves the session cookie and loads the current user.
func Authenticate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "You are not logged in"})
			return
		}

		userID, err := auth.ValidateToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "User not found"})
			return
		}

		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// MustCurrentUser returns the user resolved by Authenticate.
// Only call it on routes behind the Authenticate middleware.
func MustCurrentUser(c *gin.Context) models.User {
	user, _ := c.Get(CurrentUserKey)
	return user.(models.User)
}
