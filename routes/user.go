package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/user"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
)

func SetupUserRoutes(v1 *gin.RouterGroup, db *gorm.DB) {
	users := v1.Group("/users")
	{
		users.POST("/register", userControllers.Register(db))
		users.POST("/login", userControllers.Login(db))
		users.POST("/logout", userControllers.Logout())

		// resolves the cookie itself so guests get user: null instead of 401
		users.GET("/current-user", userControllers.CurrentUser(db))

		users.POST("/forgot-password", userControllers.ForgotPassword(db))
		users.POST("/reset-password", userControllers.ResetPassword(db))

		users.PATCH("/update-password", middleware.Authenticate(db), userControllers.UpdatePassword(db))
	}
}
