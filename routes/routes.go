package routes

import (
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	chatControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/chat"
)

// SetupRoutes is the single entry-point that wires up every route group under /v1.
func SetupRoutes(r *gin.Engine, db *gorm.DB, v *validatorv10.Validate, hub *chatControllers.Hub) {
	v1 := r.Group("/v1")

	SetupUserRoutes(v1, db)
	SetupCategoryRoutes(v1, db)
	SetupProductRoutes(v1, db)
	SetupCouponRoutes(v1, db)
	SetupShopRoutes(v1, db)
	SetupOrderRoutes(v1, db, v)
	SetupWishlistRoutes(v1, db)
	SetupChatRoutes(v1, db, hub)
}
