package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	wishlistControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/wishlist"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
)

func SetupWishlistRoutes(v1 *gin.RouterGroup, db *gorm.DB) {
	wishlists := v1.Group("/wishlists", middleware.Authenticate(db), middleware.Authorize(models.RoleBuyer))
	{
		wishlists.GET("", wishlistControllers.GetWishlist(db))
		wishlists.POST("/:productId", wishlistControllers.AddToWishlist(db))
		wishlists.DELETE("/:productId", wishlistControllers.RemoveFromWishlist(db))
	}
}
