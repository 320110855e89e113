package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	shopControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/shop"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
)

func SetupShopRoutes(v1 *gin.RouterGroup, db *gorm.DB) {
	shops := v1.Group("/shops")
	{
		shops.GET("", middleware.Authenticate(db), middleware.Authorize(models.RoleAdmin), shopControllers.GetShops(db))

		sellers := shops.Group("/seller", middleware.Authenticate(db), middleware.Authorize(models.RoleSeller))
		{
			sellers.GET("", shopControllers.GetSellerShop(db))
			sellers.PATCH("", shopControllers.UpdateShopInfo(db))
			sellers.PATCH("/payment-status", shopControllers.UpdateShopPaymentStatus(db))
		}

		shops.GET("/:shopId", shopControllers.GetShop(db))
		shops.PATCH("/:shopId/activity-status", middleware.Authenticate(db), middleware.Authorize(models.RoleAdmin), shopControllers.UpdateShopActivityStatus(db))
	}
}
