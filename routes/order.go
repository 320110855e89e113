package routes

import (
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	orderControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/order"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
)

func SetupOrderRoutes(v1 *gin.RouterGroup, db *gorm.DB, v *validatorv10.Validate) {
	orders := v1.Group("/orders", middleware.Authenticate(db))
	{
		orders.POST("", middleware.Authorize(models.RoleBuyer), orderControllers.PlaceOrderHandler(db, v))

		// buyers see their own orders, admins see everyone's
		orders.GET("", middleware.Authorize(models.RoleBuyer, models.RoleAdmin), orderControllers.GetBuyerOrders(db))
		orders.GET("/stats", middleware.Authorize(models.RoleBuyer, models.RoleAdmin), orderControllers.GetBuyerOrdersStats(db))

		sellers := orders.Group("/seller", middleware.Authorize(models.RoleSeller))
		{
			sellers.GET("", orderControllers.GetSellerOrders(db))
			sellers.GET("/stats", orderControllers.GetSellerOrdersStats(db))
			sellers.PATCH("/:orderItemId", orderControllers.UpdateOrderItemStatus(db))
		}
	}
}
