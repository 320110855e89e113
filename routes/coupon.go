package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	couponControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/coupon"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
)

func SetupCouponRoutes(v1 *gin.RouterGroup, db *gorm.DB) {
	coupons := v1.Group("/coupons", middleware.Authenticate(db), middleware.Authorize(models.RoleAdmin))
	{
		coupons.GET("", couponControllers.GetCoupons(db))
		coupons.POST("", couponControllers.CreateCoupon(db))
		coupons.DELETE("/:couponId", couponControllers.DeleteCoupon(db))
	}
}
