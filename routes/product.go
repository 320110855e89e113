package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/product"
	reviewControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/review"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
)

func SetupProductRoutes(v1 *gin.RouterGroup, db *gorm.DB) {
	products := v1.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.GET("/brands", productControllers.GetProductBrands(db))
		products.GET("/:productId", productControllers.GetProduct(db))
		products.GET("/:productId/similar", productControllers.GetSimilarProducts(db))

		// create/update go through the seller's own gated shop
		sellers := products.Group("", middleware.Authenticate(db), middleware.Authorize(models.RoleSeller))
		{
			sellers.POST("", productControllers.CreateProduct(db))
			sellers.PATCH("/:productId", productControllers.UpdateProduct(db))
		}

		// sellers remove their own products, admins any
		products.DELETE("/:productId", middleware.Authenticate(db), middleware.Authorize(models.RoleSeller, models.RoleAdmin), productControllers.DeleteProduct(db))

		// bulk excel tooling rewrites arbitrary products, admin only
		admins := products.Group("", middleware.Authenticate(db), middleware.Authorize(models.RoleAdmin))
		{
			admins.GET("/export", productControllers.ExportProductsToExcel(db))
			admins.POST("/import", productControllers.ImportProductsFromExcel(db))
		}

		reviews := products.Group("/:productId/reviews")
		{
			reviews.GET("", reviewControllers.GetProductReviews(db))
			reviews.GET("/summary", reviewControllers.GetAggregatedProductReviews(db))

			reviews.GET("/my", middleware.Authenticate(db), reviewControllers.GetMyProductReview(db))
			reviews.PUT("", middleware.Authenticate(db), middleware.Authorize(models.RoleBuyer), reviewControllers.ReviewProduct(db))
		}
	}
}
