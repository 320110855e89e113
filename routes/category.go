package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/category"
	productControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/product"
	subcategoryControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/subcategory"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
)

func SetupCategoryRoutes(v1 *gin.RouterGroup, db *gorm.DB) {
	categories := v1.Group("/categories")
	{
		categories.GET("", categoryControllers.GetCategories(db))
		categories.GET("/:categoryId", categoryControllers.GetCategory(db))
		categories.GET("/:categoryId/subcategories", subcategoryControllers.GetSubcategories(db))
		categories.GET("/:categoryId/products", productControllers.GetProducts(db))

		admins := categories.Group("", middleware.Authenticate(db), middleware.Authorize(models.RoleAdmin))
		{
			admins.POST("", categoryControllers.CreateCategory(db))
			admins.PATCH("/:categoryId", categoryControllers.UpdateCategory(db))
			admins.DELETE("/:categoryId", categoryControllers.DeleteCategory(db))
		}
	}

	subcategories := v1.Group("/subcategories")
	{
		subcategories.GET("", subcategoryControllers.GetSubcategories(db))
		subcategories.GET("/grouped", subcategoryControllers.GetGroupedSubcategories(db))
		subcategories.GET("/:subcategoryId", subcategoryControllers.GetSubcategory(db))
		subcategories.GET("/:subcategoryId/products", productControllers.GetProducts(db))

		admins := subcategories.Group("", middleware.Authenticate(db), middleware.Authorize(models.RoleAdmin))
		{
			admins.POST("", subcategoryControllers.CreateSubcategory(db))
			admins.PATCH("/:subcategoryId", subcategoryControllers.UpdateSubcategory(db))
			admins.DELETE("/:subcategoryId", subcategoryControllers.DeleteSubcategory(db))
		}
	}
}
