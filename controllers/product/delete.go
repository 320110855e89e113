package productControllers

import (
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DELETE /v1/products/:productId (seller deletes own products, admin any)
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)
		productID := c.Param("productId")

		query := db.Where("id = ?", productID)
		if user.Role != models.RoleAdmin {
			var shop models.Shop
			if err := db.Where("user_id = ?", user.ID).First(&shop).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
				return
			}
			query = query.Where("shop_id = ?", shop.ID)
		}

		result := query.Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
