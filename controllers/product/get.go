package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /v1/products/:productId
func GetProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		var product models.Product
		if err := db.Preload("Category").Preload("Subcategories").Preload("Images").
			First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to retrieve product"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}

// GetSimilarProducts returns a few other products from the same category.
// GET /v1/products/:productId/similar
func GetSimilarProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		perPage, err := strconv.Atoi(c.DefaultQuery("perPage", "3"))
		if err != nil || perPage < 1 {
			perPage = 3
		}

		builder := db.Model(&models.Product{}).
			Where("id <> ? AND category_id = ?", product.ID, product.CategoryID)

		var totalCount int64
		if err := builder.Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := builder.
			Preload("Category").Preload("Subcategories").Preload("Images").
			Limit(perPage).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": products, "totalCount": totalCount})
	}
}

// GetProductBrands returns the distinct brand names in the catalog.
// GET /v1/products/brands
func GetProductBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []string
		if err := db.Model(&models.Product{}).Distinct("brand").Order("brand asc").
			Pluck("brand", &brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch brands"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "brands": brands})
	}
}
