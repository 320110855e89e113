package productControllers

import (
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type UpdateProductRequest struct {
	Title         *string  `json:"title" binding:"omitempty,min=2,max=32"`
	Description   *string  `json:"description" binding:"omitempty,max=2000"`
	Price         *float64 `json:"price" binding:"omitempty,gt=0"`
	Discount      *float64 `json:"discount" binding:"omitempty,gte=0,lt=100"`
	CategoryID    *uint    `json:"category"`
	Subcategories []uint   `json:"subcategories"`
	Quantity      *int     `json:"quantity" binding:"omitempty,gte=0"`
	Shipping      *string  `json:"shipping" binding:"omitempty,oneof=Yes No"`
	Color         *string  `json:"color"`
	Brand         *string  `json:"brand" binding:"omitempty,max=50"`
}

// PATCH /v1/products/:productId (seller, own products only)
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop := sellerShop(c, db)
		if shop == nil {
			return
		}

		productID := c.Param("productId")

		var product models.Product
		if err := db.Where("id = ? AND shop_id = ?", productID, shop.ID).First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.Title != nil {
			updates["title"] = *req.Title
			updates["slug"] = slug.Make(*req.Title)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Discount != nil {
			updates["discount"] = *req.Discount
		}
		if req.CategoryID != nil {
			updates["category_id"] = *req.CategoryID
		}
		if req.Quantity != nil {
			updates["quantity"] = *req.Quantity
		}
		if req.Shipping != nil {
			updates["shipping"] = *req.Shipping
		}
		if req.Color != nil {
			updates["color"] = *req.Color
		}
		if req.Brand != nil {
			updates["brand"] = *req.Brand
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
				return
			}
		}

		if req.Subcategories != nil {
			var subcategories []models.Subcategory
			if err := db.Where("id IN ?", req.Subcategories).Find(&subcategories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch subcategories"})
				return
			}
			if err := db.Model(&product).Association("Subcategories").Replace(subcategories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}
