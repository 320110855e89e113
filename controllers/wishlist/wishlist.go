package wishlistControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /v1/wishlists — the caller's wishlist products, empty list when none yet.
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)

		var wishlist models.Wishlist
		err := db.Preload("Products").Where("owner_id = ?", user.ID).First(&wishlist).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "products": []models.Product{}})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "products": wishlist.Products})
	}
}

// POST /v1/wishlists/:productId
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)
		productID := c.Param("productId")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
			return
		}

		var wishlist models.Wishlist
		err := db.Preload("Products").Where("owner_id = ?", user.ID).First(&wishlist).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			wishlist = models.Wishlist{OwnerID: user.ID}
			if err := db.Create(&wishlist).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
				return
			}
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch wishlist"})
			return
		}

		for _, existing := range wishlist.Products {
			if existing.ID == product.ID {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "This product is already on the wishlist"})
				return
			}
		}

		if err := db.Model(&wishlist).Association("Products").Append(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
			return
		}

		db.Preload("Products").First(&wishlist, wishlist.ID)

		c.JSON(http.StatusOK, gin.H{"success": true, "products": wishlist.Products})
	}
}

// DELETE /v1/wishlists/:productId
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)
		productID := c.Param("productId")

		var wishlist models.Wishlist
		if err := db.Preload("Products").Where("owner_id = ?", user.ID).First(&wishlist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Wishlist not found"})
			return
		}

		id, err := strconv.ParseUint(productID, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product id"})
			return
		}

		var product *models.Product
		for i := range wishlist.Products {
			if wishlist.Products[i].ID == uint(id) {
				product = &wishlist.Products[i]
				break
			}
		}
		if product == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "This product is not on the wishlist"})
			return
		}

		if err := db.Model(&wishlist).Association("Products").Delete(product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update wishlist"})
			return
		}

		db.Preload("Products").First(&wishlist, wishlist.ID)

		c.JSON(http.StatusOK, gin.H{"success": true, "products": wishlist.Products})
	}
}
