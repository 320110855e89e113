package productControllers

import (
	"errors"
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type ProductImageInput struct {
	PublicID string `json:"publicId"`
	ImageURL string `json:"imageUrl" binding:"required"`
}

type CreateProductRequest struct {
	Title         string              `json:"title" binding:"required,min=2,max=32"`
	Description   string              `json:"description" binding:"required,max=2000"`
	Price         float64             `json:"price" binding:"required,gt=0"`
	Discount      float64             `json:"discount" binding:"omitempty,gte=0,lt=100"`
	CategoryID    uint                `json:"category" binding:"required"`
	Subcategories []uint              `json:"subcategories"`
	Quantity      int                 `json:"quantity" binding:"required,gte=0"`
	Images        []ProductImageInput `json:"images"`
	Shipping      string              `json:"shipping" binding:"omitempty,oneof=Yes No"`
	Color         string              `json:"color"`
	Brand         string              `json:"brand" binding:"required,max=50"`
}

// sellerShop loads the caller's shop and checks the product-listing gates.
// Returns nil after writing the error response when the seller may not list.
func sellerShop(c *gin.Context, db *gorm.DB) *models.Shop {
	seller := middleware.MustCurrentUser(c)

	var shop models.Shop
	if err := db.Where("user_id = ?", seller.ID).First(&shop).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
		return nil
	}

	if !shop.CanListProducts() {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Shop is not allowed to manage products"})
		return nil
	}

	return &shop
}

// POST /v1/products (seller, gated by shop activity and payment status)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shop := sellerShop(c, db)
		if shop == nil {
			return
		}

		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var subcategories []models.Subcategory
		if len(req.Subcategories) > 0 {
			if err := db.Where("id IN ?", req.Subcategories).Find(&subcategories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch subcategories"})
				return
			}
		}

		images := make([]models.ProductImage, 0, len(req.Images))
		for _, image := range req.Images {
			images = append(images, models.ProductImage{PublicID: image.PublicID, ImageURL: image.ImageURL})
		}

		shipping := models.ShippingYes
		if req.Shipping == string(models.ShippingNo) {
			shipping = models.ShippingNo
		}

		product := models.Product{
			ShopID:        shop.ID,
			Title:         req.Title,
			Slug:          slug.Make(req.Title),
			Description:   req.Description,
			Price:         req.Price,
			Discount:      req.Discount,
			CategoryID:    req.CategoryID,
			Subcategories: subcategories,
			Quantity:      req.Quantity,
			Images:        images,
			Shipping:      shipping,
			Color:         req.Color,
			Brand:         req.Brand,
		}

		if err := db.Create(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product with this title already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
	}
}
