package shopControllers

import (
	"net/http"
	"strconv"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type UpdateShopInfoRequest struct {
	ShopName string `json:"shopName" binding:"required,max=50"`
	Country  string `json:"country"`
	City     string `json:"city"`
}

type UpdateShopPaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=paid unpaid"`
}

type UpdateShopActivityStatusRequest struct {
	ActivityStatus string `json:"activityStatus" binding:"required,oneof=pending active deactive"`
}

// -------- Handlers --------

// GET /v1/shops (admin) — defaults to listing shops awaiting approval.
func GetShops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		activityStatus := c.DefaultQuery("activityStatus", string(models.ShopActivityPending))

		page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
		if page < 0 {
			page = 0
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "5"))
		if perPage < 1 {
			perPage = 5
		}

		query := db.Model(&models.Shop{}).Where("activity_status = ?", activityStatus)

		var totalCount int64
		if err := query.Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch shops"})
			return
		}

		var shops []models.Shop
		if err := query.
			Preload("User").
			Order("created_at desc").
			Offset(page * perPage).Limit(perPage).
			Find(&shops).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch shops"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "shops": shops, "totalCount": totalCount})
	}
}

// GET /v1/shops/:shopId
func GetShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := c.Param("shopId")

		var shop models.Shop
		if err := db.First(&shop, "id = ?", shopID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "shop": shop})
	}
}

// GET /v1/shops/seller — the caller's own shop.
func GetSellerShop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.MustCurrentUser(c)

		var shop models.Shop
		if err := db.Where("user_id = ?", seller.ID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "shop": shop})
	}
}

// PATCH /v1/shops/seller (seller updates own shop info)
func UpdateShopInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.MustCurrentUser(c)

		var req UpdateShopInfoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var shop models.Shop
		if err := db.Where("user_id = ?", seller.ID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		shop.ShopName = req.ShopName
		shop.Country = req.Country
		shop.City = req.City
		if err := db.Save(&shop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update shop"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "shop": shop})
	}
}

// PATCH /v1/shops/seller/payment-status (seller)
func UpdateShopPaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.MustCurrentUser(c)

		var req UpdateShopPaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var shop models.Shop
		if err := db.Where("user_id = ?", seller.ID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		shop.PaymentStatus = models.ShopPaymentStatus(req.PaymentStatus)
		if err := db.Save(&shop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update shop"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "shop": shop})
	}
}

// PATCH /v1/shops/:shopId/activity-status (admin approval flow)
func UpdateShopActivityStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopID := c.Param("shopId")

		var req UpdateShopActivityStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var shop models.Shop
		if err := db.First(&shop, "id = ?", shopID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		shop.ActivityStatus = models.ShopActivityStatus(req.ActivityStatus)
		if err := db.Save(&shop).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update shop"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "shop": shop})
	}
}
