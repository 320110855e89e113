package couponControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateCouponRequest struct {
	Name           string    `json:"name" binding:"required,min=2,max=20"`
	Discount       float64   `json:"discount" binding:"required,gt=0,lte=99.99"`
	ExpirationDate time.Time `json:"expirationDate" binding:"required"`
}

// GET /v1/coupons (admin)
func GetCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
		if page < 0 {
			page = 0
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("perPage", "5"))
		if perPage < 1 {
			perPage = 5
		}

		var totalCount int64
		if err := db.Model(&models.Coupon{}).Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch coupons"})
			return
		}

		var coupons []models.Coupon
		if err := db.Order("created_at desc").
			Offset(page * perPage).Limit(perPage).
			Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch coupons"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "coupons": coupons, "totalCount": totalCount})
	}
}

// POST /v1/coupons (admin)
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCouponRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		coupon := models.Coupon{
			Name:           req.Name,
			Discount:       req.Discount,
			ExpirationDate: req.ExpirationDate,
		}
		if err := db.Create(&coupon).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Coupon with this name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create coupon"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "coupon": coupon, "message": "Coupon created"})
	}
}

// DELETE /v1/coupons/:couponId (admin)
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		couponID := c.Param("couponId")

		result := db.Where("id = ?", couponID).Delete(&models.Coupon{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Coupon not found"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
