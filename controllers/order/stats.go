package orderControllers

import (
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderStats is the read-side aggregation over orders or order items,
// grouped by delivery status.
type OrderStats struct {
	TotalOrders              int64   `json:"totalOrders"`
	PendingOrders            int64   `json:"pendingOrders"`
	PartiallyDeliveredOrders int64   `json:"partiallyDeliveredOrders"`
	DeliveredOrders          int64   `json:"deliveredOrders"`
	PartiallyCanceledOrders  int64   `json:"partiallyCanceledOrders"`
	CanceledOrders           int64   `json:"canceledOrders"`
	TotalPrice               float64 `json:"totalPrice"`
}

type statusAggregate struct {
	DeliveryStatus string
	Count          int64
	Total          float64
}

func buildStats(rows []statusAggregate) OrderStats {
	var stats OrderStats
	for _, row := range rows {
		stats.TotalOrders += row.Count
		stats.TotalPrice += row.Total

		switch models.OrderDeliveryStatus(row.DeliveryStatus) {
		case models.OrderPending:
			stats.PendingOrders += row.Count
		case models.OrderPartiallyDelivered:
			stats.PartiallyDeliveredOrders += row.Count
		case models.OrderDelivered:
			stats.DeliveredOrders += row.Count
		case models.OrderPartiallyCanceled:
			stats.PartiallyCanceledOrders += row.Count
		case models.OrderCanceled:
			stats.CanceledOrders += row.Count
		}
	}
	return stats
}

// GET /v1/orders/stats — buyer-facing counts per delivery status.
func GetBuyerOrdersStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyer := middleware.MustCurrentUser(c)

		var rows []statusAggregate
		if err := db.Model(&models.Order{}).
			Select("delivery_status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total").
			Where("buyer_id = ?", buyer.ID).
			Group("delivery_status").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "stats": buildStats(rows)})
	}
}

// GET /v1/orders/seller/stats — same aggregation over the shop's order items.
func GetSellerOrdersStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.MustCurrentUser(c)

		var shop models.Shop
		if err := db.Where("user_id = ?", seller.ID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		var rows []statusAggregate
		if err := db.Model(&models.OrderItem{}).
			Select("delivery_status, COUNT(*) AS count, COALESCE(SUM(total_price), 0) AS total").
			Where("shop_id = ?", shop.ID).
			Group("delivery_status").
			Scan(&rows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch order stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "stats": buildStats(rows)})
	}
}
