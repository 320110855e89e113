package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UpdateOrderItemStatusRequest struct {
	DeliveryStatus string `json:"deliveryStatus" binding:"required"`
}

// mapItemTransition allows only the two terminal transitions a seller may request.
func mapItemTransition(status string) (models.OrderItemDeliveryStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderItemDelivered):
		return models.OrderItemDelivered, nil
	case string(models.OrderItemCanceled):
		return models.OrderItemCanceled, nil
	default:
		return "", errors.New("invalid delivery status")
	}
}

// deriveParentStatus recomputes the parent order's delivery status from all
// sibling items after one of them transitioned. The triggering transition picks
// the branch: delivered => delivered/partiallyDelivered, canceled =>
// canceled/partiallyCanceled. Siblings must already include the updated item.
func deriveParentStatus(transition models.OrderItemDeliveryStatus, siblings []models.OrderItem, previous models.OrderDeliveryStatus) models.OrderDeliveryStatus {
	allDelivered, allCanceled := true, true
	for _, sibling := range siblings {
		if sibling.DeliveryStatus != models.OrderItemDelivered {
			allDelivered = false
		}
		if sibling.DeliveryStatus != models.OrderItemCanceled {
			allCanceled = false
		}
	}

	switch transition {
	case models.OrderItemDelivered:
		if allDelivered {
			return models.OrderDelivered
		}
		return models.OrderPartiallyDelivered
	case models.OrderItemCanceled:
		if allCanceled {
			return models.OrderCanceled
		}
		return models.OrderPartiallyCanceled
	}

	return previous
}

// UpdateOrderItemStatus lets a seller mark one of their order items delivered or
// canceled and re-derives the parent order's status from all siblings. The item
// update, sibling read and parent write run in one transaction with the parent
// row locked, so concurrent sibling transitions cannot produce a stale parent.
// PATCH /v1/orders/seller/:orderItemId
func UpdateOrderItemStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.MustCurrentUser(c)
		orderItemID := c.Param("orderItemId")

		var req UpdateOrderItemStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		newStatus, err := mapItemTransition(req.DeliveryStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var shop models.Shop
		if err := db.Where("user_id = ?", seller.ID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		var item models.OrderItem
		txErr := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Preload("Products").
				Where("id = ? AND shop_id = ?", orderItemID, shop.ID).
				First(&item).Error; err != nil {
				return err
			}

			if item.DeliveryStatus != models.OrderItemPending {
				return errStatusFinal
			}

			// Locking the parent serializes concurrent sibling transitions.
			var parent models.Order
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&parent, item.ParentOrderID).Error; err != nil {
				return err
			}

			item.DeliveryStatus = newStatus
			if err := tx.Model(&models.OrderItem{}).Where("id = ?", item.ID).
				Update("delivery_status", newStatus).Error; err != nil {
				return err
			}

			var siblings []models.OrderItem
			if err := tx.Where("parent_order_id = ?", item.ParentOrderID).
				Find(&siblings).Error; err != nil {
				return err
			}

			derived := deriveParentStatus(newStatus, siblings, parent.DeliveryStatus)
			return tx.Model(&models.Order{}).Where("id = ?", parent.ID).
				Update("delivery_status", derived).Error
		})

		if txErr != nil {
			switch {
			case errors.Is(txErr, gorm.ErrRecordNotFound):
				c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Order item not found"})
			case errors.Is(txErr, errStatusFinal):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": errStatusFinal.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update order status"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order": item})
	}
}
