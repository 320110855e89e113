package orderControllers

import (
	"testing"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/stretchr/testify/assert"
)

func items(statuses ...models.OrderItemDeliveryStatus) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, models.OrderItem{DeliveryStatus: s})
	}
	return out
}

func TestDeriveParentStatus(t *testing.T) {
	tests := []struct {
		name       string
		transition models.OrderItemDeliveryStatus
		siblings   []models.OrderItem
		previous   models.OrderDeliveryStatus
		want       models.OrderDeliveryStatus
	}{
		{
			name:       "all delivered",
			transition: models.OrderItemDelivered,
			siblings:   items(models.OrderItemDelivered, models.OrderItemDelivered),
			previous:   models.OrderPartiallyDelivered,
			want:       models.OrderDelivered,
		},
		{
			name:       "some delivered others pending",
			transition: models.OrderItemDelivered,
			siblings:   items(models.OrderItemDelivered, models.OrderItemPending),
			previous:   models.OrderPending,
			want:       models.OrderPartiallyDelivered,
		},
		{
			name:       "all canceled",
			transition: models.OrderItemCanceled,
			siblings:   items(models.OrderItemCanceled, models.OrderItemCanceled, models.OrderItemCanceled),
			previous:   models.OrderPartiallyCanceled,
			want:       models.OrderCanceled,
		},
		{
			name:       "canceled mixed with pending",
			transition: models.OrderItemCanceled,
			siblings:   items(models.OrderItemCanceled, models.OrderItemPending),
			previous:   models.OrderPending,
			want:       models.OrderPartiallyCanceled,
		},
		{
			name:       "delivered mixed with canceled",
			transition: models.OrderItemDelivered,
			siblings:   items(models.OrderItemDelivered, models.OrderItemCanceled),
			previous:   models.OrderPartiallyCanceled,
			want:       models.OrderPartiallyDelivered,
		},
		{
			name:       "single item delivered",
			transition: models.OrderItemDelivered,
			siblings:   items(models.OrderItemDelivered),
			previous:   models.OrderPending,
			want:       models.OrderDelivered,
		},
		{
			name:       "pending transition keeps previous status",
			transition: models.OrderItemPending,
			siblings:   items(models.OrderItemDelivered, models.OrderItemCanceled),
			previous:   models.OrderPartiallyDelivered,
			want:       models.OrderPartiallyDelivered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveParentStatus(tt.transition, tt.siblings, tt.previous)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapItemTransition(t *testing.T) {
	delivered, err := mapItemTransition("delivered")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderItemDelivered, delivered)

	canceled, err := mapItemTransition("Canceled")
	assert.NoError(t, err)
	assert.Equal(t, models.OrderItemCanceled, canceled)

	_, err = mapItemTransition("pending")
	assert.Error(t, err)

	_, err = mapItemTransition("shipped")
	assert.Error(t, err)
}

func TestBuildStats(t *testing.T) {
	rows := []statusAggregate{
		{DeliveryStatus: "pending", Count: 2, Total: 50},
		{DeliveryStatus: "canceled", Count: 1, Total: 20},
	}

	stats := buildStats(rows)

	assert.Equal(t, int64(3), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.PendingOrders)
	assert.Equal(t, int64(1), stats.CanceledOrders)
	assert.Equal(t, int64(0), stats.DeliveredOrders)
	assert.InDelta(t, 70, stats.TotalPrice, 0.0001)
}
