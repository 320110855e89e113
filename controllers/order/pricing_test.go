package orderControllers

import (
	"testing"
	"time"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/BZIvanov/TechnoShop-Backend-EM/validation"
	"github.com/stretchr/testify/assert"
)

func testProducts() map[uint]models.Product {
	return map[uint]models.Product{
		1: {ID: 1, ShopID: 10, Price: 10, Quantity: 5},
		2: {ID: 2, ShopID: 20, Price: 5, Quantity: 8},
		3: {ID: 3, ShopID: 10, Price: 100, Discount: 25, Quantity: 3},
	}
}

func TestCartTotal(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name  string
		lines []validation.CartLine
		want  float64
	}{
		{
			name:  "two shops no discounts",
			lines: []validation.CartLine{{Product: 1, Count: 2}, {Product: 2, Count: 3}},
			want:  35, // 10*2 + 5*3
		},
		{
			name:  "product discount applied per line",
			lines: []validation.CartLine{{Product: 3, Count: 2}},
			want:  150, // 100*2 minus 25%
		},
		{
			name:  "mixed discounted and plain lines",
			lines: []validation.CartLine{{Product: 1, Count: 1}, {Product: 3, Count: 1}},
			want:  85, // 10 + 75
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cartTotal(products, tt.lines), 0.0001)
		})
	}
}

func TestApplyCoupon(t *testing.T) {
	coupon := &models.Coupon{Discount: 10}

	// applied once to the grand total, never compounded per line
	assert.InDelta(t, 31.5, applyCoupon(35, coupon), 0.0001)
	assert.InDelta(t, 35, applyCoupon(35, nil), 0.0001)
}

func TestCouponExpired(t *testing.T) {
	now := time.Now()

	expired := models.Coupon{ExpirationDate: now.Add(-time.Hour)}
	valid := models.Coupon{ExpirationDate: now.Add(time.Hour)}

	assert.True(t, expired.Expired(now))
	assert.False(t, valid.Expired(now))
}

func TestSplitByShop(t *testing.T) {
	products := testProducts()
	lines := []validation.CartLine{
		{Product: 1, Count: 2},
		{Product: 2, Count: 3},
		{Product: 3, Count: 1},
	}

	byShop := splitByShop(products, lines)

	assert.Len(t, byShop, 2)
	assert.ElementsMatch(t, []validation.CartLine{{Product: 1, Count: 2}, {Product: 3, Count: 1}}, byShop[10])
	assert.ElementsMatch(t, []validation.CartLine{{Product: 2, Count: 3}}, byShop[20])
}

// A 2-shop cart must yield exactly 2 shop buckets whose subtotals sum to the
// parent total when no coupon is involved.
func TestSplitSubtotalsReconcileWithParentTotal(t *testing.T) {
	products := testProducts()
	lines := []validation.CartLine{{Product: 1, Count: 2}, {Product: 2, Count: 3}}

	parentTotal := cartTotal(products, lines)
	assert.InDelta(t, 35, parentTotal, 0.0001)

	byShop := splitByShop(products, lines)
	assert.Len(t, byShop, 2)
	assert.InDelta(t, 20, cartTotal(products, byShop[10]), 0.0001)
	assert.InDelta(t, 15, cartTotal(products, byShop[20]), 0.0001)

	var sum float64
	for _, shopLines := range byShop {
		sum += cartTotal(products, shopLines)
	}
	assert.InDelta(t, parentTotal, sum, 0.0001)
}

func TestGenerateOrderRefIsUnique(t *testing.T) {
	assert.NotEqual(t, generateOrderRef(), generateOrderRef())
}
