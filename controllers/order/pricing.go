package orderControllers

import (
	"time"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/BZIvanov/TechnoShop-Backend-EM/validation"
	"github.com/google/uuid"
)

// -------- Pricing helpers --------

// cartTotal sums the cart lines against the fetched products, applying each
// product's own discount percent per line. The coupon is NOT applied here.
func cartTotal(products map[uint]models.Product, lines []validation.CartLine) float64 {
	var total float64
	for _, line := range lines {
		product := products[line.Product]

		lineTotal := product.Price * float64(line.Count)
		if product.Discount > 0 {
			lineTotal -= lineTotal * product.Discount / 100
		}

		total += lineTotal
	}
	return total
}

// applyCoupon applies the coupon percentage once to the grand total.
func applyCoupon(total float64, coupon *models.Coupon) float64 {
	if coupon == nil {
		return total
	}
	return total - total*coupon.Discount/100
}

// splitByShop partitions the cart lines by the shop each product belongs to.
// Every line lands in exactly one shop bucket.
func splitByShop(products map[uint]models.Product, lines []validation.CartLine) map[uint][]validation.CartLine {
	byShop := make(map[uint][]validation.CartLine)
	for _, line := range lines {
		shopID := products[line.Product].ShopID
		byShop[shopID] = append(byShop[shopID], line)
	}
	return byShop
}

// generateOrderRef returns a unique, sortable order reference.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
