package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/BZIvanov/TechnoShop-Backend-EM/validation"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Checkout business rule violations, surfaced as 400 envelopes
var (
	errInsufficientStock = errors.New("Insufficient product quantity")
	errCouponExpired     = errors.New("This coupon has already expired.")
	errProductNotFound   = errors.New("Product not found")
	errStatusFinal       = errors.New("Order item status is final")
)

// -------- Core Logic --------

// PlaceOrder runs the whole checkout inside one transaction: coupon resolution,
// stock validation against FOR UPDATE locked product rows, pricing, stock
// decrement, parent order creation and the per-shop order item split. Any
// failure rolls the whole sequence back, so stock is never decremented for an
// order that was not created.
func PlaceOrder(db *gorm.DB, buyer models.User, req validation.CheckoutRequest) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		// Resolve the coupon by exact name. A missing coupon is silently
		// ignored; an expired one rejects the whole order.
		var coupon *models.Coupon
		if req.Coupon != "" {
			var found models.Coupon
			err := tx.Where("name = ?", req.Coupon).First(&found).Error
			switch {
			case err == nil:
				if found.Expired(time.Now()) {
					return errCouponExpired
				}
				coupon = &found
			case errors.Is(err, gorm.ErrRecordNotFound):
				// proceed without a discount
			default:
				return err
			}
		}

		productIDs := make([]uint, 0, len(req.Cart))
		for _, line := range req.Cart {
			productIDs = append(productIDs, line.Product)
		}

		// Lock the product rows so concurrent checkouts cannot both pass the
		// stock check and oversell.
		var products []models.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}
		if len(products) != len(req.Cart) {
			return errProductNotFound
		}

		productsByID := make(map[uint]models.Product, len(products))
		for _, product := range products {
			productsByID[product.ID] = product
		}

		// Reject the whole order if any line exceeds the available stock.
		for _, line := range req.Cart {
			if productsByID[line.Product].Quantity < line.Count {
				return errInsufficientStock
			}
		}

		totalPrice := applyCoupon(cartTotal(productsByID, req.Cart), coupon)

		// Deduct stock and bump the sold counters.
		for _, line := range req.Cart {
			if err := tx.Model(&models.Product{}).Where("id = ?", line.Product).
				Updates(map[string]interface{}{
					"quantity": gorm.Expr("quantity - ?", line.Count),
					"sold":     gorm.Expr("sold + ?", line.Count),
				}).Error; err != nil {
				return err
			}
		}

		var couponID *uint
		if coupon != nil {
			couponID = &coupon.ID
		}

		orderLines := make([]models.OrderLine, 0, len(req.Cart))
		for _, line := range req.Cart {
			orderLines = append(orderLines, models.OrderLine{
				ShopID:    productsByID[line.Product].ShopID,
				ProductID: line.Product,
				Count:     line.Count,
			})
		}

		// Payment is modeled as settled at order-creation time.
		order = models.Order{
			OrderRef:        generateOrderRef(),
			BuyerID:         buyer.ID,
			Products:        orderLines,
			TotalPrice:      totalPrice,
			DeliveryStatus:  models.OrderPending,
			PaymentStatus:   models.PaymentPaid,
			CouponID:        couponID,
			DeliveryAddress: req.Address,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// One order item per distinct shop, priced the same way as the parent
		// but restricted to that shop's lines.
		for shopID, shopLines := range splitByShop(productsByID, req.Cart) {
			itemLines := make([]models.OrderItemLine, 0, len(shopLines))
			for _, line := range shopLines {
				itemLines = append(itemLines, models.OrderItemLine{
					ProductID: line.Product,
					Count:     line.Count,
				})
			}

			item := models.OrderItem{
				ParentOrderID:   order.ID,
				ShopID:          shopID,
				Products:        itemLines,
				TotalPrice:      applyCoupon(cartTotal(productsByID, shopLines), coupon),
				DeliveryStatus:  models.OrderItemPending,
				PaymentStatus:   models.PaymentPaid,
				CouponID:        couponID,
				DeliveryAddress: req.Address,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// -------- Handlers --------

// POST /v1/orders
func PlaceOrderHandler(db *gorm.DB, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyer := middleware.MustCurrentUser(c)

		var req validation.CheckoutRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		order, err := PlaceOrder(db, buyer, req)
		if err != nil {
			switch {
			case errors.Is(err, errInsufficientStock),
				errors.Is(err, errCouponExpired),
				errors.Is(err, errProductNotFound):
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to place order"})
			}
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
	}
}

// GET /v1/orders — the buyer's own orders; admins see every order.
func GetBuyerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)

		page, perPage := paginationParams(c, 0, 5)

		query := db.Model(&models.Order{})
		if user.Role != models.RoleAdmin {
			query = query.Where("buyer_id = ?", user.ID)
		}
		if status := c.Query("deliveryStatus"); status != "" {
			query = query.Where("delivery_status = ?", status)
		}

		var totalCount int64
		if err := query.Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
			return
		}

		var orders []models.Order
		if err := query.
			Preload("Products.Product").
			Order(sortClause(c)).
			Offset(page * perPage).Limit(perPage).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "totalCount": totalCount})
	}
}

// GET /v1/orders/seller — the order items belonging to the caller's shop.
func GetSellerOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seller := middleware.MustCurrentUser(c)

		var shop models.Shop
		if err := db.Where("user_id = ?", seller.ID).First(&shop).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Shop not found"})
			return
		}

		page, perPage := paginationParams(c, 0, 5)

		query := db.Model(&models.OrderItem{}).Where("shop_id = ?", shop.ID)
		if status := c.Query("deliveryStatus"); status != "" {
			query = query.Where("delivery_status = ?", status)
		}

		var totalCount int64
		if err := query.Count(&totalCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
			return
		}

		var orderItems []models.OrderItem
		if err := query.
			Preload("Products.Product").
			Order(sortClause(c)).
			Offset(page * perPage).Limit(perPage).
			Find(&orderItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orderItems, "totalCount": totalCount})
	}
}

// -------- Query helpers --------

func paginationParams(c *gin.Context, defaultPage, defaultPerPage int) (int, int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 0 {
		page = defaultPage
	}
	perPage, err := strconv.Atoi(c.Query("perPage"))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}

// sortClause whitelists the sortable columns; anything else falls back to createdAt.
func sortClause(c *gin.Context) string {
	columns := map[string]string{
		"createdAt":      "created_at",
		"totalPrice":     "total_price",
		"deliveryStatus": "delivery_status",
	}

	column, ok := columns[c.DefaultQuery("sortColumn", "createdAt")]
	if !ok {
		column = "created_at"
	}

	direction := c.DefaultQuery("order", "desc")
	if direction != "asc" && direction != "desc" {
		direction = "desc"
	}

	return column + " " + direction
}
