package models

import "time"

type OrderDeliveryStatus string
type OrderItemDeliveryStatus string
type PaymentStatus string

const (
	// Parent order delivery statuses, derived from the per-seller items
	OrderPending            OrderDeliveryStatus = "pending"
	OrderPartiallyDelivered OrderDeliveryStatus = "partiallyDelivered" // before all sellers ship their products
	OrderDelivered          OrderDeliveryStatus = "delivered"
	OrderPartiallyCanceled  OrderDeliveryStatus = "partiallyCanceled"
	OrderCanceled           OrderDeliveryStatus = "canceled"

	// Per-seller item delivery statuses (narrower than the parent's)
	OrderItemPending   OrderItemDeliveryStatus = "pending"
	OrderItemDelivered OrderItemDeliveryStatus = "delivered"
	OrderItemCanceled  OrderItemDeliveryStatus = "canceled"

	// Payment statuses
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// Order is the buyer-facing aggregate of a checkout spanning one or more sellers.
type Order struct {
	ID              uint                `gorm:"primaryKey" json:"_id"`
	OrderRef        string              `gorm:"uniqueIndex" json:"orderRef"`
	BuyerID         uint                `gorm:"index;not null" json:"buyer"`
	Buyer           *User               `gorm:"foreignKey:BuyerID" json:"-"`
	Products        []OrderLine         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalPrice      float64             `json:"totalPrice"`
	DeliveryStatus  OrderDeliveryStatus `gorm:"type:VARCHAR(20);default:'pending';index" json:"deliveryStatus"`
	PaymentStatus   PaymentStatus       `gorm:"type:VARCHAR(10);default:'pending'" json:"paymentStatus"`
	CouponID        *uint               `json:"coupon,omitempty"`
	Coupon          *Coupon             `gorm:"foreignKey:CouponID" json:"-"`
	DeliveryAddress string              `json:"deliveryAddress"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

// OrderLine is one {shop, product, count} line of the parent order.
type OrderLine struct {
	ID        uint     `gorm:"primaryKey" json:"-"`
	OrderID   uint     `gorm:"index" json:"-"`
	ShopID    uint     `gorm:"index" json:"shop"`
	ProductID uint     `json:"product"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"productDetails,omitempty"`
	Count     int      `json:"count"`
}

// OrderItem is the per-seller fulfillment record split off an Order at checkout.
// Exactly one exists per distinct shop in the originating cart; it is mutated
// independently by its seller and never deleted.
type OrderItem struct {
	ID              uint                    `gorm:"primaryKey" json:"_id"`
	ParentOrderID   uint                    `gorm:"index;not null" json:"parentOrder"`
	ParentOrder     *Order                  `gorm:"foreignKey:ParentOrderID" json:"-"`
	ShopID          uint                    `gorm:"index;not null" json:"shop"`
	Shop            *Shop                   `gorm:"foreignKey:ShopID" json:"-"`
	Products        []OrderItemLine         `gorm:"foreignKey:OrderItemID;constraint:OnDelete:CASCADE" json:"products"`
	TotalPrice      float64                 `json:"totalPrice"`
	DeliveryStatus  OrderItemDeliveryStatus `gorm:"type:VARCHAR(10);default:'pending';index" json:"deliveryStatus"`
	PaymentStatus   PaymentStatus           `gorm:"type:VARCHAR(10);default:'pending'" json:"paymentStatus"`
	CouponID        *uint                   `json:"coupon,omitempty"`
	Coupon          *Coupon                 `gorm:"foreignKey:CouponID" json:"-"`
	DeliveryAddress string                  `json:"deliveryAddress"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

type OrderItemLine struct {
	ID          uint     `gorm:"primaryKey" json:"-"`
	OrderItemID uint     `gorm:"index" json:"-"`
	ProductID   uint     `json:"product"`
	Product     *Product `gorm:"foreignKey:ProductID" json:"productDetails,omitempty"`
	Count       int      `json:"count"`
}
