package models

import "time"

type ShopActivityStatus string
type ShopPaymentStatus string

const (
	// Activity statuses (admin approval flow)
	ShopActivityPending  ShopActivityStatus = "pending"  // Awaiting admin approval
	ShopActivityActive   ShopActivityStatus = "active"   // Approved, may list products
	ShopActivityDeactive ShopActivityStatus = "deactive" // Disabled by admin

	// Payment statuses
	ShopPaymentPaid   ShopPaymentStatus = "paid"
	ShopPaymentUnpaid ShopPaymentStatus = "unpaid"
)

type Shop struct {
	ID             uint               `gorm:"primaryKey" json:"_id"`
	UserID         uint               `gorm:"uniqueIndex;not null" json:"user"` // Enforces ONE shop per seller
	User           User               `gorm:"foreignKey:UserID" json:"userDetails,omitempty"`
	ActivityStatus ShopActivityStatus `gorm:"type:VARCHAR(10);default:'pending'" json:"activityStatus"`
	PaymentStatus  ShopPaymentStatus  `gorm:"type:VARCHAR(10);default:'unpaid'" json:"paymentStatus"`
	ShopName       string             `json:"shopName,omitempty"`
	Country        string             `json:"country,omitempty"`
	City           string             `json:"city,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// CanListProducts reports whether the seller passed both gates for listing products.
func (s Shop) CanListProducts() bool {
	return s.ActivityStatus == ShopActivityActive && s.PaymentStatus == ShopPaymentPaid
}
