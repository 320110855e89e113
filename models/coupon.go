package models

import "time"

type Coupon struct {
	ID             uint      `gorm:"primaryKey" json:"_id"`
	Name           string    `gorm:"unique;not null" json:"name"`
	Discount       float64   `gorm:"not null" json:"discount"` // percent, 0 < d <= 99.99
	ExpirationDate time.Time `gorm:"not null" json:"expirationDate"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Expired reports whether the coupon can no longer be applied.
func (c Coupon) Expired(now time.Time) bool {
	return now.After(c.ExpirationDate)
}
