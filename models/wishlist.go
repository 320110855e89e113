package models

import "time"

type Wishlist struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	OwnerID   uint      `gorm:"uniqueIndex;not null" json:"owner"` // Enforces ONE wishlist per user
	Owner     *User     `gorm:"foreignKey:OwnerID" json:"-"`
	Products  []Product `gorm:"many2many:wishlist_products;" json:"products"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
