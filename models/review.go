package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"user"`
	User      *User     `gorm:"foreignKey:UserID" json:"userDetails,omitempty"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_user_product" json:"product"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"-"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
