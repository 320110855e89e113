package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Name      string    `gorm:"unique;not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Subcategory struct {
	ID         uint      `gorm:"primaryKey" json:"_id"`
	Name       string    `gorm:"not null" json:"name"`
	Slug       string    `gorm:"index" json:"slug"`
	CategoryID uint      `gorm:"index;not null" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
