package models

import "time"

type ShippingOption string

const (
	ShippingYes ShippingOption = "Yes"
	ShippingNo  ShippingOption = "No"
)

type Product struct {
	ID            uint           `gorm:"primaryKey" json:"_id"`
	ShopID        uint           `gorm:"index;not null" json:"shop"`
	Shop          *Shop          `gorm:"foreignKey:ShopID" json:"-"`
	Title         string         `gorm:"not null" json:"title"`
	Slug          string         `gorm:"uniqueIndex" json:"slug"`
	Description   string         `gorm:"not null" json:"description"`
	Price         float64        `gorm:"not null" json:"price"`
	Discount      float64        `gorm:"default:0" json:"discount"` // percent, applied per line at checkout
	CategoryID    uint           `gorm:"index" json:"categoryId"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategories []Subcategory  `gorm:"many2many:product_subcategories;" json:"subcategories,omitempty"`
	Quantity      int            `gorm:"check:quantity >= 0" json:"quantity"`
	Sold          int            `gorm:"default:0" json:"sold"`
	Images        []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Shipping      ShippingOption `gorm:"type:VARCHAR(3);default:'Yes'" json:"shipping"`
	Color         string         `json:"color,omitempty"`
	Brand         string         `gorm:"not null;index" json:"brand"`
	AverageRating float64        `gorm:"default:0" json:"averageRating"`
	ReviewCount   int            `gorm:"default:0" json:"reviewCount"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	ProductID uint   `gorm:"index" json:"-"`
	PublicID  string `json:"publicId"`
	ImageURL  string `json:"imageUrl"`
}
