package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleSeller UserRole = "seller"
	RoleBuyer  UserRole = "buyer"
)

type User struct {
	ID                  uint       `gorm:"primaryKey" json:"_id"`
	Username            string     `gorm:"not null" json:"username"`
	Email               string     `gorm:"unique;not null" json:"email"`
	Password            string     `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	Address             string     `json:"address,omitempty"`
	Role                UserRole   `gorm:"type:VARCHAR(10);default:'buyer'" json:"role"`
	Avatar              Avatar     `gorm:"embedded;embeddedPrefix:avatar_" json:"avatar"`
	ResetPasswordToken  string     `gorm:"index" json:"-"`
	ResetPasswordExpire *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Avatar model embedded in User
type Avatar struct {
	PublicID string `json:"publicId"`
	ImageURL string `json:"imageUrl"`
}
