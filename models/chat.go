package models

import "time"

type ChatType string

const (
	ChatBuyerSeller ChatType = "buyer-seller"
	ChatUserAdmin   ChatType = "user-admin"
)

type Chat struct {
	ID                uint              `gorm:"primaryKey" json:"_id"`
	Participants      []ChatParticipant `gorm:"foreignKey:ChatID;constraint:OnDelete:CASCADE" json:"participants"`
	ChatType          ChatType          `gorm:"type:VARCHAR(20);default:'buyer-seller'" json:"chatType"`
	MostRecentMessage string            `json:"mostRecentMessage"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

type ChatParticipant struct {
	ID     uint     `gorm:"primaryKey" json:"-"`
	ChatID uint     `gorm:"index" json:"-"`
	UserID uint     `gorm:"index" json:"user"`
	User   *User    `gorm:"foreignKey:UserID" json:"userDetails,omitempty"`
	Role   UserRole `gorm:"type:VARCHAR(10)" json:"role"`
}

type Message struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	ChatID    uint      `gorm:"index;not null" json:"chat"`
	Chat      *Chat     `gorm:"foreignKey:ChatID" json:"-"`
	SenderID  uint      `gorm:"index;not null" json:"sender"`
	Sender    *User     `gorm:"foreignKey:SenderID" json:"senderDetails,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
