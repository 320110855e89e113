package chatControllers

import (
	"errors"
	"net/http"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateChatRequest struct {
	ReceiverID uint `json:"receiverId" binding:"required"`
}

// -------- Helpers --------

// findChatBetween returns the chat both users participate in, if any.
func findChatBetween(db *gorm.DB, userID, receiverID uint) (*models.Chat, error) {
	var chatIDs []uint
	if err := db.Model(&models.ChatParticipant{}).
		Where("user_id = ?", userID).
		Pluck("chat_id", &chatIDs).Error; err != nil {
		return nil, err
	}
	if len(chatIDs) == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var participant models.ChatParticipant
	err := db.Where("chat_id IN ? AND user_id = ?", chatIDs, receiverID).
		First(&participant).Error
	if err != nil {
		return nil, err
	}

	var chat models.Chat
	if err := db.Preload("Participants.User").First(&chat, participant.ChatID).Error; err != nil {
		return nil, err
	}
	return &chat, nil
}

// -------- Handlers --------

// GET /v1/chats — all chats the caller participates in.
func GetChats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)

		var chatIDs []uint
		if err := db.Model(&models.ChatParticipant{}).
			Where("user_id = ?", user.ID).
			Pluck("chat_id", &chatIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch chats"})
			return
		}

		chats := []models.Chat{}
		if len(chatIDs) > 0 {
			if err := db.Preload("Participants.User").
				Where("id IN ?", chatIDs).
				Order("updated_at desc").
				Find(&chats).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch chats"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "chats": chats})
	}
}

// GET /v1/chats/with/:receiverId — the chat between the caller and the receiver.
func GetChat(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)

		var receiver models.User
		if err := db.First(&receiver, "id = ?", c.Param("receiverId")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Receiver not found"})
			return
		}

		chat, err := findChatBetween(db, user.ID, receiver.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": true, "chat": nil})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch chat"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "chat": chat})
	}
}

// POST /v1/chats — opens a buyer-seller conversation.
func CreateChat(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)

		var req CreateChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		var receiver models.User
		if err := db.First(&receiver, "id = ?", req.ReceiverID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Receiver not found"})
			return
		}

		if _, err := findChatBetween(db, user.ID, receiver.ID); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Chat already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create chat"})
			return
		}

		chat := models.Chat{
			ChatType: models.ChatBuyerSeller,
			Participants: []models.ChatParticipant{
				{UserID: user.ID, Role: user.Role},
				{UserID: receiver.ID, Role: receiver.Role},
			},
		}
		if err := db.Create(&chat).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create chat"})
			return
		}

		db.Preload("Participants.User").First(&chat, chat.ID)

		c.JSON(http.StatusCreated, gin.H{"success": true, "chat": chat})
	}
}

// GET /v1/chats/:chatId/messages
func GetChatMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)
		chatID := c.Param("chatId")

		var participant models.ChatParticipant
		if err := db.Where("chat_id = ? AND user_id = ?", chatID, user.ID).
			First(&participant).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Chat not found"})
			return
		}

		var messages []models.Message
		if err := db.Preload("Sender").
			Where("chat_id = ?", chatID).
			Order("created_at asc").
			Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
	}
}
