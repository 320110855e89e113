package chatControllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/BZIvanov/TechnoShop-Backend-EM/presence"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub tracks open chat sockets per user and fans messages out to chat
// participants. Presence itself lives in Redis, the hub only holds the
// connections of this instance.
type Hub struct {
	mu       sync.Mutex
	clients  map[uint][]*websocket.Conn
	db       *gorm.DB
	presence *presence.Store
}

func NewHub(db *gorm.DB, store *presence.Store) *Hub {
	return &Hub{
		clients:  make(map[uint][]*websocket.Conn),
		db:       db,
		presence: store,
	}
}

type socketEvent struct {
	Event   string `json:"event"`
	ChatID  uint   `json:"chatId,omitempty"`
	Content string `json:"content,omitempty"`
}

type socketPayload struct {
	Event   string          `json:"event"`
	Message *models.Message `json:"message,omitempty"`
	UserID  uint            `json:"userId,omitempty"`
	Online  bool            `json:"online,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// -------- Connection lifecycle --------

func (h *Hub) add(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[userID] = append(h.clients[userID], conn)
}

func (h *Hub) remove(userID uint, conn *websocket.Conn) (last bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.clients[userID]
	for i, existing := range conns {
		if existing == conn {
			h.clients[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
		return true
	}
	return false
}

func (h *Hub) send(userID uint, payload socketPayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, conn := range h.clients[userID] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}

// broadcastStatus tells every connected user about a presence change.
func (h *Hub) broadcastStatus(userID uint, online bool) {
	h.mu.Lock()
	targets := make([]uint, 0, len(h.clients))
	for id := range h.clients {
		targets = append(targets, id)
	}
	h.mu.Unlock()

	for _, id := range targets {
		h.send(id, socketPayload{Event: "userStatus", UserID: userID, Online: online})
	}
}

// -------- Handlers --------

// GET /v1/chats/online-users — IDs of currently online users, from Redis so the
// answer covers all instances.
func (h *Hub) OnlineUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.presence.OnlineUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch online users"})
			return
		}
		if users == nil {
			users = []uint{}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
	}
}

// GET /v1/chats/ws (authenticated websocket upgrade)
func (h *Hub) Serve() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.MustCurrentUser(c)

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		ctx := c.Request.Context()

		h.add(user.ID, conn)
		if err := h.presence.MarkOnline(ctx, user.ID); err != nil {
			log.Printf("presence mark online failed for user %d: %v", user.ID, err)
		}
		h.broadcastStatus(user.ID, true)

		defer func() {
			if h.remove(user.ID, conn) {
				if err := h.presence.MarkOffline(context.Background(), user.ID); err != nil {
					log.Printf("presence mark offline failed for user %d: %v", user.ID, err)
				}
				h.broadcastStatus(user.ID, false)
			}
		}()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				break
			}

			h.presence.Refresh(ctx, user.ID)

			var event socketEvent
			if err := json.Unmarshal(data, &event); err != nil {
				continue
			}

			if event.Event == "sendMessage" {
				h.handleSendMessage(ctx, user, event)
			}
		}
	}
}

// handleSendMessage persists the message and fans it out to every participant
// of the chat, sender included.
func (h *Hub) handleSendMessage(ctx context.Context, sender models.User, event socketEvent) {
	var participant models.ChatParticipant
	if err := h.db.Where("chat_id = ? AND user_id = ?", event.ChatID, sender.ID).
		First(&participant).Error; err != nil {
		h.send(sender.ID, socketPayload{Event: "error", Error: "Chat not found"})
		return
	}

	message := models.Message{
		ChatID:   event.ChatID,
		SenderID: sender.ID,
		Content:  event.Content,
	}

	txErr := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&models.Chat{}).
			Where("id = ?", event.ChatID).
			Update("most_recent_message", event.Content).Error
	})
	if txErr != nil {
		h.send(sender.ID, socketPayload{Event: "error", Error: "Failed to send message"})
		return
	}

	h.db.Preload("Sender").First(&message, message.ID)

	var participants []models.ChatParticipant
	if err := h.db.Where("chat_id = ?", event.ChatID).Find(&participants).Error; err != nil {
		return
	}
	for _, p := range participants {
		h.send(p.UserID, socketPayload{Event: "newMessage", Message: &message})
	}
}
