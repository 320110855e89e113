package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	chatControllers "github.com/BZIvanov/TechnoShop-Backend-EM/controllers/chat"
	"github.com/BZIvanov/TechnoShop-Backend-EM/middleware"
)

func SetupChatRoutes(v1 *gin.RouterGroup, db *gorm.DB, hub *chatControllers.Hub) {
	chats := v1.Group("/chats", middleware.Authenticate(db))
	{
		chats.GET("", chatControllers.GetChats(db))
		chats.POST("", chatControllers.CreateChat(db))

		// websocket endpoint for real-time messaging and presence
		chats.GET("/ws", hub.Serve())
		chats.GET("/online-users", hub.OnlineUsers())

		chats.GET("/with/:receiverId", chatControllers.GetChat(db))
		chats.GET("/:chatId/messages", chatControllers.GetChatMessages(db))
	}
}
