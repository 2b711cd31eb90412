package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"lms-chat-server/handler"
)

type ConfigRoute struct {
	*fiber.App
	*handler.UserHandler
	*handler.ChatHandler
	*handler.MessageHandler
	*handler.FileHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.App.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := rc.App.Group("/api")

	api.Post("/sync-user", rc.UserHandler.SyncUser)
	api.Post("/save-fcm-token", rc.UserHandler.SaveFcmToken)

	api.Post("/upload", rc.FileHandler.Upload)
	api.Get("/files/:id", rc.FileHandler.Download)

	api.Get("/chats", rc.ChatHandler.GetChats)
	api.Post("/chats", rc.ChatHandler.CreateChat)

	api.Get("/messages/:chatId", rc.MessageHandler.GetMessages)
	api.Put("/messages/mark-read", rc.MessageHandler.MarkRead)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
