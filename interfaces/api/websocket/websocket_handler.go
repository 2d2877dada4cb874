package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	wshub "bizmanager/infrastructure/websocket"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/utils"
)

const usernameLocal = "ws_username"

type WebSocketHandler struct {
	hub *wshub.Hub
}

func NewWebSocketHandler(hub *wshub.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// WebSocketUpgrade runs after the login gate and carries the username into the socket
func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if user, err := utils.GetUserFromContext(c); err == nil {
		c.Locals(usernameLocal, user.Username)
	}
	return c.Next()
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	username, _ := c.Locals(usernameLocal).(string)

	h.hub.Register(c, username)
	defer h.hub.Unregister(c)

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			logger.Debug("WebSocket read ended", "username", username, "error", err)
			return
		}
		h.hub.HandleMessage(c, message)
	}
}
