package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	wshub "bizmanager/infrastructure/websocket"
	websocketHandler "bizmanager/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, hub *wshub.Hub, protected fiber.Handler) {
	wsHandler := websocketHandler.NewWebSocketHandler(hub)

	app.Use("/ws", protected, wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
