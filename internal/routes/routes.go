package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/example/xoibasu/internal/config"
	"github.com/example/xoibasu/internal/database"
	"github.com/example/xoibasu/internal/handlers"
	"github.com/example/xoibasu/internal/realtime"
	"github.com/example/xoibasu/internal/services"
)

// Register wires up all HTTP routes, the push channel and static serving.
func Register(app *fiber.App, store *database.Store, cfg *config.Config, hub *realtime.Hub) {
	telegramService := services.NewTelegramService(cfg.TelegramToken, cfg.TelegramChatID)
	zaloService := services.NewZaloService(cfg.ZaloAccessToken, cfg.ZaloUserID)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.OrderEmailTo, cfg.EmailFrom)

	orderHandler := handlers.NewOrderHandler(store, telegramService, zaloService, emailService, hub)
	statsHandler := handlers.NewStatsHandler(store)
	miscHandler := handlers.NewMiscHandler(emailService)

	api := app.Group("/api")

	api.Post("/orders", orderHandler.CreateOrder)
	api.Get("/orders", orderHandler.ListOrders)
	api.Get("/orders/export", orderHandler.ExportOrders)
	api.Patch("/orders/:id/status", orderHandler.UpdateStatus)

	api.Get("/stats", statsHandler.GetStats)
	api.Get("/ping", miscHandler.Ping)
	api.Get("/test-email", miscHandler.TestEmail)

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		id := hub.Add(conn)
		defer hub.Remove(id)
		// Push-only channel: drain reads until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))

	// Storefront and dashboard pages live next to the API.
	app.Static("/", cfg.StaticDir)
}
