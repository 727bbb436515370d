package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/xoibasu/internal/config"
	"github.com/example/xoibasu/internal/database"
	"github.com/example/xoibasu/internal/handlers"
	"github.com/example/xoibasu/internal/middleware"
	"github.com/example/xoibasu/internal/realtime"
	"github.com/example/xoibasu/internal/routes"
)

func main() {
	cfg := config.Load()

	store, err := database.Open(cfg.DataFile)
	if err != nil {
		log.Fatalf("[Store] open %s: %v", cfg.DataFile, err)
	}

	hub := realtime.NewHub()

	app := fiber.New(fiber.Config{
		AppName:      "Xoi Ba Su Backend",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.CORS())

	routes.Register(app, store, cfg, hub)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		hub.Close()
		_ = app.Shutdown()
	}()

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
