package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"stridewear/internal/config"
	"stridewear/internal/http/handlers"
	applog "stridewear/internal/log"
	"stridewear/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, db, err := repos.Open(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and answer with a generic shape; never leak internals
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal error",
			})
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())

	// ---------- Routes ----------
	deps := handlers.NewDeps(client, db, cfg)
	admin := handlers.RequireAdmin(cfg)

	api := app.Group("/api")
	api.Get("/health", deps.HealthHandler.Check)

	api.Get("/brands", deps.BrandHandler.ListPublic)
	api.Get("/brands/all", admin, deps.BrandHandler.ListAll)
	api.Post("/brands", admin, deps.BrandHandler.Create)
	api.Put("/brands/:id", admin, deps.BrandHandler.Update)
	api.Delete("/brands/:id", admin, deps.BrandHandler.Delete)

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Detail)
	api.Post("/products", admin, deps.ProductHandler.Create)
	api.Put("/products/:id", admin, deps.ProductHandler.Update)
	api.Delete("/products/:id", admin, deps.ProductHandler.Delete)

	api.Post("/messages", deps.MessageHandler.Create)
	api.Get("/messages", admin, deps.MessageHandler.List)
	api.Put("/messages/:id/read", admin, deps.MessageHandler.MarkRead)
	api.Delete("/messages/:id", admin, deps.MessageHandler.Delete)

	api.Get("/settings", deps.SettingsHandler.Get)
	api.Put("/settings", admin, deps.SettingsHandler.Put)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
