package main

import (
	"github.com/antigravity/teampulse-api/internal/config"
	"github.com/antigravity/teampulse-api/internal/database"
	"github.com/antigravity/teampulse-api/internal/logger"
	"github.com/antigravity/teampulse-api/internal/routes"
	"github.com/antigravity/teampulse-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlog "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

// buildApp assembles the fiber app with its middleware chain and routes.
func buildApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "teampulse-api",
	})
	app.Use(recover.New())
	app.Use(fiberlog.New())
	app.Use(cors.New())

	routes.Setup(app)
	return app
}

func main() {
	// .env is optional; real env vars win either way
	godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Environment)
	defer log.Sync()

	if err := database.Connect(cfg); err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	if cfg.SeedDemoData {
		if err := services.SeedDemoData(); err != nil {
			log.Warnw("failed to seed demo data", "error", err)
		} else {
			log.Infow("demo data seeded")
		}
	}

	app := buildApp()

	log.Infow("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalw("server stopped", "error", err)
	}
}
