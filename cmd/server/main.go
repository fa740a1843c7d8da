package main

import (
	"log"
	"strings"

	"github.com/Sixta74/evalS4IL/internal/audit"
	"github.com/Sixta74/evalS4IL/internal/config"
	"github.com/Sixta74/evalS4IL/internal/database"
	"github.com/Sixta74/evalS4IL/internal/inventory"
	"github.com/Sixta74/evalS4IL/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}
	s := store.New(db)

	app := fiber.New(fiber.Config{
		ErrorHandler: inventory.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	inventory.RegisterRoutes(app, s)

	// change journal
	app.Get("/audit-logs", audit.ListAuditLogsHandler(db))

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
