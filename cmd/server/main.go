package main

import (
	"log"

	"github.com/artemkap/goblog/backend/internal/router"
	"github.com/artemkap/goblog/backend/pkg/config"
	"github.com/artemkap/goblog/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize database connection (loads .env first)
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Load configuration
	cfg := config.Load()

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Mongo, cfg); err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
