package main

import (
	"log"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/controllers"
	"github.com/n4en/dil2deal/routes"
	"github.com/n4en/dil2deal/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Seed categories and the location hierarchy if missing
	if err := controllers.SeedReferenceData(); err != nil {
		utils.LogError("Failed to seed reference data: %v", err)
		log.Fatal("Failed to seed reference data:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = utils.DefaultPort
	}

	utils.LogInfo("Server starting on port %s", port)
	// Start server
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
