package main

import (
	"log"

	"labor_cost_backend/internal/config"
	"labor_cost_backend/internal/router"
	"labor_cost_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	engine := router.New(cfg)

	utils.LogInfo("Server starting", map[string]interface{}{
		"port":         cfg.Port,
		"gin_mode":     cfg.GinMode,
		"cors_origins": cfg.CORSAllowedOrigins,
	})
	utils.LogInfo("Frontend should be configured to make API calls", map[string]interface{}{"url": "http://localhost:" + cfg.Port + "/api/v1"})

	if err := engine.Run(":" + cfg.Port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
