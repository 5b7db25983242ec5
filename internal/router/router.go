package router

import (
	"net/http"

	"labor_cost_backend/internal/config"
	"labor_cost_backend/internal/handlers"
	"labor_cost_backend/internal/middleware"
	"labor_cost_backend/internal/services"
	"labor_cost_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the gin engine with middleware and all application routes.
func New(cfg *config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(utils.GinLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	engine.Use(cors.New(corsConfig))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	engine.NoRoute(func(c *gin.Context) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Route not found.", c.Request.Method+" "+c.Request.URL.Path))
	})

	Setup(engine, services.NewLaborCostService(), cfg.ReportSheetName)
	return engine
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, laborService services.LaborCostService, sheetName string) {
	laborHandler := handlers.NewLaborCostHandler(laborService, sheetName)

	apiV1 := engine.Group("/api/v1")
	SetupLaborCostRoutes(apiV1, laborHandler)
}

// SetupLaborCostRoutes sets up the calculator routes.
func SetupLaborCostRoutes(apiGroup *gin.RouterGroup, laborHandler *handlers.LaborCostHandler) {
	laborRoutes := apiGroup.Group("/labor-cost")
	{
		laborRoutes.GET("/benchmarks", laborHandler.GetBenchmarks)
		laborRoutes.GET("/defaults", laborHandler.GetDefaults)
		laborRoutes.POST("/labor-total", laborHandler.ComputeLaborTotal)
		laborRoutes.POST("/evaluate", laborHandler.EvaluateJSON)
		laborRoutes.GET("/evaluate", laborHandler.EvaluateQuery)
		laborRoutes.POST("/share-link", laborHandler.CreateShareLink)
		laborRoutes.GET("/report.xlsx", laborHandler.DownloadReport)
	}
}
