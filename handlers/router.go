package handlers

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/resumegenie/backend/config"
	"github.com/resumegenie/backend/logging"
	"github.com/resumegenie/backend/mcp"
	"github.com/resumegenie/backend/tools"
)

// Dependencies are the services the HTTP API is built on
type Dependencies struct {
	Resume ResumeService
	PDF    PDFService
	Tools  *tools.ToolRegistry
}

// NewRouter builds the gin engine with middleware and all routes
func NewRouter(cfg *config.Config, deps Dependencies) *gin.Engine {
	RegisterValidators()

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(AccessLogger(logging.Component("http")))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	if cfg.RateLimitRPS > 0 {
		router.Use(NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", HealthCheck)

	resumeHandler := NewResumeHandler(deps.Resume, deps.PDF, cfg.MaxUploadMB)
	toolsHandler := NewToolsHandler(deps.Tools)
	mcpServer := mcp.NewServer(deps.Tools, ServiceName, ServiceVersion)

	api := router.Group("/api")
	{
		api.POST("/upload", resumeHandler.Upload)
		api.POST("/polish", resumeHandler.Polish)
		api.POST("/analyze", resumeHandler.Analyze)
		api.POST("/generate-pdf", resumeHandler.GeneratePDF)

		// Tools endpoints
		api.GET("/tools", toolsHandler.GetTools)

		// MCP endpoints
		mcpServer.RegisterRoutes(api)
	}

	router.NoRoute(NotFound)

	return router
}

// corsConfig allows the configured frontends. "*" opens the API to any
// origin without credentials.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowWildcard = true
	cfg.AllowCredentials = true
	return cfg
}
