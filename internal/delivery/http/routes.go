package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/laptopfinder/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, limiter *RateLimiter) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Operational endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(limiter))
	{
		v1.POST("/chat", handler.Chat)
		v1.POST("/recommendations", handler.Recommend)
		v1.POST("/extract", handler.Extract)

		laptops := v1.Group("/laptops")
		{
			laptops.GET("", handler.ListLaptops)
			laptops.GET("/:id", handler.GetLaptop)
		}

		v1.GET("/brands", handler.ListBrands)
		v1.GET("/use-categories", handler.ListUseCategories)

		conversations := v1.Group("/conversations")
		{
			conversations.GET("/:id/history", handler.ConversationHistory)
			conversations.DELETE("/:id", handler.EndConversation)
		}
	}

	return router
}
