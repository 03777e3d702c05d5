package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/lottolabs/lottologic-backend/internal/config"
	"github.com/lottolabs/lottologic-backend/internal/handlers"
	"github.com/lottolabs/lottologic-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers the router needs
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	DrawHandler     *handlers.DrawHandler
	GenerateHandler *handlers.GenerateHandler
	StatsHandler    *handlers.StatsHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Presentation page
	router.StaticFile("/", filepath.Join(cfg.Server.StaticDir, "index.html"))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public routes
	public := router.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}

		public.GET("/generate", deps.GenerateHandler.Generate)
		public.GET("/stats", deps.StatsHandler.GetStats)

		draws := public.Group("/draws")
		{
			draws.GET("", deps.DrawHandler.GetRecentDraws)
			draws.GET("/:round", deps.DrawHandler.GetDrawByRound)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		protected.POST("/draws/refresh", deps.DrawHandler.RefreshDraws)
		protected.PUT("/weights", deps.StatsHandler.UpdateWeights)
	}

	return router
}
