package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/devlink-app/devlink-backend/internal/http/handlers"
	httpMW "github.com/devlink-app/devlink-backend/internal/http/middleware"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware

	UserHandler      *httpH.UserHandler
	PortfolioHandler *httpH.PortfolioHandler
	ExportHandler    *httpH.ExportHandler
	GenerateHandler  *httpH.GenerateHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}

		// Public portfolio surface
		if cfg.PortfolioHandler != nil {
			api.GET("/portfolios/public/:slug", cfg.PortfolioHandler.GetPublic)
		}

		// Export and content generation are session-free by contract.
		if cfg.ExportHandler != nil {
			api.POST("/portfolios/:id/export", cfg.ExportHandler.Export)
		}
		if cfg.GenerateHandler != nil {
			api.POST("/generate", cfg.GenerateHandler.Generate)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// User (Me)
		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
		}

		// Portfolios (owner-scoped)
		if cfg.PortfolioHandler != nil {
			protected.POST("/portfolios", cfg.PortfolioHandler.Create)
			protected.GET("/portfolios", cfg.PortfolioHandler.List)
			protected.GET("/portfolios/:id", cfg.PortfolioHandler.Get)
			protected.PUT("/portfolios/:id", cfg.PortfolioHandler.Update)
			protected.DELETE("/portfolios/:id", cfg.PortfolioHandler.Delete)
			protected.POST("/portfolios/:id/publish", cfg.PortfolioHandler.Publish)
		}
	}

	return r
}
