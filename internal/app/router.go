package app

import (
	devhttp "github.com/devlink-app/devlink-backend/internal/http"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers, middleware Middleware) *devhttp.Server {
	log.Info("Wiring router...")
	return devhttp.NewServer(devhttp.RouterConfig{
		Log: log,

		AuthHandler:    handlerset.Auth,
		AuthMiddleware: middleware.Auth,

		UserHandler:      handlerset.User,
		PortfolioHandler: handlerset.Portfolio,
		ExportHandler:    handlerset.Export,
		GenerateHandler:  handlerset.Generate,

		HealthHandler: handlerset.Health,
	})
}
