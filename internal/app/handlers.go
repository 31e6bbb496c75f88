package app

import (
	httpH "github.com/devlink-app/devlink-backend/internal/http/handlers"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type Handlers struct {
	Health    *httpH.HealthHandler
	Auth      *httpH.AuthHandler
	User      *httpH.UserHandler
	Portfolio *httpH.PortfolioHandler
	Export    *httpH.ExportHandler
	Generate  *httpH.GenerateHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Auth:      httpH.NewAuthHandler(log, serviceset.Auth),
		User:      httpH.NewUserHandler(log, serviceset.User),
		Portfolio: httpH.NewPortfolioHandler(log, serviceset.Portfolio),
		Export:    httpH.NewExportHandler(log, serviceset.Export),
		Generate:  httpH.NewGenerateHandler(log, serviceset.Generator),
	}
}
