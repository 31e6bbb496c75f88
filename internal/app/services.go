package app

import (
	"gorm.io/gorm"

	"github.com/devlink-app/devlink-backend/internal/platform/logger"
	"github.com/devlink-app/devlink-backend/internal/services"
)

type Services struct {
	Auth      services.AuthService
	User      services.UserService
	Avatar    services.AvatarService
	Portfolio services.PortfolioService
	Export    services.ExportService
	Generator services.GeneratorService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")

	// Avatar rendering is optional: without a font configured, accounts are
	// simply created without a generated avatar.
	avatarService, err := services.NewAvatarService(log)
	if err != nil {
		log.Warn("AvatarService unavailable", "error", err)
		avatarService = nil
	}

	authService := services.NewAuthService(
		db, log,
		reposet.User, reposet.UserToken,
		avatarService,
		cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
	)
	userService := services.NewUserService(db, log, reposet.User)
	portfolioService := services.NewPortfolioService(
		db, log,
		reposet.Portfolio,
		reposet.About,
		reposet.Skill,
		reposet.Project,
		reposet.Experience,
		reposet.Education,
		reposet.Certification,
	)
	exportService := services.NewExportService(db, log, reposet.Portfolio)
	generatorService := services.NewGeneratorService(log)

	return Services{
		Auth:      authService,
		User:      userService,
		Avatar:    avatarService,
		Portfolio: portfolioService,
		Export:    exportService,
		Generator: generatorService,
	}
}
