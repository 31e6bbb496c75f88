package app

import (
	"gorm.io/gorm"

	"github.com/devlink-app/devlink-backend/internal/data/repos/portfolios"
	"github.com/devlink-app/devlink-backend/internal/data/repos/users"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type Repos struct {
	User      users.UserRepo
	UserToken users.UserTokenRepo

	Portfolio     portfolios.PortfolioRepo
	About         portfolios.AboutRepo
	Skill         portfolios.SkillRepo
	Project       portfolios.ProjectRepo
	Experience    portfolios.ExperienceRepo
	Education     portfolios.EducationRepo
	Certification portfolios.CertificationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      users.NewUserRepo(db, log),
		UserToken: users.NewUserTokenRepo(db, log),

		Portfolio:     portfolios.NewPortfolioRepo(db, log),
		About:         portfolios.NewAboutRepo(db, log),
		Skill:         portfolios.NewSkillRepo(db, log),
		Project:       portfolios.NewProjectRepo(db, log),
		Experience:    portfolios.NewExperienceRepo(db, log),
		Education:     portfolios.NewEducationRepo(db, log),
		Certification: portfolios.NewCertificationRepo(db, log),
	}
}
