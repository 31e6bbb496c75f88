package portfolios

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type ProjectRepo interface {
	Create(dbc dbctx.Context, projects []types.Project) ([]types.Project, error)
	GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Project, error)
	FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error
}

type projectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProjectRepo(db *gorm.DB, baseLog *logger.Logger) ProjectRepo {
	return &projectRepo{db: db, log: baseLog.With("repo", "ProjectRepo")}
}

func (r *projectRepo) Create(dbc dbctx.Context, projects []types.Project) ([]types.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(projects) == 0 {
		return []types.Project{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepo) GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Project, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []types.Project
	if err := transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *projectRepo) FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Delete(&types.Project{}).Error
}
