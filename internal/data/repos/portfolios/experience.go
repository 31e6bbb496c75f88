package portfolios

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type ExperienceRepo interface {
	Create(dbc dbctx.Context, entries []types.Experience) ([]types.Experience, error)
	GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Experience, error)
	FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error
}

type experienceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExperienceRepo(db *gorm.DB, baseLog *logger.Logger) ExperienceRepo {
	return &experienceRepo{db: db, log: baseLog.With("repo", "ExperienceRepo")}
}

func (r *experienceRepo) Create(dbc dbctx.Context, entries []types.Experience) ([]types.Experience, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(entries) == 0 {
		return []types.Experience{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *experienceRepo) GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Experience, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []types.Experience
	if err := transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *experienceRepo) FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Delete(&types.Experience{}).Error
}
