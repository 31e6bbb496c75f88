package portfolios

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type EducationRepo interface {
	Create(dbc dbctx.Context, entries []types.Education) ([]types.Education, error)
	GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Education, error)
	FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error
}

type educationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEducationRepo(db *gorm.DB, baseLog *logger.Logger) EducationRepo {
	return &educationRepo{db: db, log: baseLog.With("repo", "EducationRepo")}
}

func (r *educationRepo) Create(dbc dbctx.Context, entries []types.Education) ([]types.Education, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(entries) == 0 {
		return []types.Education{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *educationRepo) GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Education, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []types.Education
	if err := transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *educationRepo) FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Delete(&types.Education{}).Error
}
