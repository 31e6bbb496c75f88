package portfolios

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type SkillRepo interface {
	Create(dbc dbctx.Context, skills []types.Skill) ([]types.Skill, error)
	GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Skill, error)
	FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error
}

type skillRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSkillRepo(db *gorm.DB, baseLog *logger.Logger) SkillRepo {
	return &skillRepo{db: db, log: baseLog.With("repo", "SkillRepo")}
}

func (r *skillRepo) Create(dbc dbctx.Context, skills []types.Skill) ([]types.Skill, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(skills) == 0 {
		return []types.Skill{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillRepo) GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Skill, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []types.Skill
	if err := transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *skillRepo) FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Delete(&types.Skill{}).Error
}
