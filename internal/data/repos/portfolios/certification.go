package portfolios

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type CertificationRepo interface {
	Create(dbc dbctx.Context, entries []types.Certification) ([]types.Certification, error)
	GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Certification, error)
	FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error
}

type certificationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCertificationRepo(db *gorm.DB, baseLog *logger.Logger) CertificationRepo {
	return &certificationRepo{db: db, log: baseLog.With("repo", "CertificationRepo")}
}

func (r *certificationRepo) Create(dbc dbctx.Context, entries []types.Certification) ([]types.Certification, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	if len(entries) == 0 {
		return []types.Certification{}, nil
	}

	if err := transaction.WithContext(dbc.Ctx).Create(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *certificationRepo) GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) ([]types.Certification, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var results []types.Certification
	if err := transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *certificationRepo) FullDeleteByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		Delete(&types.Certification{}).Error
}
