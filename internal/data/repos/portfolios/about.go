package portfolios

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type AboutRepo interface {
	// Upsert keys on portfolio_id, keeping the zero-or-one invariant.
	Upsert(dbc dbctx.Context, portfolioID uuid.UUID, content string) (*types.About, error)
	GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) (*types.About, error)
}

type aboutRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAboutRepo(db *gorm.DB, baseLog *logger.Logger) AboutRepo {
	return &aboutRepo{db: db, log: baseLog.With("repo", "AboutRepo")}
}

func (r *aboutRepo) Upsert(dbc dbctx.Context, portfolioID uuid.UUID, content string) (*types.About, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	about := &types.About{
		ID:          uuid.New(),
		PortfolioID: portfolioID,
		Content:     content,
	}
	if err := transaction.WithContext(dbc.Ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "portfolio_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"content"}),
		}).
		Create(about).Error; err != nil {
		return nil, err
	}
	return about, nil
}

func (r *aboutRepo) GetByPortfolioID(dbc dbctx.Context, portfolioID uuid.UUID) (*types.About, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.About
	if err := transaction.WithContext(dbc.Ctx).
		Where("portfolio_id = ?", portfolioID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
