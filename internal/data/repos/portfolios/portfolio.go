package portfolios

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type PortfolioRepo interface {
	Create(dbc dbctx.Context, p *types.Portfolio) (*types.Portfolio, error)
	// GetOwned returns the root row only when both id and owner match.
	GetOwned(dbc dbctx.Context, portfolioID, userID uuid.UUID) (*types.Portfolio, error)
	// GetOwnedAggregate is GetOwned plus every dependent preloaded.
	GetOwnedAggregate(dbc dbctx.Context, portfolioID, userID uuid.UUID) (*types.Portfolio, error)
	// GetPublicBySlug returns the aggregate only for public portfolios.
	GetPublicBySlug(dbc dbctx.Context, slug string) (*types.Portfolio, error)
	// GetAggregate loads by id alone, for surfaces that do not scope by owner.
	GetAggregate(dbc dbctx.Context, portfolioID uuid.UUID) (*types.Portfolio, error)
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.Portfolio, error)
	SlugExists(dbc dbctx.Context, slug string) (bool, error)
	UpdateFields(dbc dbctx.Context, portfolioID uuid.UUID, fields map[string]interface{}) error
	// TouchUpdatedAt bumps updated_at even when no column changes.
	TouchUpdatedAt(dbc dbctx.Context, portfolioID uuid.UUID) error
	SetPublic(dbc dbctx.Context, portfolioID uuid.UUID) error
	FullDeleteByID(dbc dbctx.Context, portfolioID uuid.UUID) error
}

type portfolioRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPortfolioRepo(db *gorm.DB, baseLog *logger.Logger) PortfolioRepo {
	return &portfolioRepo{db: db, log: baseLog.With("repo", "PortfolioRepo")}
}

func (r *portfolioRepo) resolve(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx.WithContext(dbc.Ctx)
	}
	return r.db.WithContext(dbc.Ctx)
}

func preloadDependents(q *gorm.DB) *gorm.DB {
	return q.
		Preload("About").
		Preload("Experience").
		Preload("Education").
		Preload("Skills").
		Preload("Projects").
		Preload("Certifications")
}

func (r *portfolioRepo) Create(dbc dbctx.Context, p *types.Portfolio) (*types.Portfolio, error) {
	if err := r.resolve(dbc).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *portfolioRepo) GetOwned(dbc dbctx.Context, portfolioID, userID uuid.UUID) (*types.Portfolio, error) {
	var result types.Portfolio
	if err := r.resolve(dbc).
		Where("id = ? AND user_id = ?", portfolioID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *portfolioRepo) GetOwnedAggregate(dbc dbctx.Context, portfolioID, userID uuid.UUID) (*types.Portfolio, error) {
	var result types.Portfolio
	if err := preloadDependents(r.resolve(dbc)).
		Where("id = ? AND user_id = ?", portfolioID, userID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *portfolioRepo) GetPublicBySlug(dbc dbctx.Context, slug string) (*types.Portfolio, error) {
	var result types.Portfolio
	if err := preloadDependents(r.resolve(dbc)).
		Where("slug = ? AND is_public = ?", slug, true).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *portfolioRepo) GetAggregate(dbc dbctx.Context, portfolioID uuid.UUID) (*types.Portfolio, error) {
	var result types.Portfolio
	if err := preloadDependents(r.resolve(dbc)).
		Where("id = ?", portfolioID).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *portfolioRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]*types.Portfolio, error) {
	var results []*types.Portfolio
	if err := r.resolve(dbc).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *portfolioRepo) SlugExists(dbc dbctx.Context, slug string) (bool, error) {
	var count int64
	if err := r.resolve(dbc).
		Model(&types.Portfolio{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *portfolioRepo) UpdateFields(dbc dbctx.Context, portfolioID uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.resolve(dbc).
		Model(&types.Portfolio{}).
		Where("id = ?", portfolioID).
		Updates(fields).Error
}

func (r *portfolioRepo) TouchUpdatedAt(dbc dbctx.Context, portfolioID uuid.UUID) error {
	return r.resolve(dbc).
		Model(&types.Portfolio{}).
		Where("id = ?", portfolioID).
		Update("updated_at", time.Now()).Error
}

func (r *portfolioRepo) SetPublic(dbc dbctx.Context, portfolioID uuid.UUID) error {
	return r.resolve(dbc).
		Model(&types.Portfolio{}).
		Where("id = ?", portfolioID).
		Update("is_public", true).Error
}

func (r *portfolioRepo) FullDeleteByID(dbc dbctx.Context, portfolioID uuid.UUID) error {
	return r.resolve(dbc).
		Where("id = ?", portfolioID).
		Delete(&types.Portfolio{}).Error
}
