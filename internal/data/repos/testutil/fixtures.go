package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/devlink-app/devlink-backend/internal/domain"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		Name:     "Test User",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedPortfolio(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title, slug string) *types.Portfolio {
	tb.Helper()
	p := &types.Portfolio{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Slug:     slug,
		Template: "modern",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed portfolio: %v", err)
	}
	return p
}

func SeedSkill(tb testing.TB, ctx context.Context, tx *gorm.DB, portfolioID uuid.UUID, name string) *types.Skill {
	tb.Helper()
	s := &types.Skill{
		ID:          uuid.New(),
		PortfolioID: portfolioID,
		Name:        name,
		Category:    "technical",
		Level:       3,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed skill: %v", err)
	}
	return s
}

func PtrString(v string) *string { return &v }

func PtrBool(v bool) *bool { return &v }

func PtrTime(v time.Time) *time.Time { return &v }
