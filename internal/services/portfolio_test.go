package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devlink-app/devlink-backend/internal/data/repos/portfolios"
	"github.com/devlink-app/devlink-backend/internal/data/repos/testutil"
	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/errs"
)

func newPortfolioService(t *testing.T) (PortfolioService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	svc := NewPortfolioService(
		tx, log,
		portfolios.NewPortfolioRepo(tx, log),
		portfolios.NewAboutRepo(tx, log),
		portfolios.NewSkillRepo(tx, log),
		portfolios.NewProjectRepo(tx, log),
		portfolios.NewExperienceRepo(tx, log),
		portfolios.NewEducationRepo(tx, log),
		portfolios.NewCertificationRepo(tx, log),
	)
	return svc, tx
}

func seedOwner(t *testing.T, tx *gorm.DB) uuid.UUID {
	t.Helper()
	return testutil.SeedUser(t, context.Background(), tx, uuid.New().String()+"@example.com").ID
}

func TestCreateRejectsEmptyTitle(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)

	for _, title := range []string{"", "   "} {
		if _, err := svc.Create(context.Background(), owner, title, ""); !errors.Is(err, errs.ErrInvalidArgument) {
			t.Fatalf("Create(%q): expected ErrInvalidArgument, got %v", title, err)
		}
	}
}

func TestCreateSlugSequence(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	want := []string{"zalistic-folio", "zalistic-folio-1", "zalistic-folio-2"}
	for i, expected := range want {
		p, err := svc.Create(ctx, owner, "Zalistic Folio", "")
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		if p.Slug != expected {
			t.Fatalf("Create #%d: slug = %q, want %q", i, p.Slug, expected)
		}
		if p.Template != DefaultTemplate {
			t.Fatalf("Create #%d: template = %q, want %q", i, p.Template, DefaultTemplate)
		}
		if p.IsPublic {
			t.Fatalf("Create #%d: new portfolio must start private", i)
		}
	}
}

func TestReplaceSwapsSkillIdentifiers(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Identifier Churn", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Skills: []types.SkillInput{{Name: "Go", Level: 4}, {Name: "SQL", Level: 2}},
	})
	if err != nil {
		t.Fatalf("first Replace: %v", err)
	}
	first, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if len(first.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(first.Skills))
	}
	oldIDs := map[uuid.UUID]bool{}
	for _, s := range first.Skills {
		oldIDs[s.ID] = true
	}

	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Skills: []types.SkillInput{{Name: "Go", Level: 4}, {Name: "SQL", Level: 2}},
	})
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	second, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if len(second.Skills) != 2 {
		t.Fatalf("expected 2 skills after second replace, got %d", len(second.Skills))
	}
	for _, s := range second.Skills {
		if oldIDs[s.ID] {
			t.Fatalf("skill id %s survived a replace; expected fresh identifiers", s.ID)
		}
	}
}

func TestReplaceLeavesAbsentCollectionsAlone(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Absent Key", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Projects: []types.ProjectInput{{Title: "DevLink", Description: "builder"}},
	})
	if err != nil {
		t.Fatalf("seed Replace: %v", err)
	}
	before, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if len(before.Projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(before.Projects))
	}

	// No projects key: a skills-only save must not touch projects.
	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Skills: []types.SkillInput{{Name: "Go"}},
	})
	if err != nil {
		t.Fatalf("skills-only Replace: %v", err)
	}
	after, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if len(after.Projects) != 1 || after.Projects[0].ID != before.Projects[0].ID {
		t.Fatalf("projects changed by a payload without a projects key")
	}

	// Empty array: delete-only.
	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Projects: []types.ProjectInput{},
	})
	if err != nil {
		t.Fatalf("empty-projects Replace: %v", err)
	}
	cleared, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if len(cleared.Projects) != 0 {
		t.Fatalf("expected 0 projects after empty-array replace, got %d", len(cleared.Projects))
	}
}

func TestReplaceUpsertsAboutAndRootFields(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Root Fields", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Name:  testutil.PtrString("Jane Doe"),
		Bio:   testutil.PtrString("Backend engineer"),
		About: &types.AboutInput{Content: "First about."},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if updated.Name != "Jane Doe" || updated.Bio != "Backend engineer" {
		t.Fatalf("root fields not applied: %+v", updated)
	}
	if updated.Slug != p.Slug {
		t.Fatalf("slug changed on replace: %q -> %q", p.Slug, updated.Slug)
	}

	// Second save rewrites the same About row.
	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		About: &types.AboutInput{Content: "Second about."},
	})
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	got, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if got.About == nil || got.About.Content != "Second about." {
		t.Fatalf("about not upserted: %+v", got.About)
	}
	// Name was absent from the second payload and must survive.
	if got.Name != "Jane Doe" {
		t.Fatalf("absent root field was reset: %q", got.Name)
	}
}

func TestReplaceRejectsBadDates(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Bad Dates", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Experience: []types.ExperienceInput{
			{Company: "Acme", Position: "Engineer", StartDate: "not-a-date"},
		},
	})
	if !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	// The failed save must not have wiped the (empty) collection state or the root.
	got, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned after failed replace: %v", err)
	}
	if got.Title != "Bad Dates" {
		t.Fatalf("root changed by failed replace: %+v", got)
	}
}

func TestSkillDefaults(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Jane Doe", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.Slug != "jane-doe" {
		t.Fatalf("slug = %q, want jane-doe", p.Slug)
	}

	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Skills: []types.SkillInput{{Name: "Go", Category: "technical", Level: 4}},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, err := svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if len(got.Skills) != 1 || got.Skills[0].Name != "Go" || got.Skills[0].Level != 4 || got.Skills[0].Category != "technical" {
		t.Fatalf("unexpected skills: %+v", got.Skills)
	}

	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Skills: []types.SkillInput{{Name: "Rust"}},
	})
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	got, err = svc.GetOwned(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if len(got.Skills) != 1 {
		t.Fatalf("expected exactly 1 skill, got %d", len(got.Skills))
	}
	s := got.Skills[0]
	if s.Name != "Rust" || s.Level != 3 || s.Category != "technical" {
		t.Fatalf("defaults not applied: %+v", s)
	}
}

func TestOwnershipIsExistenceLeakFree(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	stranger := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Private Things", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, notOwned := svc.GetOwned(ctx, p.ID, stranger)
	_, missing := svc.GetOwned(ctx, uuid.New(), stranger)

	if !errors.Is(notOwned, errs.ErrNotFound) || !errors.Is(missing, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for both, got %v / %v", notOwned, missing)
	}
	if notOwned.Error() != missing.Error() {
		t.Fatalf("error text differs between not-owned and missing: %q vs %q", notOwned, missing)
	}

	if _, err := svc.Replace(ctx, p.ID, stranger, &types.ReplacePayload{}); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Replace by stranger: expected ErrNotFound, got %v", err)
	}
	if err := svc.Delete(ctx, p.ID, stranger); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Delete by stranger: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Publish(ctx, p.ID, stranger); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("Publish by stranger: expected ErrNotFound, got %v", err)
	}
}

func TestPublishIsIdempotentAndGatesPublicRead(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Going Public", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Private portfolios are invisible through the public path, even by slug.
	if _, err := svc.GetPublic(ctx, p.Slug); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("GetPublic before publish: expected ErrNotFound, got %v", err)
	}

	published, err := svc.Publish(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !published.IsPublic {
		t.Fatalf("expected isPublic=true after publish")
	}

	again, err := svc.Publish(ctx, p.ID, owner)
	if err != nil {
		t.Fatalf("second Publish: %v", err)
	}
	if !again.IsPublic {
		t.Fatalf("expected isPublic=true after second publish")
	}

	pub, err := svc.GetPublic(ctx, p.Slug)
	if err != nil {
		t.Fatalf("GetPublic after publish: %v", err)
	}
	if pub.ID != p.ID {
		t.Fatalf("GetPublic returned wrong portfolio")
	}
}

func TestDeleteRemovesAggregate(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	p, err := svc.Create(ctx, owner, "Short Lived", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err = svc.Replace(ctx, p.ID, owner, &types.ReplacePayload{
		Skills: []types.SkillInput{{Name: "Go"}},
		About:  &types.AboutInput{Content: "soon gone"},
	})
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}

	if err := svc.Delete(ctx, p.ID, owner); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetOwned(ctx, p.ID, owner); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	var count int64
	if err := tx.Model(&types.Skill{}).Where("portfolio_id = ?", p.ID).Count(&count).Error; err != nil {
		t.Fatalf("count skills: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected dependent skills to cascade, found %d", count)
	}
}

func TestListOwnedScopedToOwner(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	other := seedOwner(t, tx)
	ctx := context.Background()

	if _, err := svc.Create(ctx, owner, "Mine One", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, owner, "Mine Two", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, other, "Theirs", ""); err != nil {
		t.Fatalf("Create: %v", err)
	}

	list, err := svc.ListOwned(ctx, owner)
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 portfolios, got %d", len(list))
	}
	for _, p := range list {
		if p.UserID != owner {
			t.Fatalf("foreign portfolio in list: %+v", p)
		}
	}
}

func TestReplaceCollectionOnlyMovesRecency(t *testing.T) {
	svc, tx := newPortfolioService(t)
	owner := seedOwner(t, tx)
	ctx := context.Background()

	first, err := svc.Create(ctx, owner, "First", "")
	if err != nil {
		t.Fatalf("Create first: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	second, err := svc.Create(ctx, owner, "Second", "")
	if err != nil {
		t.Fatalf("Create second: %v", err)
	}

	list, err := svc.ListOwned(ctx, owner)
	if err != nil {
		t.Fatalf("ListOwned: %v", err)
	}
	if len(list) != 2 || list[0].ID != second.ID {
		t.Fatalf("expected the newest portfolio first, got %d entries", len(list))
	}

	// A save that touches no root column still counts as activity.
	time.Sleep(20 * time.Millisecond)
	if _, err := svc.Replace(ctx, first.ID, owner, &types.ReplacePayload{
		Skills: []types.SkillInput{{Name: "Go"}},
	}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	list, err = svc.ListOwned(ctx, owner)
	if err != nil {
		t.Fatalf("ListOwned after replace: %v", err)
	}
	if list[0].ID != first.ID {
		t.Fatalf("collection-only save did not move the portfolio to the front")
	}
}
