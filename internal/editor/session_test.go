package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/errs"
)

// fakeStore hands out a fixed aggregate and records the last replace payload.
type fakeStore struct {
	current     *types.Portfolio
	lastPayload *types.ReplacePayload
	replaceErr  error
}

func (f *fakeStore) GetOwned(ctx context.Context, portfolioID, ownerID uuid.UUID) (*types.Portfolio, error) {
	return f.current, nil
}

func (f *fakeStore) Replace(ctx context.Context, portfolioID, ownerID uuid.UUID, payload *types.ReplacePayload) (*types.Portfolio, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	f.lastPayload = payload
	return f.current, nil
}

func fixture() *types.Portfolio {
	return &types.Portfolio{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Title:    "Jane Doe",
		Slug:     "jane-doe",
		Template: "modern",
		Name:     "Jane Doe",
		Bio:      "Backend engineer",
		About:    &types.About{ID: uuid.New(), Content: "hello"},
		Skills: []types.Skill{
			{ID: uuid.New(), Name: "Go", Category: "technical", Level: 4},
		},
	}
}

func openSession(t *testing.T, store *fakeStore) *Session {
	t.Helper()
	p := store.current
	s, err := Open(context.Background(), store, p.ID, p.UserID)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestHydrateMirrorsAggregate(t *testing.T) {
	store := &fakeStore{current: fixture()}
	s := openSession(t, store)

	title, err := s.Scalar("title")
	if err != nil {
		t.Fatalf("Scalar: %v", err)
	}
	if title != "Jane Doe" {
		t.Fatalf("title = %v", title)
	}
	if s.AboutContent() != "hello" {
		t.Fatalf("about = %q", s.AboutContent())
	}
	skills, err := s.Items(SectionSkills)
	if err != nil {
		t.Fatalf("Items: %v", err)
	}
	if len(skills) != 1 || skills[0]["name"] != "Go" {
		t.Fatalf("skills = %+v", skills)
	}
}

func TestScalarAndSectionValidation(t *testing.T) {
	store := &fakeStore{current: fixture()}
	s := openSession(t, store)

	if err := s.SetScalar("slug", "hacked"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("slug must not be editable, got %v", err)
	}
	if err := s.SetScalar("bio", "updated"); err != nil {
		t.Fatalf("SetScalar(bio): %v", err)
	}
	if err := s.SetSectionField("skills", "name", "x"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("only about is a singular section, got %v", err)
	}
	if _, err := s.Items("nonsense"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("unknown section, got %v", err)
	}
}

func TestAddUpdateRemoveItem(t *testing.T) {
	store := &fakeStore{current: fixture()}
	s := openSession(t, store)

	if err := s.AddItem(SectionProjects, Item{"title": "DevLink"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	projects, _ := s.Items(SectionProjects)
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}
	tempID, ok := projects[0]["id"].(string)
	if !ok || tempID == "" {
		t.Fatalf("added item missing temp id: %+v", projects[0])
	}
	if _, err := uuid.Parse(tempID); err != nil {
		t.Fatalf("temp id is not a uuid: %q", tempID)
	}

	if err := s.UpdateItem(SectionProjects, 0, "description", "builder"); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	projects, _ = s.Items(SectionProjects)
	if projects[0]["description"] != "builder" {
		t.Fatalf("update not applied: %+v", projects[0])
	}

	if err := s.UpdateItem(SectionProjects, 5, "x", "y"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("out of range update, got %v", err)
	}
	if err := s.RemoveItem(SectionProjects, 5); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("out of range remove, got %v", err)
	}

	if err := s.RemoveItem(SectionProjects, 0); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	projects, _ = s.Items(SectionProjects)
	if len(projects) != 0 {
		t.Fatalf("expected 0 projects, got %d", len(projects))
	}
}

func TestSaveSendsWholeMirror(t *testing.T) {
	store := &fakeStore{current: fixture()}
	s := openSession(t, store)

	if err := s.SetScalar("bio", "updated bio"); err != nil {
		t.Fatalf("SetScalar: %v", err)
	}
	if err := s.SetSectionField(SectionAbout, "content", "new about"); err != nil {
		t.Fatalf("SetSectionField: %v", err)
	}
	if err := s.AddItem(SectionSkills, Item{"name": "Rust"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if _, err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	payload := store.lastPayload
	if payload == nil {
		t.Fatalf("no payload sent")
	}
	if payload.Bio == nil || *payload.Bio != "updated bio" {
		t.Fatalf("bio not in payload: %+v", payload.Bio)
	}
	if payload.About == nil || payload.About.Content != "new about" {
		t.Fatalf("about not in payload: %+v", payload.About)
	}
	// Every collection travels with a save, hydrated ones included.
	if payload.Skills == nil || payload.Projects == nil || payload.Experience == nil ||
		payload.Education == nil || payload.Certifications == nil {
		t.Fatalf("expected all collections present in payload")
	}
	if len(payload.Skills) != 2 {
		t.Fatalf("expected 2 skills in payload, got %d", len(payload.Skills))
	}
}

func TestSaveFailureLeavesMirrorUntouched(t *testing.T) {
	store := &fakeStore{current: fixture(), replaceErr: errors.New("boom")}
	s := openSession(t, store)

	if err := s.SetScalar("bio", "kept on failure"); err != nil {
		t.Fatalf("SetScalar: %v", err)
	}
	if err := s.AddItem(SectionSkills, Item{"name": "Rust"}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if _, err := s.Save(context.Background()); err == nil {
		t.Fatalf("expected save failure")
	}

	bio, _ := s.Scalar("bio")
	if bio != "kept on failure" {
		t.Fatalf("mirror scalar lost after failed save: %v", bio)
	}
	skills, _ := s.Items(SectionSkills)
	if len(skills) != 2 {
		t.Fatalf("mirror skills lost after failed save: %d", len(skills))
	}
}

func TestSaveRehydratesFromStore(t *testing.T) {
	store := &fakeStore{current: fixture()}
	s := openSession(t, store)

	if err := s.SetScalar("bio", "short lived"); err != nil {
		t.Fatalf("SetScalar: %v", err)
	}

	// The store's canonical aggregate wins after a save.
	if _, err := s.Save(context.Background()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	bio, _ := s.Scalar("bio")
	if bio != "Backend engineer" {
		t.Fatalf("expected re-hydrated bio, got %v", bio)
	}
}
