// Package editor holds the in-memory mirror a client edits between loading a
// portfolio and saving it. All mutations are local; nothing touches the store
// until Save, which pushes the whole mirror as one full replace.
package editor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/errs"
)

// Store is the slice of the portfolio service a session needs.
type Store interface {
	GetOwned(ctx context.Context, portfolioID, ownerID uuid.UUID) (*types.Portfolio, error)
	Replace(ctx context.Context, portfolioID, ownerID uuid.UUID, payload *types.ReplacePayload) (*types.Portfolio, error)
}

const (
	SectionAbout          = "about"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
)

var scalarFields = map[string]bool{
	"title":             true,
	"template":          true,
	"isPublic":          true,
	"name":              true,
	"professionalTitle": true,
	"email":             true,
	"phone":             true,
	"location":          true,
	"avatar":            true,
	"bio":               true,
	"github":            true,
	"linkedin":          true,
	"twitter":           true,
	"website":           true,
}

var collectionSections = map[string]bool{
	SectionSkills:         true,
	SectionProjects:       true,
	SectionExperience:     true,
	SectionEducation:      true,
	SectionCertifications: true,
}

// Item is one entry of a collection section, keyed by the wire field names.
// Freshly added items carry a temporary "id" until the next save regenerates
// server identifiers.
type Item map[string]interface{}

type Session struct {
	store       Store
	portfolioID uuid.UUID
	ownerID     uuid.UUID

	scalars  map[string]interface{}
	about    map[string]interface{}
	sections map[string][]Item
}

func NewSession(store Store, portfolioID, ownerID uuid.UUID) *Session {
	return &Session{
		store:       store,
		portfolioID: portfolioID,
		ownerID:     ownerID,
		scalars:     map[string]interface{}{},
		about:       map[string]interface{}{},
		sections:    map[string][]Item{},
	}
}

// Open loads the aggregate and returns a hydrated session.
func Open(ctx context.Context, store Store, portfolioID, ownerID uuid.UUID) (*Session, error) {
	s := NewSession(store, portfolioID, ownerID)
	p, err := store.GetOwned(ctx, portfolioID, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.Hydrate(p); err != nil {
		return nil, err
	}
	return s, nil
}

// Hydrate replaces the whole mirror with the given aggregate snapshot.
func (s *Session) Hydrate(p *types.Portfolio) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("snapshot portfolio: %w", err)
	}
	var full map[string]interface{}
	if err := json.Unmarshal(raw, &full); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	scalars := map[string]interface{}{}
	for field := range scalarFields {
		if v, ok := full[field]; ok {
			scalars[field] = v
		}
	}

	about := map[string]interface{}{}
	if a, ok := full[SectionAbout].(map[string]interface{}); ok {
		about["content"] = a["content"]
	}

	sections := map[string][]Item{}
	for section := range collectionSections {
		items := []Item{}
		if list, ok := full[section].([]interface{}); ok {
			for _, entry := range list {
				if m, ok := entry.(map[string]interface{}); ok {
					items = append(items, Item(m))
				}
			}
		}
		sections[section] = items
	}

	s.scalars = scalars
	s.about = about
	s.sections = sections
	return nil
}

// SetScalar sets one root-level field in the mirror.
func (s *Session) SetScalar(field string, value interface{}) error {
	if !scalarFields[field] {
		return fmt.Errorf("%w: unknown field %q", errs.ErrInvalidArgument, field)
	}
	s.scalars[field] = value
	return nil
}

// SetSectionField sets a nested field of the singular about section.
func (s *Session) SetSectionField(section, field string, value interface{}) error {
	if section != SectionAbout {
		return fmt.Errorf("%w: unknown singular section %q", errs.ErrInvalidArgument, section)
	}
	s.about[field] = value
	return nil
}

// AddItem appends the template to the named collection, stamped with a
// temporary id so the UI can address it before the next save.
func (s *Session) AddItem(section string, template Item) error {
	if !collectionSections[section] {
		return fmt.Errorf("%w: unknown section %q", errs.ErrInvalidArgument, section)
	}
	item := Item{}
	for k, v := range template {
		item[k] = v
	}
	item["id"] = uuid.New().String()
	s.sections[section] = append(s.sections[section], item)
	return nil
}

// UpdateItem mutates one field of the item at index in the named collection.
func (s *Session) UpdateItem(section string, index int, field string, value interface{}) error {
	items, err := s.itemsAt(section, index)
	if err != nil {
		return err
	}
	items[index][field] = value
	return nil
}

// RemoveItem removes the item at index from the named collection.
func (s *Session) RemoveItem(section string, index int) error {
	items, err := s.itemsAt(section, index)
	if err != nil {
		return err
	}
	s.sections[section] = append(items[:index], items[index+1:]...)
	return nil
}

// Items returns a copy of the named collection for display.
func (s *Session) Items(section string) ([]Item, error) {
	if !collectionSections[section] {
		return nil, fmt.Errorf("%w: unknown section %q", errs.ErrInvalidArgument, section)
	}
	out := make([]Item, len(s.sections[section]))
	copy(out, s.sections[section])
	return out, nil
}

// Scalar returns a root-level field of the mirror.
func (s *Session) Scalar(field string) (interface{}, error) {
	if !scalarFields[field] {
		return nil, fmt.Errorf("%w: unknown field %q", errs.ErrInvalidArgument, field)
	}
	return s.scalars[field], nil
}

// AboutContent returns the mirrored about text.
func (s *Session) AboutContent() string {
	if v, ok := s.about["content"].(string); ok {
		return v
	}
	return ""
}

func (s *Session) itemsAt(section string, index int) ([]Item, error) {
	if !collectionSections[section] {
		return nil, fmt.Errorf("%w: unknown section %q", errs.ErrInvalidArgument, section)
	}
	items := s.sections[section]
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("%w: index %d out of range for %s", errs.ErrInvalidArgument, index, section)
	}
	return items, nil
}

// Save sends the entire mirror as one replace payload and, on success,
// re-hydrates from the canonical aggregate. On failure the mirror is left
// exactly as it was.
func (s *Session) Save(ctx context.Context) (*types.Portfolio, error) {
	payload, err := s.payload()
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Replace(ctx, s.portfolioID, s.ownerID, payload); err != nil {
		return nil, err
	}
	p, err := s.store.GetOwned(ctx, s.portfolioID, s.ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.Hydrate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// payload flattens the mirror into the wire shape of a full save. Temporary
// ids and other unknown keys fall away during decoding.
func (s *Session) payload() (*types.ReplacePayload, error) {
	body := map[string]interface{}{}
	for k, v := range s.scalars {
		body[k] = v
	}
	body[SectionAbout] = s.about
	for section, items := range s.sections {
		body[section] = items
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode mirror: %w", err)
	}
	var payload types.ReplacePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode mirror: %w", err)
	}
	return &payload, nil
}
