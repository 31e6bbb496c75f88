package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devlink-app/devlink-backend/internal/data/repos/portfolios"
	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/errs"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

const (
	// DefaultTemplate is applied when create requests omit a template.
	DefaultTemplate = "modern"

	// slugProbeLimit bounds the sequential slug probe. The unique index on
	// portfolio.slug is the real guarantee; the probe is best effort.
	slugProbeLimit = 1000
)

type PortfolioService interface {
	Create(ctx context.Context, ownerID uuid.UUID, title, template string) (*types.Portfolio, error)
	GetOwned(ctx context.Context, portfolioID, ownerID uuid.UUID) (*types.Portfolio, error)
	GetPublic(ctx context.Context, slug string) (*types.Portfolio, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*types.Portfolio, error)
	Replace(ctx context.Context, portfolioID, ownerID uuid.UUID, payload *types.ReplacePayload) (*types.Portfolio, error)
	Delete(ctx context.Context, portfolioID, ownerID uuid.UUID) error
	Publish(ctx context.Context, portfolioID, ownerID uuid.UUID) (*types.Portfolio, error)
}

type portfolioService struct {
	db                *gorm.DB
	log               *logger.Logger
	portfolioRepo     portfolios.PortfolioRepo
	aboutRepo         portfolios.AboutRepo
	skillRepo         portfolios.SkillRepo
	projectRepo       portfolios.ProjectRepo
	experienceRepo    portfolios.ExperienceRepo
	educationRepo     portfolios.EducationRepo
	certificationRepo portfolios.CertificationRepo
}

func NewPortfolioService(
	db *gorm.DB,
	baseLog *logger.Logger,
	portfolioRepo portfolios.PortfolioRepo,
	aboutRepo portfolios.AboutRepo,
	skillRepo portfolios.SkillRepo,
	projectRepo portfolios.ProjectRepo,
	experienceRepo portfolios.ExperienceRepo,
	educationRepo portfolios.EducationRepo,
	certificationRepo portfolios.CertificationRepo,
) PortfolioService {
	return &portfolioService{
		db:                db,
		log:               baseLog.With("service", "PortfolioService"),
		portfolioRepo:     portfolioRepo,
		aboutRepo:         aboutRepo,
		skillRepo:         skillRepo,
		projectRepo:       projectRepo,
		experienceRepo:    experienceRepo,
		educationRepo:     educationRepo,
		certificationRepo: certificationRepo,
	}
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, collapses every run of characters outside
// [a-z0-9] into a single hyphen and trims leading/trailing hyphens. Titles
// with no usable characters fall back to "portfolio".
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "portfolio"
	}
	return s
}

func (s *portfolioService) Create(ctx context.Context, ownerID uuid.UUID, title, template string) (*types.Portfolio, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidArgument)
	}
	if template == "" {
		template = DefaultTemplate
	}

	dbc := dbctx.New(ctx)
	base := Slugify(title)
	counter := 0
	for attempt := 0; attempt < slugProbeLimit; attempt++ {
		slug := base
		if counter > 0 {
			slug = fmt.Sprintf("%s-%d", base, counter)
		}
		exists, err := s.portfolioRepo.SlugExists(dbc, slug)
		if err != nil {
			return nil, fmt.Errorf("probe slug: %w", err)
		}
		if exists {
			counter++
			continue
		}

		p := &types.Portfolio{
			ID:       uuid.New(),
			UserID:   ownerID,
			Title:    title,
			Slug:     slug,
			Template: template,
			IsPublic: false,
		}
		created, err := s.portfolioRepo.Create(dbc, p)
		if err != nil {
			if errs.IsDuplicateKey(err) {
				// Lost a race between probe and insert; keep probing.
				s.log.Warn("Slug taken between probe and insert, retrying", "slug", slug)
				counter++
				continue
			}
			return nil, fmt.Errorf("create portfolio: %w", err)
		}
		return created, nil
	}
	return nil, fmt.Errorf("no free slug after %d probes for %q", slugProbeLimit, base)
}

func (s *portfolioService) GetOwned(ctx context.Context, portfolioID, ownerID uuid.UUID) (*types.Portfolio, error) {
	p, err := s.portfolioRepo.GetOwnedAggregate(dbctx.New(ctx), portfolioID, ownerID)
	if err != nil {
		return nil, asNotFound(err, "load portfolio")
	}
	return p, nil
}

func (s *portfolioService) GetPublic(ctx context.Context, slug string) (*types.Portfolio, error) {
	p, err := s.portfolioRepo.GetPublicBySlug(dbctx.New(ctx), slug)
	if err != nil {
		return nil, asNotFound(err, "load public portfolio")
	}
	return p, nil
}

func (s *portfolioService) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*types.Portfolio, error) {
	list, err := s.portfolioRepo.ListByUser(dbctx.New(ctx), ownerID)
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	return list, nil
}

// Replace applies a full save in one transaction: a partial update of the
// root scalars, an About upsert, and a delete-all-then-recreate swap of every
// collection present in the payload. Collections absent from the payload are
// left untouched; recreated rows get fresh ids.
func (s *portfolioService) Replace(ctx context.Context, portfolioID, ownerID uuid.UUID, payload *types.ReplacePayload) (*types.Portfolio, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: empty payload", errs.ErrInvalidArgument)
	}

	var updated *types.Portfolio
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}

		if _, err := s.portfolioRepo.GetOwned(dbc, portfolioID, ownerID); err != nil {
			return asNotFound(err, "load portfolio")
		}

		if err := s.portfolioRepo.UpdateFields(dbc, portfolioID, rootFieldUpdates(payload)); err != nil {
			return fmt.Errorf("update portfolio fields: %w", err)
		}

		if payload.About != nil {
			if _, err := s.aboutRepo.Upsert(dbc, portfolioID, payload.About.Content); err != nil {
				return fmt.Errorf("upsert about: %w", err)
			}
		}

		if payload.Skills != nil {
			if err := s.replaceSkills(dbc, portfolioID, payload.Skills); err != nil {
				return err
			}
		}
		if payload.Projects != nil {
			if err := s.replaceProjects(dbc, portfolioID, payload.Projects); err != nil {
				return err
			}
		}
		if payload.Experience != nil {
			if err := s.replaceExperience(dbc, portfolioID, payload.Experience); err != nil {
				return err
			}
		}
		if payload.Education != nil {
			if err := s.replaceEducation(dbc, portfolioID, payload.Education); err != nil {
				return err
			}
		}
		if payload.Certifications != nil {
			if err := s.replaceCertifications(dbc, portfolioID, payload.Certifications); err != nil {
				return err
			}
		}

		// Collection-only saves must still move updated_at so the
		// recency ordering in ListOwned sees them.
		if err := s.portfolioRepo.TouchUpdatedAt(dbc, portfolioID); err != nil {
			return fmt.Errorf("touch portfolio: %w", err)
		}

		// Return the updated root only; dependents are not refetched here.
		p, err := s.portfolioRepo.GetOwned(dbc, portfolioID, ownerID)
		if err != nil {
			return fmt.Errorf("reload portfolio: %w", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *portfolioService) Delete(ctx context.Context, portfolioID, ownerID uuid.UUID) error {
	dbc := dbctx.New(ctx)
	if _, err := s.portfolioRepo.GetOwned(dbc, portfolioID, ownerID); err != nil {
		return asNotFound(err, "load portfolio")
	}
	// Dependents go with the root via the store-level cascades.
	if err := s.portfolioRepo.FullDeleteByID(dbc, portfolioID); err != nil {
		return fmt.Errorf("delete portfolio: %w", err)
	}
	return nil
}

func (s *portfolioService) Publish(ctx context.Context, portfolioID, ownerID uuid.UUID) (*types.Portfolio, error) {
	dbc := dbctx.New(ctx)
	if _, err := s.portfolioRepo.GetOwned(dbc, portfolioID, ownerID); err != nil {
		return nil, asNotFound(err, "load portfolio")
	}
	// Idempotent: republishing an already-public portfolio is a no-op.
	if err := s.portfolioRepo.SetPublic(dbc, portfolioID); err != nil {
		return nil, fmt.Errorf("publish portfolio: %w", err)
	}
	p, err := s.portfolioRepo.GetOwned(dbc, portfolioID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("reload portfolio: %w", err)
	}
	return p, nil
}

func (s *portfolioService) replaceSkills(dbc dbctx.Context, portfolioID uuid.UUID, inputs []types.SkillInput) error {
	if err := s.skillRepo.FullDeleteByPortfolioID(dbc, portfolioID); err != nil {
		return fmt.Errorf("delete skills: %w", err)
	}
	items := make([]types.Skill, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, in.Model(portfolioID))
	}
	if _, err := s.skillRepo.Create(dbc, items); err != nil {
		return fmt.Errorf("create skills: %w", err)
	}
	return nil
}

func (s *portfolioService) replaceProjects(dbc dbctx.Context, portfolioID uuid.UUID, inputs []types.ProjectInput) error {
	if err := s.projectRepo.FullDeleteByPortfolioID(dbc, portfolioID); err != nil {
		return fmt.Errorf("delete projects: %w", err)
	}
	items := make([]types.Project, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, in.Model(portfolioID))
	}
	if _, err := s.projectRepo.Create(dbc, items); err != nil {
		return fmt.Errorf("create projects: %w", err)
	}
	return nil
}

func (s *portfolioService) replaceExperience(dbc dbctx.Context, portfolioID uuid.UUID, inputs []types.ExperienceInput) error {
	if err := s.experienceRepo.FullDeleteByPortfolioID(dbc, portfolioID); err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	items := make([]types.Experience, 0, len(inputs))
	for _, in := range inputs {
		item, err := in.Model(portfolioID)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
		}
		items = append(items, item)
	}
	if _, err := s.experienceRepo.Create(dbc, items); err != nil {
		return fmt.Errorf("create experience: %w", err)
	}
	return nil
}

func (s *portfolioService) replaceEducation(dbc dbctx.Context, portfolioID uuid.UUID, inputs []types.EducationInput) error {
	if err := s.educationRepo.FullDeleteByPortfolioID(dbc, portfolioID); err != nil {
		return fmt.Errorf("delete education: %w", err)
	}
	items := make([]types.Education, 0, len(inputs))
	for _, in := range inputs {
		item, err := in.Model(portfolioID)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
		}
		items = append(items, item)
	}
	if _, err := s.educationRepo.Create(dbc, items); err != nil {
		return fmt.Errorf("create education: %w", err)
	}
	return nil
}

func (s *portfolioService) replaceCertifications(dbc dbctx.Context, portfolioID uuid.UUID, inputs []types.CertificationInput) error {
	if err := s.certificationRepo.FullDeleteByPortfolioID(dbc, portfolioID); err != nil {
		return fmt.Errorf("delete certifications: %w", err)
	}
	items := make([]types.Certification, 0, len(inputs))
	for _, in := range inputs {
		item, err := in.Model(portfolioID)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
		}
		items = append(items, item)
	}
	if _, err := s.certificationRepo.Create(dbc, items); err != nil {
		return fmt.Errorf("create certifications: %w", err)
	}
	return nil
}

// rootFieldUpdates maps the payload's set pointers to column updates. The
// slug is deliberately never part of this map: it is fixed at creation.
func rootFieldUpdates(payload *types.ReplacePayload) map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("title", payload.Title)
	set("template", payload.Template)
	set("name", payload.Name)
	set("professional_title", payload.ProfessionalTitle)
	set("email", payload.Email)
	set("phone", payload.Phone)
	set("location", payload.Location)
	set("avatar", payload.Avatar)
	set("bio", payload.Bio)
	set("github", payload.Github)
	set("linkedin", payload.Linkedin)
	set("twitter", payload.Twitter)
	set("website", payload.Website)
	if payload.IsPublic != nil {
		fields["is_public"] = *payload.IsPublic
	}
	return fields
}

// asNotFound merges "does not exist" and "not owned by the caller" into the
// same error kind so callers cannot probe for existence.
func asNotFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
