package portfolio

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ReplacePayload is the full-save body for a portfolio aggregate.
//
// Root scalars are pointers: nil means "leave unchanged". Collections are
// slices: a nil slice means "leave this collection untouched", an empty
// slice means "delete everything", and a non-empty slice means "delete
// everything, then recreate from these items".
type ReplacePayload struct {
	Title             *string `json:"title"`
	Template          *string `json:"template"`
	IsPublic          *bool   `json:"isPublic"`
	Name              *string `json:"name"`
	ProfessionalTitle *string `json:"professionalTitle"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Location          *string `json:"location"`
	Avatar            *string `json:"avatar"`
	Bio               *string `json:"bio"`
	Github            *string `json:"github"`
	Linkedin          *string `json:"linkedin"`
	Twitter           *string `json:"twitter"`
	Website           *string `json:"website"`

	About          *AboutInput          `json:"about"`
	Skills         []SkillInput         `json:"skills"`
	Projects       []ProjectInput       `json:"projects"`
	Experience     []ExperienceInput    `json:"experience"`
	Education      []EducationInput     `json:"education"`
	Certifications []CertificationInput `json:"certifications"`
}

type AboutInput struct {
	Content string `json:"content"`
}

type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
}

type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	URL          string   `json:"url"`
	Github       string   `json:"github"`
	Technologies []string `json:"technologies"`
	Featured     *bool    `json:"featured"`
}

type ExperienceInput struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	IsCurrent    bool     `json:"isCurrent"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type EducationInput struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	IsCurrent   bool     `json:"isCurrent"`
	GPA         *float64 `json:"gpa"`
	Description string   `json:"description"`
}

type CertificationInput struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
	URL        string `json:"url"`
}

const (
	DefaultSkillCategory = "technical"
	DefaultSkillLevel    = 3
)

func (in SkillInput) Model(portfolioID uuid.UUID) Skill {
	category := in.Category
	if category == "" {
		category = DefaultSkillCategory
	}
	level := in.Level
	if level == 0 {
		level = DefaultSkillLevel
	}
	return Skill{
		ID:          uuid.New(),
		PortfolioID: portfolioID,
		Name:        in.Name,
		Category:    category,
		Level:       level,
	}
}

func (in ProjectInput) Model(portfolioID uuid.UUID) Project {
	featured := false
	if in.Featured != nil {
		featured = *in.Featured
	}
	return Project{
		ID:           uuid.New(),
		PortfolioID:  portfolioID,
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		URL:          in.URL,
		Github:       in.Github,
		Technologies: marshalStrings(in.Technologies),
		Featured:     featured,
	}
}

func (in ExperienceInput) Model(portfolioID uuid.UUID) (Experience, error) {
	start, err := ParseDate(in.StartDate)
	if err != nil {
		return Experience{}, fmt.Errorf("experience start date: %w", err)
	}
	end, err := ParseOptionalDate(in.EndDate)
	if err != nil {
		return Experience{}, fmt.Errorf("experience end date: %w", err)
	}
	return Experience{
		ID:           uuid.New(),
		PortfolioID:  portfolioID,
		Company:      in.Company,
		Position:     in.Position,
		Location:     in.Location,
		StartDate:    start,
		EndDate:      end,
		IsCurrent:    in.IsCurrent,
		Description:  in.Description,
		Technologies: marshalStrings(in.Technologies),
	}, nil
}

func (in EducationInput) Model(portfolioID uuid.UUID) (Education, error) {
	start, err := ParseDate(in.StartDate)
	if err != nil {
		return Education{}, fmt.Errorf("education start date: %w", err)
	}
	end, err := ParseOptionalDate(in.EndDate)
	if err != nil {
		return Education{}, fmt.Errorf("education end date: %w", err)
	}
	return Education{
		ID:          uuid.New(),
		PortfolioID: portfolioID,
		Institution: in.Institution,
		Degree:      in.Degree,
		Field:       in.Field,
		StartDate:   start,
		EndDate:     end,
		IsCurrent:   in.IsCurrent,
		GPA:         in.GPA,
		Description: in.Description,
	}, nil
}

func (in CertificationInput) Model(portfolioID uuid.UUID) (Certification, error) {
	issued, err := ParseDate(in.IssueDate)
	if err != nil {
		return Certification{}, fmt.Errorf("certification issue date: %w", err)
	}
	expiry, err := ParseOptionalDate(in.ExpiryDate)
	if err != nil {
		return Certification{}, fmt.Errorf("certification expiry date: %w", err)
	}
	return Certification{
		ID:          uuid.New(),
		PortfolioID: portfolioID,
		Name:        in.Name,
		Issuer:      in.Issuer,
		IssueDate:   issued,
		ExpiryDate:  expiry,
		URL:         in.URL,
	}, nil
}

// ParseDate accepts a plain date or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable date %q", s)
	}
	return t, nil
}

func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func marshalStrings(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}
