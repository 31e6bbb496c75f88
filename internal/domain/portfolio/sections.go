package portfolio

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// The five dependent collections. Rows are never updated in place: a replace
// deletes every row for the portfolio and recreates from the payload, so ids
// are not stable across saves.

type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;index;column:portfolio_id" json:"portfolio_id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Category    string    `gorm:"not null;default:'technical';column:category" json:"category"`
	Level       int       `gorm:"not null;default:3;column:level" json:"level"`
}

func (Skill) TableName() string { return "skill" }

type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortfolioID  uuid.UUID      `gorm:"type:uuid;not null;index;column:portfolio_id" json:"portfolio_id"`
	Title        string         `gorm:"not null;column:title" json:"title"`
	Description  string         `gorm:"type:text;column:description" json:"description"`
	Image        string         `gorm:"column:image" json:"image,omitempty"`
	URL          string         `gorm:"column:url" json:"url,omitempty"`
	Github       string         `gorm:"column:github" json:"github,omitempty"`
	Technologies datatypes.JSON `gorm:"column:technologies" json:"technologies,omitempty"`
	Featured     bool           `gorm:"not null;default:false;column:featured" json:"featured"`
}

func (Project) TableName() string { return "project" }

type Experience struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortfolioID  uuid.UUID      `gorm:"type:uuid;not null;index;column:portfolio_id" json:"portfolio_id"`
	Company      string         `gorm:"not null;column:company" json:"company"`
	Position     string         `gorm:"not null;column:position" json:"position"`
	Location     string         `gorm:"column:location" json:"location,omitempty"`
	StartDate    time.Time      `gorm:"not null;column:start_date" json:"startDate"`
	EndDate      *time.Time     `gorm:"column:end_date" json:"endDate,omitempty"`
	IsCurrent    bool           `gorm:"not null;default:false;column:is_current" json:"isCurrent"`
	Description  string         `gorm:"type:text;column:description" json:"description"`
	Technologies datatypes.JSON `gorm:"column:technologies" json:"technologies,omitempty"`
}

func (Experience) TableName() string { return "experience" }

type Education struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortfolioID uuid.UUID  `gorm:"type:uuid;not null;index;column:portfolio_id" json:"portfolio_id"`
	Institution string     `gorm:"not null;column:institution" json:"institution"`
	Degree      string     `gorm:"not null;column:degree" json:"degree"`
	Field       string     `gorm:"column:field" json:"field,omitempty"`
	StartDate   time.Time  `gorm:"not null;column:start_date" json:"startDate"`
	EndDate     *time.Time `gorm:"column:end_date" json:"endDate,omitempty"`
	IsCurrent   bool       `gorm:"not null;default:false;column:is_current" json:"isCurrent"`
	GPA         *float64   `gorm:"column:gpa" json:"gpa,omitempty"`
	Description string     `gorm:"type:text;column:description" json:"description,omitempty"`
}

func (Education) TableName() string { return "education" }

type Certification struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortfolioID uuid.UUID  `gorm:"type:uuid;not null;index;column:portfolio_id" json:"portfolio_id"`
	Name        string     `gorm:"not null;column:name" json:"name"`
	Issuer      string     `gorm:"not null;column:issuer" json:"issuer"`
	IssueDate   time.Time  `gorm:"not null;column:issue_date" json:"issueDate"`
	ExpiryDate  *time.Time `gorm:"column:expiry_date" json:"expiryDate,omitempty"`
	URL         string     `gorm:"column:url" json:"url,omitempty"`
}

func (Certification) TableName() string { return "certification" }
