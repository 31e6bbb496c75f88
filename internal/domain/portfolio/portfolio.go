package portfolio

import (
	"time"

	"github.com/google/uuid"
)

// Portfolio is the aggregate root. It exclusively owns the About record and
// the five dependent collections; deleting it cascades to all of them.
//
// Slug is derived from Title once at creation and never regenerated, even
// when the title changes later.
type Portfolio struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index;column:user_id" json:"user_id"`
	Title    string    `gorm:"not null;column:title" json:"title"`
	Slug     string    `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	Template string    `gorm:"not null;default:'modern';column:template" json:"template"`
	IsPublic bool      `gorm:"not null;default:false;column:is_public" json:"isPublic"`

	// Personal information
	Name              string `gorm:"column:name" json:"name,omitempty"`
	ProfessionalTitle string `gorm:"column:professional_title" json:"professionalTitle,omitempty"`
	Email             string `gorm:"column:email" json:"email,omitempty"`
	Phone             string `gorm:"column:phone" json:"phone,omitempty"`
	Location          string `gorm:"column:location" json:"location,omitempty"`
	Avatar            string `gorm:"column:avatar" json:"avatar,omitempty"`
	Bio               string `gorm:"column:bio" json:"bio,omitempty"`

	// Social links
	Github   string `gorm:"column:github" json:"github,omitempty"`
	Linkedin string `gorm:"column:linkedin" json:"linkedin,omitempty"`
	Twitter  string `gorm:"column:twitter" json:"twitter,omitempty"`
	Website  string `gorm:"column:website" json:"website,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now();index" json:"updated_at"`

	// Dependents, loaded on aggregate fetches only.
	About          *About          `gorm:"foreignKey:PortfolioID" json:"about,omitempty"`
	Experience     []Experience    `gorm:"foreignKey:PortfolioID" json:"experience,omitempty"`
	Education      []Education     `gorm:"foreignKey:PortfolioID" json:"education,omitempty"`
	Skills         []Skill         `gorm:"foreignKey:PortfolioID" json:"skills,omitempty"`
	Projects       []Project       `gorm:"foreignKey:PortfolioID" json:"projects,omitempty"`
	Certifications []Certification `gorm:"foreignKey:PortfolioID" json:"certifications,omitempty"`
}

func (Portfolio) TableName() string { return "portfolio" }

// About is the single free-text section; at most one row per portfolio,
// enforced by the unique index and written via upsert.
type About struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PortfolioID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:portfolio_id" json:"portfolio_id"`
	Content     string    `gorm:"type:text;column:content" json:"content"`
}

func (About) TableName() string { return "about" }
