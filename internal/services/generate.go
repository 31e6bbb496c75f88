package services

import (
	"fmt"
	"strings"

	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

type GeneratorEducation struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
}

type GeneratorExperience struct {
	Position     string `json:"position"`
	Company      string `json:"company"`
	Technologies string `json:"technologies"`
}

type GeneratorSkill struct {
	Name string `json:"name"`
}

type GeneratorDetails struct {
	Name              string                `json:"name"`
	ProfessionalTitle string                `json:"professionalTitle"`
	Location          string                `json:"location"`
	Education         []GeneratorEducation  `json:"education"`
	Experience        []GeneratorExperience `json:"experience"`
	Skills            []GeneratorSkill      `json:"skills"`
	Hobbies           string                `json:"hobbies"`
	Goals             string                `json:"goals"`
}

type GenerateRequest struct {
	Type        string            `json:"type"`
	Context     string            `json:"context"`
	UserDetails *GeneratorDetails `json:"userDetails"`
}

// GeneratorService assembles draft copy for the editor from the details the
// user has already entered. Purely deterministic, no model calls.
type GeneratorService interface {
	Generate(req GenerateRequest) string
}

type generatorService struct {
	log *logger.Logger
}

func NewGeneratorService(baseLog *logger.Logger) GeneratorService {
	return &generatorService{log: baseLog.With("service", "GeneratorService")}
}

func (gs *generatorService) Generate(req GenerateRequest) string {
	switch req.Type {
	case "about":
		details := req.UserDetails
		if details == nil {
			details = &GeneratorDetails{}
		}
		return generateAbout(details)
	case "project":
		return generateProjectDescription(req.Context)
	default:
		return "Generated content based on your input."
	}
}

func generateAbout(d *GeneratorDetails) string {
	name := d.Name
	if name == "" {
		name = "the developer"
	}
	title := d.ProfessionalTitle
	if title == "" {
		title = "developer"
	}
	location := d.Location
	if location == "" {
		location = "their location"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I'm %s, a passionate %s based in %s. ", name, title, location)

	if len(d.Education) > 0 {
		latest := d.Education[0]
		field := latest.Field
		if field == "" {
			field = "Computer Science"
		}
		fmt.Fprintf(&b, "I'm currently pursuing %s in %s at %s. ", latest.Degree, field, latest.Institution)
	}

	if len(d.Experience) > 0 {
		latest := d.Experience[0]
		tech := latest.Technologies
		if tech == "" {
			tech = "various technologies"
		}
		fmt.Fprintf(&b, "I work as a %s at %s, where I focus on %s. ", latest.Position, latest.Company, tech)
	}

	if len(d.Skills) > 0 {
		names := make([]string, 0, len(d.Skills))
		for _, s := range d.Skills {
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "My technical expertise includes %s. ", strings.Join(names, ", "))
	}

	if hobbies := splitAndTrim(d.Hobbies); len(hobbies) > 0 {
		fmt.Fprintf(&b, "When I'm not coding, I enjoy %s. ", strings.Join(hobbies, ", "))
	}

	if goals := splitAndTrim(d.Goals); len(goals) > 0 {
		fmt.Fprintf(&b, "My goal is to %s. ", strings.Join(goals, " and "))
	}

	b.WriteString("I'm always eager to learn new technologies and take on challenging projects that push the boundaries of what I can create.")
	return b.String()
}

func generateProjectDescription(context string) string {
	return "A comprehensive project that demonstrates modern development practices and innovative solutions. " +
		"Built with cutting-edge technologies and designed for scalability and performance."
}

func splitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
