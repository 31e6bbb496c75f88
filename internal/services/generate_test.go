package services

import (
	"strings"
	"testing"

	"github.com/devlink-app/devlink-backend/internal/data/repos/testutil"
)

func TestGenerateAboutFull(t *testing.T) {
	gs := NewGeneratorService(testutil.Logger(t))

	content := gs.Generate(GenerateRequest{
		Type: "about",
		UserDetails: &GeneratorDetails{
			Name:              "Jane Doe",
			ProfessionalTitle: "Backend Engineer",
			Location:          "Berlin",
			Education: []GeneratorEducation{
				{Degree: "B.Sc.", Field: "Informatics", Institution: "TU Berlin"},
			},
			Experience: []GeneratorExperience{
				{Position: "Engineer", Company: "Acme", Technologies: "Go and Postgres"},
			},
			Skills:  []GeneratorSkill{{Name: "Go"}, {Name: "SQL"}},
			Hobbies: "climbing, chess",
			Goals:   "build useful tools, mentor others",
		},
	})

	for _, want := range []string{
		"I'm Jane Doe, a passionate Backend Engineer based in Berlin.",
		"I'm currently pursuing B.Sc. in Informatics at TU Berlin.",
		"I work as a Engineer at Acme, where I focus on Go and Postgres.",
		"My technical expertise includes Go, SQL.",
		"When I'm not coding, I enjoy climbing, chess.",
		"My goal is to build useful tools and mentor others.",
		"I'm always eager to learn new technologies",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("about content missing %q\ngot: %s", want, content)
		}
	}
}

func TestGenerateAboutFallbacks(t *testing.T) {
	gs := NewGeneratorService(testutil.Logger(t))

	content := gs.Generate(GenerateRequest{Type: "about"})
	if !strings.HasPrefix(content, "I'm the developer, a passionate developer based in their location.") {
		t.Fatalf("unexpected fallback content: %s", content)
	}
	if strings.Contains(content, "pursuing") || strings.Contains(content, "I work as") {
		t.Fatalf("empty details should not add education or experience: %s", content)
	}
}

func TestGenerateProjectAndUnknownType(t *testing.T) {
	gs := NewGeneratorService(testutil.Logger(t))

	project := gs.Generate(GenerateRequest{Type: "project", Context: "anything"})
	if !strings.Contains(project, "A comprehensive project") {
		t.Fatalf("unexpected project content: %s", project)
	}

	other := gs.Generate(GenerateRequest{Type: "interview"})
	if other != "Generated content based on your input." {
		t.Fatalf("unexpected fallback: %s", other)
	}
}
