package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"

	types "github.com/devlink-app/devlink-backend/internal/domain"
)

func exportFixture() *types.Portfolio {
	return &types.Portfolio{
		ID:       uuid.New(),
		Title:    "Jane Doe",
		Name:     "Jane Doe",
		Bio:      "Backend engineer",
		Email:    "jane@example.com",
		Location: "Berlin",
		About:    &types.About{Content: "I build backends."},
		Skills: []types.Skill{
			{Name: "Go"},
			{Name: "Postgres"},
		},
		Projects: []types.Project{
			{Title: "DevLink", Description: "Portfolio builder"},
		},
	}
}

func TestRenderHTML(t *testing.T) {
	p := exportFixture()
	data, err := renderHTML(p)
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}
	html := string(data)

	for _, want := range []string{
		"<h1>Jane Doe</h1>",
		"Backend engineer",
		"jane@example.com",
		"I build backends.",
		`<span class="skill">Go</span>`,
		`<span class="skill">Postgres</span>`,
		"1. DevLink",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
	// Phone is unset and should fall back.
	if !strings.Contains(html, "N/A") {
		t.Errorf("expected N/A fallback for empty contact fields")
	}
}

func TestRenderHTMLEscapesContent(t *testing.T) {
	p := exportFixture()
	p.About.Content = `<script>alert("x")</script>`
	data, err := renderHTML(p)
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}
	if strings.Contains(string(data), "<script>alert") {
		t.Fatalf("about content was not escaped")
	}
}

func TestRenderPDF(t *testing.T) {
	data, err := renderPDF(exportFixture())
	if err != nil {
		t.Fatalf("renderPDF: %v", err)
	}
	if len(data) < 4 || !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF document")
	}
}

func TestDisplayName(t *testing.T) {
	if got := displayName(&types.Portfolio{Name: "Jane", Title: "Site"}); got != "Jane" {
		t.Errorf("displayName prefers name, got %q", got)
	}
	if got := displayName(&types.Portfolio{Title: "Site"}); got != "Site" {
		t.Errorf("displayName falls back to title, got %q", got)
	}
	if got := displayName(&types.Portfolio{}); got != "Portfolio" {
		t.Errorf("displayName default, got %q", got)
	}
}
