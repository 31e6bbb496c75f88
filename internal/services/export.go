package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devlink-app/devlink-backend/internal/data/repos/portfolios"
	types "github.com/devlink-app/devlink-backend/internal/domain"
	"github.com/devlink-app/devlink-backend/internal/platform/dbctx"
	"github.com/devlink-app/devlink-backend/internal/platform/errs"
	"github.com/devlink-app/devlink-backend/internal/platform/logger"
)

const (
	ExportFormatPDF  = "pdf"
	ExportFormatHTML = "html"
)

type ExportResult struct {
	ContentType string
	Filename    string
	Data        []byte
}

type ExportService interface {
	Export(ctx context.Context, portfolioID uuid.UUID, format string) (*ExportResult, error)
}

type exportService struct {
	db            *gorm.DB
	log           *logger.Logger
	portfolioRepo portfolios.PortfolioRepo
}

func NewExportService(db *gorm.DB, baseLog *logger.Logger, portfolioRepo portfolios.PortfolioRepo) ExportService {
	return &exportService{
		db:            db,
		log:           baseLog.With("service", "ExportService"),
		portfolioRepo: portfolioRepo,
	}
}

func (es *exportService) Export(ctx context.Context, portfolioID uuid.UUID, format string) (*ExportResult, error) {
	p, err := es.portfolioRepo.GetAggregate(dbctx.New(ctx), portfolioID)
	if err != nil {
		return nil, asNotFound(err, "load portfolio for export")
	}

	base := displayName(p)
	switch format {
	case ExportFormatPDF:
		data, err := renderPDF(p)
		if err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		return &ExportResult{
			ContentType: "application/pdf",
			Filename:    base + ".pdf",
			Data:        data,
		}, nil
	case ExportFormatHTML:
		data, err := renderHTML(p)
		if err != nil {
			return nil, fmt.Errorf("render html: %w", err)
		}
		return &ExportResult{
			ContentType: "text/html",
			Filename:    base + ".html",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: invalid format %q", errs.ErrInvalidArgument, format)
	}
}

func displayName(p *types.Portfolio) string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	if strings.TrimSpace(p.Title) != "" {
		return p.Title
	}
	return "Portfolio"
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func renderPDF(p *types.Portfolio) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 24)
	pdf.Text(20, 30, displayName(p))

	if p.Bio != "" {
		pdf.SetFont("Helvetica", "", 14)
		pdf.Text(20, 45, p.Bio)
	}

	pdf.SetFont("Helvetica", "", 12)
	y := 65.0
	pdf.Text(20, y, "Email: "+orNA(p.Email))
	y += 10
	pdf.Text(20, y, "Phone: "+orNA(p.Phone))
	y += 10
	pdf.Text(20, y, "Location: "+orNA(p.Location))
	y += 15

	if p.About != nil && p.About.Content != "" {
		pdf.SetFont("Helvetica", "", 16)
		pdf.Text(20, y, "About Me")
		y += 10
		pdf.SetFont("Helvetica", "", 10)
		y = writeWrapped(pdf, p.About.Content, 20, y)
		y += 10
	}

	if len(p.Skills) > 0 {
		pdf.SetFont("Helvetica", "", 16)
		pdf.Text(20, y, "Skills")
		y += 10
		pdf.SetFont("Helvetica", "", 10)
		names := make([]string, 0, len(p.Skills))
		for _, s := range p.Skills {
			names = append(names, s.Name)
		}
		y = writeWrapped(pdf, strings.Join(names, ", "), 20, y)
		y += 10
	}

	if len(p.Projects) > 0 {
		pdf.SetFont("Helvetica", "", 16)
		pdf.Text(20, y, "Projects")
		y += 10
		for i, project := range p.Projects {
			pdf.SetFont("Helvetica", "", 12)
			pdf.Text(20, y, fmt.Sprintf("%d. %s", i+1, project.Title))
			y += 8
			pdf.SetFont("Helvetica", "", 10)
			y = writeWrapped(pdf, project.Description, 25, y)
			y += 5
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeWrapped emits text split to the content width, line by line, and
// returns the next free y position.
func writeWrapped(pdf *fpdf.Fpdf, text string, x, y float64) float64 {
	if text == "" {
		return y
	}
	for _, line := range pdf.SplitText(text, 170) {
		pdf.Text(x, y, line)
		y += 5
	}
	return y
}

var exportHTMLTemplate = template.Must(template.New("export").Funcs(template.FuncMap{
	"add1": func(i int) int { return i + 1 },
	"orNA": orNA,
}).Parse(`<!DOCTYPE html>
<html>
<head>
  <title>{{.DisplayName}}</title>
  <style>
    body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
    h1 { color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px; }
    h2 { color: #555; margin-top: 30px; }
    .section { margin: 20px 0; }
    .contact-info { background: #f8f9fa; padding: 15px; border-radius: 5px; }
    .skills { display: flex; flex-wrap: wrap; gap: 10px; }
    .skill { background: #007bff; color: white; padding: 5px 10px; border-radius: 15px; font-size: 14px; }
    .project { border-left: 3px solid #007bff; padding-left: 15px; margin: 15px 0; }
  </style>
</head>
<body>
  <h1>{{.DisplayName}}</h1>
  {{if .Portfolio.Bio}}<p style="font-size: 18px; color: #666; margin-bottom: 20px;">{{.Portfolio.Bio}}</p>{{end}}

  <div class="section contact-info">
    <h2>Contact Information</h2>
    <p><strong>Email:</strong> {{orNA .Portfolio.Email}}</p>
    <p><strong>Phone:</strong> {{orNA .Portfolio.Phone}}</p>
    <p><strong>Location:</strong> {{orNA .Portfolio.Location}}</p>
  </div>

  {{if and .Portfolio.About .Portfolio.About.Content}}
  <div class="section">
    <h2>About Me</h2>
    <p>{{.Portfolio.About.Content}}</p>
  </div>
  {{end}}

  {{if .Portfolio.Skills}}
  <div class="section">
    <h2>Skills</h2>
    <div class="skills">
      {{range .Portfolio.Skills}}<span class="skill">{{.Name}}</span>{{end}}
    </div>
  </div>
  {{end}}

  {{if .Portfolio.Projects}}
  <div class="section">
    <h2>Projects</h2>
    {{range $i, $p := .Portfolio.Projects}}
    <div class="project">
      <h3>{{add1 $i}}. {{$p.Title}}</h3>
      <p>{{$p.Description}}</p>
    </div>
    {{end}}
  </div>
  {{end}}
</body>
</html>
`))

func renderHTML(p *types.Portfolio) ([]byte, error) {
	var buf bytes.Buffer
	err := exportHTMLTemplate.Execute(&buf, struct {
		DisplayName string
		Portfolio   *types.Portfolio
	}{
		DisplayName: displayName(p),
		Portfolio:   p,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
