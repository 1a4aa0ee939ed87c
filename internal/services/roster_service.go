package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"orgchart/internal/contract"
	"orgchart/internal/domain/models"
	"orgchart/internal/repositories"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

const rosterModule = "roster"

// Document is a rendered file ready to be streamed to the client.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// RosterData is what a roster is rendered from.
type RosterData struct {
	Department models.Department
	Persons    []models.PersonInfo
}

// RosterService renders a printable listing of everyone in a department.
type RosterService struct {
	Departments repositories.DepartmentRepository
	Persons     repositories.PersonRepository
	Logger      *zap.Logger
	Now         func() time.Time

	// Loader overrides the repository reads, mainly for tests.
	Loader func(ctx context.Context, departmentID int64) (RosterData, error)
}

func (s RosterService) DepartmentRoster(ctx context.Context, departmentID int64) contract.Result[Document] {
	load := s.Loader
	if load == nil {
		load = s.loadRoster
	}
	data, err := load(ctx, departmentID)
	if err != nil {
		return fail[Document](ctx, s.Logger, rosterModule, "render", err)
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	doc, err := buildRosterPDF(data, now)
	if err != nil {
		return fail[Document](ctx, s.Logger, rosterModule, "render", err)
	}
	return contract.OK(doc)
}

func (s RosterService) loadRoster(ctx context.Context, departmentID int64) (RosterData, error) {
	d, found, err := s.Departments.GetByID(ctx, departmentID)
	if d, err = lookup(d, found, err, "department"); err != nil {
		return RosterData{}, err
	}
	persons, err := s.Persons.ListInfoByDepartment(ctx, departmentID)
	if err != nil {
		return RosterData{}, err
	}
	return RosterData{Department: d, Persons: persons}, nil
}

func buildRosterPDF(d RosterData, now time.Time) (Document, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Department roster", false)
	pdf.AddPage()
	// core fonts are cp1252; names arrive as UTF-8
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DEPARTMENT ROSTER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, tr("Department : "+safe(d.Department.Name, "-")))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated  : "+now.Format("2006-01-02 15:04"))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Headcount  : %d", len(d.Persons)))
	pdf.Ln(10)

	widths := []float64{12, 50, 45, 45, 28}
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range []string{"ID", "Name", "Job", "Manager", "Hired"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, p := range d.Persons {
		manager := "-"
		if p.Manager != nil {
			manager = p.Manager.FullName
		}
		row := []string{
			fmt.Sprintf("%d", p.ID),
			p.LastName + ", " + p.FirstName,
			safe(p.Job.Title, "-"),
			manager,
			p.HireDate,
		}
		for i, v := range row {
			pdf.CellFormat(widths[i], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(d.Persons) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 7, "No one is assigned to this department.")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Document{}, err
	}
	return Document{
		Filename:    fmt.Sprintf("ROSTER_%d_%s.pdf", d.Department.ID, safeFilenamePart(d.Department.Name)),
		ContentType: "application/pdf",
		Body:        buf.Bytes(),
	}, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if r := []rune(s); len(r) > 40 {
		s = string(r[:40])
	}
	return s
}

// ContentDisposition renders the inline header value with an ASCII
// filename and the exact UTF-8 name in filename*.
func (d Document) ContentDisposition() string {
	return `inline; filename="` + asciiFilename(d.Filename) + `"; filename*=UTF-8''` + url.PathEscape(d.Filename)
}

func asciiFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			b.WriteByte('_')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
