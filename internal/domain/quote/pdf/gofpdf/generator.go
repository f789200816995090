package gofpdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"buildquote/backend/internal/domain/quote"
)

const company = "Building Quote • Exterior services"

type Generator struct {
	now func() time.Time
}

func New() *Generator { return &Generator{now: time.Now} }

type row struct {
	label string
	value string
}

func (g *Generator) Building(q quote.BuildingQuote) ([]byte, error) {
	return g.render("Building quote", q.ID, q.CreatedAt, q.Address, []row{
		{"Estimated windows", fmt.Sprintf("%d", q.WindowCount)},
		{"Estimated height", fmt.Sprintf("%.1f", q.Height)},
	}, q.Price)
}

func (g *Generator) Gutter(q quote.GutterQuote) ([]byte, error) {
	return g.render("Gutter quote", q.ID, q.CreatedAt, q.Address, []row{
		{"Linear feet", fmt.Sprintf("%.2f", q.LinearFeet)},
		{"Stories", fmt.Sprintf("%d", q.Stories)},
		{"Rate per foot", fmt.Sprintf("%.2f", quote.GutterBaseRate)},
		{"Stories multiplier", fmt.Sprintf("%.2f", quote.StoriesMultiplier(q.Stories))},
	}, q.Price)
}

func (g *Generator) render(title, id, createdAt, address string, rows []row, price float64) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("No. %s of %s", id, createdAt))
	pdf.Ln(6)

	if address != "" {
		pdf.Cell(0, 6, tr("Address: "+trim(address, 80)))
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(100, 7, "Item")
	pdf.Cell(60, 7, "Value")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.Cell(100, 6, r.label)
		pdf.Cell(60, 6, r.value)
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Total: %.2f", price))
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, tr(company))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", g.now().Format(time.RFC3339)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
