package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// Document is the structured text rendered into a resume PDF.
type Document struct {
	FullName   string
	Email      string
	Phone      string
	Summary    string
	Skills     string
	Experience string
	Education  string
}

// Section is a titled block of flowing text.
type Section struct {
	Title string
	Body  string
}

// Sections returns the body sections in layout order.
func (d Document) Sections() []Section {
	return []Section{
		{Title: "Professional Summary", Body: d.Summary},
		{Title: "Skills", Body: d.Skills},
		{Title: "Experience", Body: d.Experience},
		{Title: "Education", Body: d.Education},
	}
}

// RenderPDF lays the document out on A4 pages and returns the encoded PDF.
// Section bodies are flowing multi-line cells, so long text continues onto new pages.
func RenderPDF(doc Document) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(doc.FullName, true)
	pdf.SetCreator("resume-builder", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	line(pdf, StyleMap["name"], tr(doc.FullName))
	contact := StyleMap["contact"]
	line(pdf, contact, tr(doc.Email))
	line(pdf, contact, tr(doc.Phone))
	pdf.Ln(HeaderGap)

	sections := doc.Sections()
	for i, section := range sections {
		line(pdf, StyleMap["sectionHeading"], tr(section.Title))
		block(pdf, StyleMap["body"], tr(section.Body))
		if i < len(sections)-1 {
			pdf.Ln(SectionGap)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encode pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func line(pdf *fpdf.Fpdf, style TextStyle, text string) {
	pdf.SetFont(FontFamily, style.fontStyle(), style.Size)
	pdf.CellFormat(0, style.LineHeight, text, "", 1, "L", false, 0, "")
}

func block(pdf *fpdf.Fpdf, style TextStyle, text string) {
	pdf.SetFont(FontFamily, style.fontStyle(), style.Size)
	pdf.MultiCell(0, style.LineHeight, text, "", "L", false)
}
