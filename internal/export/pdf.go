package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
)

// Package export renders stored documents into downloadable formats.
// Only the PDF path needs real rendering machinery; txt and csv are assembled
// by the export service directly.

// Meta is the metadata block printed under the PDF title.
type Meta struct {
	DocumentID  int64
	Filename    string
	GeneratedAt time.Time
}

// Renderer produces a PDF document from extracted text.
type Renderer interface {
	Render(title string, meta Meta, text string) ([]byte, error)
}

// fontCandidate is one entry of the font fallback list. Extracted Vietnamese
// text needs a Unicode font; the core PDF fonts only cover cp1252.
type fontCandidate struct {
	family  string
	regular string
	bold    string
}

var fontCandidates = []fontCandidate{
	{
		family:  "DejaVuSans",
		regular: "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		bold:    "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
	},
	{
		family:  "LiberationSans",
		regular: "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
		bold:    "/usr/share/fonts/truetype/liberation/LiberationSans-Bold.ttf",
	},
}

// PDFRenderer implements Renderer with gofpdf. It walks the font fallback
// list at render time and degrades to the built-in Helvetica (with a cp1252
// translator) when no TrueType font is installed.
type PDFRenderer struct {
	// statFile is swapped in tests to control font discovery.
	statFile func(string) error
}

// NewPDFRenderer constructs a PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{statFile: func(path string) error {
		_, err := os.Stat(path)
		return err
	}}
}

var _ Renderer = (*PDFRenderer)(nil)

// Render builds an A4 portrait PDF: centered title, metadata block, then the
// text split into blank-line-delimited paragraphs and lines. The characters
// & < > are HTML-escaped before rendering, matching the historical output.
func (r *PDFRenderer) Render(title string, meta Meta, text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)

	family, unicode := r.selectFont(pdf)
	write := func(s string) string { return s }
	if !unicode {
		write = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.MultiCell(0, 10, write(title), "", "C", false)
	pdf.Ln(4)

	pdf.SetFont(family, "", 10)
	info := fmt.Sprintf("Document ID: %d\nFilename: %s\nGenerated: %s",
		meta.DocumentID, meta.Filename, meta.GeneratedAt.Format("2006-01-02 15:04:05"))
	pdf.MultiCell(0, 6, write(info), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont(family, "B", 12)
	pdf.MultiCell(0, 6, write("Extracted Text:"), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont(family, "", 10)
	for _, para := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(para) == "" {
			continue
		}
		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			pdf.MultiCell(0, 5, write(escapeMarkup(line)), "", "L", false)
			pdf.Ln(1)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// selectFont registers the first installed font pair from the fallback list
// and reports whether it covers Unicode. The built-in Helvetica is the final
// fallback and requires translation.
func (r *PDFRenderer) selectFont(pdf *gofpdf.Fpdf) (family string, unicode bool) {
	for _, c := range fontCandidates {
		if r.statFile(c.regular) != nil || r.statFile(c.bold) != nil {
			continue
		}
		pdf.AddUTF8Font(c.family, "", c.regular)
		pdf.AddUTF8Font(c.family, "B", c.bold)
		if pdf.Err() {
			// Registration failed; reset and try the next candidate.
			pdf.ClearError()
			continue
		}
		return c.family, true
	}
	return "Helvetica", false
}

func escapeMarkup(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
