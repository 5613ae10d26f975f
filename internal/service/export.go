package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chou-ng-coder/ocr-website/internal/export"
)

// utf8BOM prefixes CSV exports so spreadsheet applications pick up the
// encoding of Vietnamese text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// unsafeFilenameChars are stripped from download filenames.
var unsafeFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)

// ExportResult is a rendered download.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportService renders an owned document into a downloadable file.
type ExportService interface {
	// Export renders the document in the requested format: "txt", "csv" or
	// "pdf" (case-insensitive).
	Export(ctx context.Context, ownerID, id int64, format string) (*ExportResult, error)
}

type exportService struct {
	documents DocumentService
	renderer  export.Renderer
	now       func() time.Time
}

// NewExportService constructs an ExportService.
func NewExportService(documents DocumentService, renderer export.Renderer) ExportService {
	return &exportService{documents: documents, renderer: renderer, now: time.Now}
}

func (s *exportService) Export(ctx context.Context, ownerID, id int64, format string) (*ExportResult, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "txt", "csv", "pdf":
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}

	doc, err := s.documents.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	base := exportBaseName(doc.Filename, doc.ID)
	text := doc.Text
	if strings.TrimSpace(text) == "" {
		text = "No text content available"
	}

	switch format {
	case "txt":
		return &ExportResult{
			Filename:    base + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Content:     []byte(text),
		}, nil

	case "csv":
		var buf bytes.Buffer
		buf.Write(utf8BOM)
		w := csv.NewWriter(&buf)
		records := [][]string{
			{"Document ID", "Filename", "Text Content"},
			{strconv.FormatInt(doc.ID, 10), doc.Filename, text},
		}
		if err := w.WriteAll(records); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
		return &ExportResult{
			Filename:    base + ".csv",
			ContentType: "text/csv; charset=utf-8",
			Content:     buf.Bytes(),
		}, nil

	default: // pdf
		content, err := s.renderer.Render("OCR Document: "+doc.Filename, export.Meta{
			DocumentID:  doc.ID,
			Filename:    doc.Filename,
			GeneratedAt: s.now().UTC(),
		}, text)
		if err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		return &ExportResult{
			Filename:    base + ".pdf",
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}
}

// exportBaseName derives a safe download filename from the stored one:
// filesystem-hostile characters become underscores and the image extension is
// dropped. An empty result falls back to document_<id>.
func exportBaseName(filename string, id int64) string {
	base := unsafeFilenameChars.ReplaceAllString(filename, "_")
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(base)
	if base == "" || strings.Trim(base, "_.") == "" {
		return fmt.Sprintf("document_%d", id)
	}
	return base
}
