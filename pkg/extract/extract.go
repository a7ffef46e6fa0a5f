// Package extract performs direct, network-free text extraction from the
// supported document formats. Malformed pages or paragraphs never surface as
// errors; a bad unit contributes empty text and processing continues. The
// only error this package produces is the unsupported-format rejection.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/quizforge/quizforge/pkg/logx"
)

// Format is a supported document format.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatImage   Format = "image"
	FormatUnknown Format = "unknown"
)

// DetectFormat maps a locator's extension to a Format.
func DetectFormat(locator string) Format {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(locator), ".")) {
	case "pdf":
		return FormatPDF
	case "docx":
		return FormatDOCX
	case "png", "jpg", "jpeg":
		return FormatImage
	default:
		return FormatUnknown
	}
}

// SupportsDirectText reports whether the format carries machine-readable text.
func (f Format) SupportsDirectText() bool {
	return f == FormatPDF || f == FormatDOCX
}

// Extractor dispatches extraction by format. Parser functions are fields so
// tests can substitute stubs.
type Extractor struct {
	// minPDFTextChars is the usefulness threshold below which the
	// alternate PDF parser is consulted.
	minPDFTextChars int

	pdfPrimary   func(path string) string
	pdfAlternate func(path string) string
	pdfMetadata  func(path string) string
	docxParse    func(path string) string
}

// New creates an Extractor with the real parsers.
func New(minPDFTextChars int) *Extractor {
	return &Extractor{
		minPDFTextChars: minPDFTextChars,
		pdfPrimary:      extractPDFPrimary,
		pdfAlternate:    extractPDFAlternate,
		pdfMetadata:     extractPDFMetadata,
		docxParse:       extractDOCX,
	}
}

// Extract returns the text of the document at path, which may be empty.
// Raster images are not handled here; they return empty text and are routed
// to OCR by the caller. Unknown formats return the unsupported-format error.
func (e *Extractor) Extract(ctx context.Context, path string, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return e.extractPDF(path), nil
	case FormatDOCX:
		return e.docxParse(path), nil
	case FormatImage:
		return "", nil
	default:
		return "", extractErrors.New(ErrUnsupportedFormat).
			WithDetail("locator", path)
	}
}

func (e *Extractor) extractPDF(path string) string {
	text := e.pdfPrimary(path)

	if len(strings.TrimSpace(text)) < e.minPDFTextChars {
		alt := e.pdfAlternate(path)
		if len(strings.TrimSpace(alt)) > len(strings.TrimSpace(text)) {
			logx.WithFields(logx.Fields{
				"primary_len":   len(text),
				"alternate_len": len(alt),
			}).Debug("alternate PDF parser kept")
			text = alt
		}
	}

	if strings.TrimSpace(text) == "" {
		text = e.pdfMetadata(path)
	}
	return text
}
