package extract

import (
	"context"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/pkg/errx"
)

func stubExtractor(primary, alternate, metadata, docx string) *Extractor {
	return &Extractor{
		minPDFTextChars: 80,
		pdfPrimary:      func(string) string { return primary },
		pdfAlternate:    func(string) string { return alternate },
		pdfMetadata:     func(string) string { return metadata },
		docxParse:       func(string) string { return docx },
	}
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"docs/report.pdf":  FormatPDF,
		"report.PDF":       FormatPDF,
		"notes.docx":       FormatDOCX,
		"scan.png":         FormatImage,
		"photo.jpg":        FormatImage,
		"photo.JPEG":       FormatImage,
		"archive.zip":      FormatUnknown,
		"no-extension":     FormatUnknown,
		"dir.pdf/file.txt": FormatUnknown,
	}
	for locator, want := range cases {
		if got := DetectFormat(locator); got != want {
			t.Errorf("DetectFormat(%q) = %v, want %v", locator, got, want)
		}
	}
}

func TestExtract_UnknownFormatRejected(t *testing.T) {
	e := stubExtractor("", "", "", "")
	_, err := e.Extract(context.Background(), "file.zip", FormatUnknown)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	var appErr *errx.Error
	if !errx.As(err, &appErr) {
		t.Fatalf("expected *errx.Error, got %T", err)
	}
	if appErr.Code != ErrUnsupportedFormat.Code {
		t.Fatalf("expected code %s, got %s", ErrUnsupportedFormat.Code, appErr.Code)
	}
}

func TestExtract_ImageReturnsEmpty(t *testing.T) {
	e := stubExtractor("should not be called", "", "", "")
	text, err := e.Extract(context.Background(), "scan.png", FormatImage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" {
		t.Fatalf("expected empty text for image, got %q", text)
	}
}

func TestExtractPDF_PrimarySufficient(t *testing.T) {
	long := strings.Repeat("lorem ipsum ", 20)
	e := stubExtractor(long, "alternate text", "", "")
	text, err := e.Extract(context.Background(), "doc.pdf", FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != long {
		t.Fatal("primary result above threshold should be kept as-is")
	}
}

func TestExtractPDF_ShortPrimaryPrefersLongerAlternate(t *testing.T) {
	alt := strings.Repeat("recovered text ", 10)
	e := stubExtractor("tiny", alt, "", "")
	text, err := e.Extract(context.Background(), "doc.pdf", FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != alt {
		t.Fatalf("expected alternate result, got %q", text)
	}
}

func TestExtractPDF_ShortPrimaryKeptOverShorterAlternate(t *testing.T) {
	e := stubExtractor("some short text", "x", "", "")
	text, err := e.Extract(context.Background(), "doc.pdf", FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "some short text" {
		t.Fatalf("expected primary result kept, got %q", text)
	}
}

func TestExtractPDF_MetadataFallback(t *testing.T) {
	e := stubExtractor("", "  ", "Quarterly Report finance", "")
	text, err := e.Extract(context.Background(), "doc.pdf", FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Quarterly Report finance" {
		t.Fatalf("expected metadata fallback, got %q", text)
	}
}

func TestExtract_DOCXUsesParser(t *testing.T) {
	e := stubExtractor("", "", "", "paragraph one\nparagraph two\n")
	text, err := e.Extract(context.Background(), "doc.docx", FormatDOCX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "paragraph two") {
		t.Fatalf("expected parsed docx text, got %q", text)
	}
}
