package ocrx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quizforge/quizforge/pkg/extract"
	"github.com/quizforge/quizforge/pkg/ocrx"
)

type stubProvider struct {
	name    string
	enabled bool
	text    string
	err     error
	calls   int
}

func (s *stubProvider) Name() string  { return s.name }
func (s *stubProvider) Enabled() bool { return s.enabled }

func (s *stubProvider) Recognize(context.Context, ocrx.Input) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestChain_FirstNonEmptyWins(t *testing.T) {
	first := &stubProvider{name: "a", enabled: true, err: errors.New("boom")}
	second := &stubProvider{name: "b", enabled: true, text: "  recognized text  "}
	third := &stubProvider{name: "c", enabled: true, text: "should not run"}

	chain := ocrx.NewChain([]ocrx.Provider{first, second, third}, []string{"a", "b", "c"})
	got := chain.Recognize(context.Background(), ocrx.Input{Path: "doc.pdf", Format: extract.FormatPDF})

	if got != "recognized text" {
		t.Fatalf("expected trimmed text from second provider, got %q", got)
	}
	if third.calls != 0 {
		t.Fatal("chain should stop at the first non-empty result")
	}
}

func TestChain_SkipsDisabledProviders(t *testing.T) {
	disabled := &stubProvider{name: "a", enabled: false, text: "never"}
	enabled := &stubProvider{name: "b", enabled: true, text: "ok"}

	chain := ocrx.NewChain([]ocrx.Provider{disabled, enabled}, []string{"a", "b"})
	got := chain.Recognize(context.Background(), ocrx.Input{Format: extract.FormatPDF})

	if got != "ok" {
		t.Fatalf("expected enabled provider result, got %q", got)
	}
	if disabled.calls != 0 {
		t.Fatal("disabled provider must not be called")
	}
}

func TestChain_ExhaustionYieldsEmpty(t *testing.T) {
	a := &stubProvider{name: "a", enabled: true, err: errors.New("down")}
	b := &stubProvider{name: "b", enabled: true, text: "   "}

	chain := ocrx.NewChain([]ocrx.Provider{a, b}, []string{"a", "b"})
	if got := chain.Recognize(context.Background(), ocrx.Input{Format: extract.FormatPDF}); got != "" {
		t.Fatalf("expected empty result on exhaustion, got %q", got)
	}
	if a.calls != 1 || b.calls != 1 {
		t.Fatalf("every enabled provider should be tried once, got %d/%d", a.calls, b.calls)
	}
}

func TestChain_OrderOverride(t *testing.T) {
	a := &stubProvider{name: "a", enabled: true, text: "from a"}
	b := &stubProvider{name: "b", enabled: true, text: "from b"}

	chain := ocrx.NewChain([]ocrx.Provider{a, b}, []string{"b", "a"})
	if got := chain.Recognize(context.Background(), ocrx.Input{Format: extract.FormatPDF}); got != "from b" {
		t.Fatalf("expected override order to run b first, got %q", got)
	}
}

func TestChain_UnknownNamesIgnored(t *testing.T) {
	a := &stubProvider{name: "a", enabled: true, text: "ok"}

	chain := ocrx.NewChain([]ocrx.Provider{a}, []string{"ghost", "a"})
	if got := chain.Recognize(context.Background(), ocrx.Input{Format: extract.FormatPDF}); got != "ok" {
		t.Fatalf("unknown provider names should be skipped, got %q", got)
	}
}

func TestDefaultOrder_AppendsConversionForDOCX(t *testing.T) {
	pdfOrder := ocrx.DefaultOrder(extract.FormatPDF)
	docxOrder := ocrx.DefaultOrder(extract.FormatDOCX)

	if len(docxOrder) != len(pdfOrder)+1 {
		t.Fatalf("expected one extra provider for docx, got %v", docxOrder)
	}
	if docxOrder[len(docxOrder)-1] != "zamzar" {
		t.Fatalf("expected conversion provider last, got %v", docxOrder)
	}
	for _, name := range pdfOrder {
		if name == "zamzar" {
			t.Fatal("conversion provider must not run for pdf")
		}
	}
}
