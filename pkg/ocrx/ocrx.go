// Package ocrx models OCR backends as interchangeable providers and runs
// them as an ordered fallback chain. A provider failure is never fatal: it is
// logged and the chain moves on. Exhausting the chain yields empty text, not
// an error; the pipeline decides what an empty result means.
package ocrx

import (
	"context"
	"strings"

	"github.com/quizforge/quizforge/pkg/extract"
	"github.com/quizforge/quizforge/pkg/logx"
)

// Input identifies the document handed to a provider.
type Input struct {
	// Path is the local working copy of the document.
	Path string
	// Format is the declared document format.
	Format extract.Format
}

// Provider is the extract-or-report-nothing capability every OCR backend
// implements. Recognize returns empty text for a clean no-result and an
// error only for genuine failures (transport, malformed response); the chain
// treats both the same way.
type Provider interface {
	Name() string
	// Enabled reports whether the provider has what it needs to run
	// (credentials, a local engine). Disabled providers are skipped.
	Enabled() bool
	Recognize(ctx context.Context, in Input) (string, error)
}

// DefaultOrder is the provider order used when no override is configured.
// The conversion provider is appended for word-processor documents only.
func DefaultOrder(format extract.Format) []string {
	order := []string{"tesseract", "ocrspace", "t3xtr", "apdf", "textmill"}
	if format == FormatConvertible {
		order = append(order, "zamzar")
	}
	return order
}

// FormatConvertible is the format for which PDF-to-text conversion providers
// join the default chain.
const FormatConvertible = extract.FormatDOCX

// Chain tries registered providers in a configured order until one returns
// non-empty trimmed text.
type Chain struct {
	providers map[string]Provider
	order     []string
}

// NewChain builds a chain over the given providers. order overrides the
// default ordering when non-empty; unknown names are ignored.
func NewChain(providers []Provider, order []string) *Chain {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &Chain{providers: byName, order: order}
}

// Recognize runs the chain and returns the first non-empty trimmed text, or
// empty when every provider is skipped, fails, or finds nothing.
func (c *Chain) Recognize(ctx context.Context, in Input) string {
	order := c.order
	if len(order) == 0 {
		order = DefaultOrder(in.Format)
	}

	for _, name := range order {
		p, ok := c.providers[name]
		if !ok {
			continue
		}
		if !p.Enabled() {
			logx.WithField("provider", name).Debug("OCR provider not configured, skipping")
			continue
		}

		text, err := p.Recognize(ctx, in)
		if err != nil {
			logx.WithError(err).WithField("provider", name).Warn("OCR provider failed, trying next")
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			logx.WithFields(logx.Fields{"provider": name, "text_len": len(trimmed)}).Info("OCR provider produced text")
			return trimmed
		}
	}
	return ""
}
