// Package ocrxtesseract runs OCR with a local Tesseract engine. PDFs are
// rasterized page by page before recognition; word-processor documents are
// out of scope and report a clean no-result.
package ocrxtesseract

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"

	"github.com/quizforge/quizforge/pkg/extract"
	"github.com/quizforge/quizforge/pkg/logx"
	"github.com/quizforge/quizforge/pkg/ocrx"
)

// Provider is the local OCR engine backed by gosseract.
type Provider struct {
	binaryPath    string
	clientFactory func() *gosseract.Client
}

// New builds the provider. binaryPath is the configured engine location; an
// empty value falls back to PATH lookup.
func New(binaryPath string) *Provider {
	return &Provider{
		binaryPath:    binaryPath,
		clientFactory: gosseract.NewClient,
	}
}

func (p *Provider) Name() string { return "tesseract" }

// Enabled reports whether a Tesseract installation can be located, either at
// the configured path or on PATH.
func (p *Provider) Enabled() bool {
	if p.binaryPath != "" {
		if _, err := os.Stat(p.binaryPath); err == nil {
			return true
		}
	}
	_, err := exec.LookPath("tesseract")
	return err == nil
}

// Recognize dispatches on format: images are OCRed directly, PDFs are
// rasterized per page and the page texts joined.
func (p *Provider) Recognize(ctx context.Context, in ocrx.Input) (string, error) {
	switch in.Format {
	case extract.FormatImage:
		data, err := os.ReadFile(in.Path)
		if err != nil {
			return "", tessErrors.NewWithCause(ErrEngineFailed, err)
		}
		return p.recognizeImage(data)
	case extract.FormatPDF:
		return p.recognizePDF(ctx, in.Path)
	default:
		return "", nil
	}
}

func (p *Provider) recognizeImage(data []byte) (string, error) {
	c := p.clientFactory()
	defer c.Close()

	if err := c.SetLanguage("eng"); err != nil {
		return "", tessErrors.NewWithCause(ErrEngineFailed, err)
	}
	if err := c.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return "", tessErrors.NewWithCause(ErrEngineFailed, err)
	}
	if err := c.SetImageFromBytes(data); err != nil {
		return "", tessErrors.NewWithCause(ErrEngineFailed, err)
	}

	text, err := c.Text()
	if err != nil {
		return "", tessErrors.NewWithCause(ErrEngineFailed, err)
	}
	return text, nil
}

func (p *Provider) recognizePDF(ctx context.Context, path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", tessErrors.NewWithCause(ErrRasterize, err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		img, err := doc.Image(i)
		if err != nil {
			logx.WithError(err).WithField("page", i+1).Warn("PDF page rasterization failed")
			continue
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			continue
		}

		text, err := p.recognizeImage(buf.Bytes())
		if err != nil {
			logx.WithError(err).WithField("page", i+1).Warn("page OCR failed")
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
