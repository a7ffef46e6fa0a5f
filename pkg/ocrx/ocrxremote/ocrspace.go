package ocrxremote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/quizforge/quizforge/pkg/ocrx"
)

const ocrSpaceEndpoint = "https://api.ocr.space/parse/image"

// OCRSpace is the ocr.space provider. The free tier caps uploads, so
// documents over the limit are rejected before the request is made.
type OCRSpace struct {
	apiKey   string
	maxBytes int64
	endpoint string
	client   *http.Client
}

// NewOCRSpace builds the provider. A zero maxBytes disables the size check.
func NewOCRSpace(apiKey string, maxBytes int64, timeout time.Duration) *OCRSpace {
	return &OCRSpace{
		apiKey:   apiKey,
		maxBytes: maxBytes,
		endpoint: ocrSpaceEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func (p *OCRSpace) Name() string  { return "ocrspace" }
func (p *OCRSpace) Enabled() bool { return p.apiKey != "" }

type ocrSpaceResponse struct {
	IsErroredOnProcessing bool `json:"IsErroredOnProcessing"`
	ErrorMessage          any  `json:"ErrorMessage"`
	ParsedResults         []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
}

func (p *OCRSpace) Recognize(ctx context.Context, in ocrx.Input) (string, error) {
	if p.maxBytes > 0 {
		fi, err := os.Stat(in.Path)
		if err != nil {
			return "", remoteErrors.NewWithCause(ErrRequestFailed, err)
		}
		if fi.Size() > p.maxBytes {
			return "", remoteErrors.New(ErrFileTooLarge).
				WithDetail("size", fi.Size()).
				WithDetail("limit", p.maxBytes)
		}
	}

	fields := map[string]string{
		"language":          "eng",
		"isOverlayRequired": "false",
		"OCREngine":         "2",
		"scale":             "true",
	}
	headers := map[string]string{"apikey": p.apiKey}

	resp, err := postFile(ctx, p.client, p.endpoint, "file", in.Path, fields, headers)
	if err != nil {
		return "", err
	}
	body, err := readBody(resp)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", remoteErrors.New(ErrServiceRejected).WithDetail("status", resp.StatusCode)
	}

	var parsed ocrSpaceResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", remoteErrors.NewWithCause(ErrBadResponse, err)
	}
	if parsed.IsErroredOnProcessing {
		return "", remoteErrors.New(ErrServiceRejected).
			WithDetail("message", fmt.Sprint(parsed.ErrorMessage))
	}

	var sb strings.Builder
	for _, r := range parsed.ParsedResults {
		sb.WriteString(r.ParsedText)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
