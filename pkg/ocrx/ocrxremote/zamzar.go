package ocrxremote

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/quizforge/quizforge/pkg/ocrx"
)

// Zamzar converts word-processor documents to plain text through a
// conversion API. It only handles convertible formats; everything else is a
// clean no-result so the chain moves on.
type Zamzar struct {
	url    string
	apiKey string
	client *http.Client
}

// NewZamzar builds the conversion provider posting to url.
func NewZamzar(url, apiKey string, timeout time.Duration) *Zamzar {
	return &Zamzar{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *Zamzar) Name() string  { return "zamzar" }
func (p *Zamzar) Enabled() bool { return p.url != "" && p.apiKey != "" }

func (p *Zamzar) Recognize(ctx context.Context, in ocrx.Input) (string, error) {
	if in.Format != ocrx.FormatConvertible {
		return "", nil
	}

	fields := map[string]string{"target_format": "txt"}
	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}

	resp, err := postFile(ctx, p.client, p.url, "source_file", in.Path, fields, headers)
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

	// Conversion services answer with the converted text directly or wrap it
	// in a JSON envelope.
	if ct := resp.Header.Get("Content-Type"); strings.HasPrefix(ct, "text/") {
		return string(body), nil
	}

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return "", remoteErrors.NewWithCause(ErrBadResponse, err)
	}
	return textFromJSON(m, []string{"text", "content", "data"}), nil
}
