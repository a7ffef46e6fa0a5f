package ocrxremote

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/quizforge/quizforge/pkg/ocrx"
)

// Bearer is a generic extraction provider for services that accept a
// multipart file upload with a bearer token and answer with JSON. Covers the
// t3xtr, apdf and textmill backends, which share this shape.
type Bearer struct {
	name   string
	url    string
	apiKey string
	client *http.Client
}

// NewBearer builds a bearer-token provider named name posting to url.
func NewBearer(name, url, apiKey string, timeout time.Duration) *Bearer {
	return &Bearer{
		name:   name,
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *Bearer) Name() string  { return p.name }
func (p *Bearer) Enabled() bool { return p.url != "" && p.apiKey != "" }

func (p *Bearer) Recognize(ctx context.Context, in ocrx.Input) (string, error) {
	headers := map[string]string{"Authorization": "Bearer " + p.apiKey}

	resp, err := postFile(ctx, p.client, p.url, "file", in.Path, nil, headers)
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

	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return "", remoteErrors.NewWithCause(ErrBadResponse, err)
	}
	return textFromJSON(m, []string{"text", "data", "result"}), nil
}
