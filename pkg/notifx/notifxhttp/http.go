// Package notifxhttp delivers callbacks over HTTP with a shared-secret
// header and bounded retries.
package notifxhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/quizforge/quizforge/pkg/asyncx"
	"github.com/quizforge/quizforge/pkg/genx"
	"github.com/quizforge/quizforge/pkg/logx"
	"github.com/quizforge/quizforge/pkg/notifx"
)

const secretHeader = "X-Internal-Secret"

// Notifier posts JSON callbacks to templated URLs. The {document_id}
// placeholder in each template is replaced per call.
type Notifier struct {
	progressURL string
	callbackURL string
	secret      string

	attempts   int
	retryDelay time.Duration

	progressClient *http.Client
	resultClient   *http.Client
}

// Config carries the notifier settings.
type Config struct {
	ProgressURLTemplate string
	CallbackURLTemplate string
	Secret              string
	Attempts            int
	RetryDelay          time.Duration
	ProgressTimeout     time.Duration
	ResultTimeout       time.Duration
}

// New builds an HTTP notifier from cfg.
func New(cfg Config) *Notifier {
	return &Notifier{
		progressURL:    cfg.ProgressURLTemplate,
		callbackURL:    cfg.CallbackURLTemplate,
		secret:         cfg.Secret,
		attempts:       cfg.Attempts,
		retryDelay:     cfg.RetryDelay,
		progressClient: &http.Client{Timeout: cfg.ProgressTimeout},
		resultClient:   &http.Client{Timeout: cfg.ResultTimeout},
	}
}

// SendProgress posts the event with retries. Exhausted retries are logged
// and swallowed; progress must never fail the pipeline.
func (n *Notifier) SendProgress(ctx context.Context, documentID string, ev notifx.ProgressEvent) {
	url := interpolate(n.progressURL, documentID)
	_, err := asyncx.RetryWithBackoff(ctx, n.attempts, n.retryDelay, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, n.post(ctx, n.progressClient, url, ev)
	})
	if err != nil {
		logx.WithError(err).WithFields(logx.Fields{
			"document_id": documentID,
			"percent":     ev.Percent,
		}).Warn("progress callback failed after retries")
	}
}

// SendResult posts the question batch with retries.
func (n *Notifier) SendResult(ctx context.Context, documentID string, questions []genx.Question) error {
	url := interpolate(n.callbackURL, documentID)
	payload := notifx.ResultPayload{Questions: questions}
	_, err := asyncx.RetryWithBackoff(ctx, n.attempts, n.retryDelay, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, n.post(ctx, n.resultClient, url, payload)
	})
	if err != nil {
		return notifx.NewDeliveryError(err)
	}
	return nil
}

// SendFailure posts a terminal failure. Single attempt; by the time this
// runs the pipeline is already failing and retry loops only delay cleanup.
func (n *Notifier) SendFailure(ctx context.Context, documentID string, message string) error {
	url := interpolate(n.callbackURL, documentID)
	payload := notifx.FailurePayload{Status: notifx.StatusFailed, ErrorMessage: message}
	if err := n.post(ctx, n.progressClient, url, payload); err != nil {
		return notifx.NewDeliveryError(err)
	}
	return nil
}

func (n *Notifier) post(ctx context.Context, client *http.Client, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, n.secret)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return notifx.NewRejectedError(resp.StatusCode)
	}
	return nil
}

func interpolate(template, documentID string) string {
	return strings.ReplaceAll(template, "{document_id}", documentID)
}
