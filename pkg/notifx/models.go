package notifx

import "github.com/quizforge/quizforge/pkg/genx"

// Status values carried by progress events.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ProgressEvent is one intermediate state report.
type ProgressEvent struct {
	Percent    int    `json:"percent"`
	Message    string `json:"message"`
	ETASeconds int    `json:"eta_seconds"`
	Status     string `json:"status"`
}

// ResultPayload is the successful terminal callback body.
type ResultPayload struct {
	Questions []genx.Question `json:"questions"`
}

// FailurePayload is the terminal callback body when processing failed.
type FailurePayload struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}
