// Package notifx reports pipeline progress and final results back to the
// service that requested processing. Progress is best effort; the result
// callback is the one delivery that matters and reports failure to the
// caller.
package notifx

import (
	"context"

	"github.com/quizforge/quizforge/pkg/genx"
)

// Notifier delivers progress events and terminal outcomes for one document.
type Notifier interface {
	// SendProgress reports an intermediate state. Delivery failures are
	// handled internally; the pipeline never stops for a lost progress event.
	SendProgress(ctx context.Context, documentID string, ev ProgressEvent)

	// SendResult delivers the generated questions. An error means every
	// delivery attempt failed.
	SendResult(ctx context.Context, documentID string, questions []genx.Question) error

	// SendFailure delivers a terminal failure with a diagnostic message.
	SendFailure(ctx context.Context, documentID string, message string) error
}
