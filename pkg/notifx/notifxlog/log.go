// Package notifxlog is the no-delivery notifier used when callbacks are
// disabled. Everything is logged and reported as delivered.
package notifxlog

import (
	"context"

	"github.com/quizforge/quizforge/pkg/genx"
	"github.com/quizforge/quizforge/pkg/logx"
	"github.com/quizforge/quizforge/pkg/notifx"
)

type Notifier struct{}

func New() *Notifier { return &Notifier{} }

func (n *Notifier) SendProgress(_ context.Context, documentID string, ev notifx.ProgressEvent) {
	logx.WithFields(logx.Fields{
		"document_id": documentID,
		"percent":     ev.Percent,
		"status":      ev.Status,
		"message":     ev.Message,
	}).Info("progress (callbacks disabled)")
}

func (n *Notifier) SendResult(_ context.Context, documentID string, questions []genx.Question) error {
	logx.WithFields(logx.Fields{
		"document_id": documentID,
		"questions":   len(questions),
	}).Info("result (callbacks disabled)")
	return nil
}

func (n *Notifier) SendFailure(_ context.Context, documentID string, message string) error {
	logx.WithFields(logx.Fields{
		"document_id": documentID,
		"error":       message,
	}).Warn("failure (callbacks disabled)")
	return nil
}
