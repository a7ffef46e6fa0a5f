package notifx

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	notifxErrors = errx.NewRegistry("NOTIFY")

	ErrDeliveryFailed = notifxErrors.Register(
		"DELIVERY_FAILED",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Callback delivery failed after all attempts",
	)

	ErrRejected = notifxErrors.Register(
		"REJECTED",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Callback endpoint rejected the payload",
	)
)

// NewDeliveryError wraps cause as a delivery failure.
func NewDeliveryError(cause error) *errx.Error {
	return notifxErrors.NewWithCause(ErrDeliveryFailed, cause)
}

// NewRejectedError reports a non-success callback response status.
func NewRejectedError(status int) *errx.Error {
	return notifxErrors.New(ErrRejected).WithDetail("status", status)
}
