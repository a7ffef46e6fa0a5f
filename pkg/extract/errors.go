package extract

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	extractErrors = errx.NewRegistry("EXTRACT")

	// ErrUnsupportedFormat is the hard rejection for formats the pipeline
	// cannot process. There is no escalation path for it.
	ErrUnsupportedFormat = extractErrors.Register(
		"UNSUPPORTED_FORMAT",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Unsupported document format",
	)
)
