package pipeline

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	pipelineErrors = errx.NewRegistry("PIPELINE")

	ErrUnauthorized = pipelineErrors.Register(
		"UNAUTHORIZED",
		errx.TypeAuthorization,
		http.StatusForbidden,
		"Invalid service secret",
	)

	ErrInvalidRequest = pipelineErrors.Register(
		"INVALID_REQUEST",
		errx.TypeValidation,
		http.StatusBadRequest,
		"Invalid processing request",
	)

	ErrDownloadFailed = pipelineErrors.Register(
		"DOWNLOAD_FAILED",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Could not download document from storage",
	)

	ErrNoText = pipelineErrors.Register(
		"NO_TEXT",
		errx.TypeBusiness,
		http.StatusUnprocessableEntity,
		"No text extracted from document. OCR might be required and is not configured or failed.",
	)

	ErrNoUsableText = pipelineErrors.Register(
		"NO_USABLE_TEXT",
		errx.TypeBusiness,
		http.StatusUnprocessableEntity,
		"No usable text to generate questions",
	)
)
