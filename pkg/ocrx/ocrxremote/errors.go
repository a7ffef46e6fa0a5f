package ocrxremote

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	remoteErrors = errx.NewRegistry("REMOTE_OCR")

	ErrRequestFailed = remoteErrors.Register(
		"REQUEST_FAILED",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Remote OCR request failed",
	)

	ErrBadResponse = remoteErrors.Register(
		"BAD_RESPONSE",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Remote OCR service returned a malformed response",
	)

	ErrServiceRejected = remoteErrors.Register(
		"SERVICE_REJECTED",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Remote OCR service rejected the document",
	)

	ErrFileTooLarge = remoteErrors.Register(
		"FILE_TOO_LARGE",
		errx.TypeBusiness,
		http.StatusRequestEntityTooLarge,
		"Document exceeds the provider upload limit",
	)
)
