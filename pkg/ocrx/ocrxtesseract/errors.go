package ocrxtesseract

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	tessErrors = errx.NewRegistry("TESSERACT")

	ErrEngineFailed = tessErrors.Register(
		"ENGINE_FAILED",
		errx.TypeInternal,
		http.StatusInternalServerError,
		"Local OCR engine failed",
	)

	ErrRasterize = tessErrors.Register(
		"RASTERIZE_FAILED",
		errx.TypeInternal,
		http.StatusInternalServerError,
		"Could not rasterize document for OCR",
	)
)
