package genxheuristic

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	heuristicErrors = errx.NewRegistry("HEURISTIC")

	ErrInsufficientContent = heuristicErrors.Register(
		"INSUFFICIENT_CONTENT",
		errx.TypeBusiness,
		http.StatusUnprocessableEntity,
		"Document text is insufficient for question generation",
	)
)
