package genx

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	genErrors = errx.NewRegistry("GEN")

	ErrInvalidQuestion = genErrors.Register(
		"INVALID_QUESTION",
		errx.TypeBusiness,
		http.StatusUnprocessableEntity,
		"Generated question has an invalid shape",
	)

	ErrNoQuestions = genErrors.Register(
		"NO_QUESTIONS",
		errx.TypeBusiness,
		http.StatusUnprocessableEntity,
		"Generator produced no questions",
	)

	ErrAllGeneratorsFailed = genErrors.Register(
		"ALL_GENERATORS_FAILED",
		errx.TypeInternal,
		http.StatusInternalServerError,
		"Every question generator failed",
	)
)
