package genxllm

import (
	"net/http"

	"github.com/quizforge/quizforge/pkg/errx"
)

var (
	llmGenErrors = errx.NewRegistry("LLM_GEN")

	ErrBackendFailed = llmGenErrors.Register(
		"BACKEND_FAILED",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Model backend request failed",
	)

	ErrUnparsableOutput = llmGenErrors.Register(
		"UNPARSABLE_OUTPUT",
		errx.TypeExternal,
		http.StatusBadGateway,
		"Model output is not valid question JSON",
	)
)
