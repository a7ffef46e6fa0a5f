package config

import "time"

// GenerationConfig configures the question generation chain. Remote backends
// with a missing API key are skipped; the heuristic tier needs no config and
// cannot be disabled.
type GenerationConfig struct {
	GeminiAPIKey string
	GeminiModel  string

	OpenAIAPIKey  string
	OpenAIBaseURL string // OpenAI-compatible endpoint, e.g. a local Ollama server
	OpenAIModel   string

	AnthropicAPIKey string
	AnthropicModel  string

	// QuestionCount is the number of questions requested from remote backends.
	QuestionCount int
	// HeuristicQuestionCount caps the last-resort generator's output.
	HeuristicQuestionCount int
	// MaxPromptChars bounds the extracted-text prefix sent to a backend.
	MaxPromptChars int
	RequestTimeout time.Duration
}

func loadGenerationConfig() GenerationConfig {
	return GenerationConfig{
		GeminiAPIKey:           getEnv("GEMINI_API_KEY", ""),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		OpenAIAPIKey:           getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:          getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AnthropicAPIKey:        getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:         getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
		QuestionCount:          getEnvInt("GENERATION_QUESTION_COUNT", 5),
		HeuristicQuestionCount: getEnvInt("GENERATION_HEURISTIC_QUESTION_COUNT", 3),
		MaxPromptChars:         getEnvInt("GENERATION_MAX_PROMPT_CHARS", 8000),
		RequestTimeout:         getEnvDuration("GENERATION_TIMEOUT", 60*time.Second),
	}
}
