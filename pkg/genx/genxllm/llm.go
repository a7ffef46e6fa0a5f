// Package genxllm generates questions by prompting a chat model for strict
// JSON. One Generator wraps one backend; the container registers a Generator
// per configured provider so they fall back in order.
package genxllm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/quizforge/quizforge/pkg/ai/llm"
	"github.com/quizforge/quizforge/pkg/asyncx"
	"github.com/quizforge/quizforge/pkg/genx"
)

const systemPrompt = "You write multiple-choice quiz questions. Respond with JSON only, no prose and no markdown."

// Generator prompts a single chat backend for a question batch.
type Generator struct {
	name           string
	backend        llm.LLM
	model          string
	questionCount  int
	maxPromptChars int
	timeout        time.Duration
}

// New builds a Generator named name over backend. model may be empty to use
// the backend default. timeout bounds each backend call; zero leaves the
// caller's context in charge.
func New(name string, backend llm.LLM, model string, questionCount, maxPromptChars int, timeout time.Duration) *Generator {
	return &Generator{
		name:           name,
		backend:        backend,
		model:          model,
		questionCount:  questionCount,
		maxPromptChars: maxPromptChars,
		timeout:        timeout,
	}
}

func (g *Generator) Name() string { return g.name }

// Generate prompts the backend and decodes its JSON answer. Output that is
// not parsable as a question batch is an error; the chain moves on.
func (g *Generator) Generate(ctx context.Context, content string) ([]genx.Question, error) {
	content = truncate(content, g.maxPromptChars)

	userPrompt := fmt.Sprintf(
		"Create exactly %d multiple-choice questions from the document below. "+
			"Each question must have exactly 4 choices and exactly 1 correct choice. "+
			"Answer with a JSON object of the form "+
			`{"questions":[{"question_text":"...","choices":[{"choice_text":"...","is_correct":true}]}]}`+
			"\n\nDocument:\n%s",
		g.questionCount, content,
	)

	opts := []llm.Option{llm.WithJSONOutput()}
	if g.model != "" {
		opts = append(opts, llm.WithModel(g.model))
	}

	resp, err := g.chat(ctx, []llm.Message{
		llm.NewSystemMessage(systemPrompt),
		llm.NewUserMessage(userPrompt),
	}, opts)
	if err != nil {
		return nil, llmGenErrors.NewWithCause(ErrBackendFailed, err)
	}

	questions, err := parseQuestions(resp.Message.Content)
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// chat calls the backend, bounded by the configured timeout. A stalled
// backend must not hang the job goroutine.
func (g *Generator) chat(ctx context.Context, messages []llm.Message, opts []llm.Option) (llm.Response, error) {
	if g.timeout <= 0 {
		return g.backend.Chat(ctx, messages, opts...)
	}
	return asyncx.WithTimeout(ctx, g.timeout, func(ctx context.Context) (llm.Response, error) {
		return g.backend.Chat(ctx, messages, opts...)
	})
}

// truncate bounds content to limit bytes without splitting a multi-byte rune.
func truncate(content string, limit int) string {
	if limit <= 0 || len(content) <= limit {
		return content
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut]
}

// parseQuestions decodes model output, tolerating a markdown code fence and
// both the envelope form and a bare array.
func parseQuestions(raw string) ([]genx.Question, error) {
	cleaned := stripFences(raw)
	if cleaned == "" {
		return nil, llmGenErrors.New(ErrUnparsableOutput).WithDetail("reason", "empty output")
	}

	var envelope struct {
		Questions []genx.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &envelope); err == nil && len(envelope.Questions) > 0 {
		return envelope.Questions, nil
	}

	var questions []genx.Question
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, llmGenErrors.NewWithCause(ErrUnparsableOutput, err)
	}
	return questions, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		first := strings.TrimSpace(s[:idx])
		if first == "json" || first == "" {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
