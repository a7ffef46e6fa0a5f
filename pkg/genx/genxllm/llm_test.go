package genxllm_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/quizforge/quizforge/pkg/ai/llm"
	"github.com/quizforge/quizforge/pkg/genx"
	"github.com/quizforge/quizforge/pkg/genx/genxllm"
)

type fakeLLM struct {
	reply    string
	err      error
	lastMsgs []llm.Message
	lastOpts llm.ChatOptions
}

func (f *fakeLLM) Chat(_ context.Context, messages []llm.Message, opts ...llm.Option) (llm.Response, error) {
	f.lastMsgs = messages
	options := llm.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	f.lastOpts = *options
	if f.err != nil {
		return llm.Response{}, f.err
	}
	return llm.Response{Message: llm.NewAssistantMessage(f.reply)}, nil
}

const validBatch = `{"questions":[{"question_text":"What powers photosynthesis?","choices":[
{"choice_text":"sunlight","is_correct":true},
{"choice_text":"wind","is_correct":false},
{"choice_text":"tides","is_correct":false},
{"choice_text":"magnetism","is_correct":false}]}]}`

func TestGenerate_ParsesEnvelope(t *testing.T) {
	backend := &fakeLLM{reply: validBatch}
	g := genxllm.New("test", backend, "test-model", 5, 8000, 0)

	questions, err := g.Generate(context.Background(), "photosynthesis notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if questions[0].Text != "What powers photosynthesis?" {
		t.Fatalf("unexpected question %q", questions[0].Text)
	}
	if err := genx.ValidateAll(questions); err != nil {
		t.Fatalf("parsed questions failed validation: %v", err)
	}
}

func TestGenerate_StripsCodeFence(t *testing.T) {
	backend := &fakeLLM{reply: "```json\n" + validBatch + "\n```"}
	g := genxllm.New("test", backend, "", 5, 8000, 0)

	questions, err := g.Generate(context.Background(), "notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestGenerate_ParsesBareArray(t *testing.T) {
	bare := `[{"question_text":"Q?","choices":[
{"choice_text":"a","is_correct":true},
{"choice_text":"b","is_correct":false},
{"choice_text":"c","is_correct":false},
{"choice_text":"d","is_correct":false}]}]`
	backend := &fakeLLM{reply: bare}
	g := genxllm.New("test", backend, "", 5, 8000, 0)

	questions, err := g.Generate(context.Background(), "notes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
}

func TestGenerate_ProseIsError(t *testing.T) {
	backend := &fakeLLM{reply: "Sure! Here are some questions for you."}
	g := genxllm.New("test", backend, "", 5, 8000, 0)

	if _, err := g.Generate(context.Background(), "notes"); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestGenerate_BackendErrorPropagates(t *testing.T) {
	backend := &fakeLLM{err: errors.New("rate limited")}
	g := genxllm.New("test", backend, "", 5, 8000, 0)

	if _, err := g.Generate(context.Background(), "notes"); err == nil {
		t.Fatal("expected backend error")
	}
}

func TestGenerate_TruncatesPrompt(t *testing.T) {
	backend := &fakeLLM{reply: validBatch}
	g := genxllm.New("test", backend, "", 5, 100, 0)

	long := strings.Repeat("a", 5000)
	if _, err := g.Generate(context.Background(), long); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := backend.lastMsgs[len(backend.lastMsgs)-1].Content
	if strings.Contains(user, strings.Repeat("a", 101)) {
		t.Fatal("document content was not truncated to the configured limit")
	}
}

// stalledLLM never answers; it only returns once the context is cancelled.
type stalledLLM struct{}

func (stalledLLM) Chat(ctx context.Context, _ []llm.Message, _ ...llm.Option) (llm.Response, error) {
	<-ctx.Done()
	return llm.Response{}, ctx.Err()
}

func TestGenerate_BoundsStalledBackend(t *testing.T) {
	g := genxllm.New("test", stalledLLM{}, "", 5, 8000, 20*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		_, err := g.Generate(context.Background(), "notes")
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Generate did not return within the configured timeout")
	}
}

func TestGenerate_TruncatesOnRuneBoundary(t *testing.T) {
	backend := &fakeLLM{reply: validBatch}
	g := genxllm.New("test", backend, "", 5, 101, 0)

	// Two-byte runes; an odd byte limit falls mid-rune.
	if _, err := g.Generate(context.Background(), strings.Repeat("é", 200)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := backend.lastMsgs[len(backend.lastMsgs)-1].Content
	if !utf8.ValidString(user) {
		t.Fatal("truncated prompt contains invalid UTF-8")
	}
}

func TestGenerate_RequestsJSONAndModel(t *testing.T) {
	backend := &fakeLLM{reply: validBatch}
	g := genxllm.New("test", backend, "custom-model", 5, 8000, 0)

	if _, err := g.Generate(context.Background(), "notes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !backend.lastOpts.JSONOutput {
		t.Fatal("expected JSON output to be requested")
	}
	if backend.lastOpts.Model != "custom-model" {
		t.Fatalf("expected configured model, got %q", backend.lastOpts.Model)
	}
}
