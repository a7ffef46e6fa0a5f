package genx_test

import (
	"context"
	"errors"
	"testing"

	"github.com/quizforge/quizforge/pkg/genx"
)

type stubGenerator struct {
	name      string
	questions []genx.Question
	err       error
	calls     int
}

func (s *stubGenerator) Name() string { return s.name }

func (s *stubGenerator) Generate(context.Context, string) ([]genx.Question, error) {
	s.calls++
	return s.questions, s.err
}

func validQuestion() genx.Question {
	return genx.Question{
		Text: "Which term appears in the uploaded document?",
		Choices: []genx.Choice{
			{Text: "osmosis", IsCorrect: true},
			{Text: "algebra", IsCorrect: false},
			{Text: "poetry", IsCorrect: false},
			{Text: "geology", IsCorrect: false},
		},
	}
}

func TestChain_FallsThroughToNextTier(t *testing.T) {
	failing := &stubGenerator{name: "remote", err: errors.New("unreachable")}
	working := &stubGenerator{name: "fallback", questions: []genx.Question{validQuestion()}}

	chain := genx.NewChain(failing, working)
	questions, err := chain.Generate(context.Background(), "document text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(questions))
	}
	if failing.calls != 1 || working.calls != 1 {
		t.Fatalf("expected both tiers tried, got %d/%d", failing.calls, working.calls)
	}
}

func TestChain_InvalidBatchIsRejected(t *testing.T) {
	bad := validQuestion()
	bad.Choices = bad.Choices[:2]
	malformed := &stubGenerator{name: "remote", questions: []genx.Question{bad}}
	working := &stubGenerator{name: "fallback", questions: []genx.Question{validQuestion()}}

	chain := genx.NewChain(malformed, working)
	questions, err := chain.Generate(context.Background(), "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if working.calls != 1 {
		t.Fatal("invalid batch should fall through to the next tier")
	}
	if err := genx.ValidateAll(questions); err != nil {
		t.Fatalf("returned batch is invalid: %v", err)
	}
}

func TestChain_FirstSuccessStopsChain(t *testing.T) {
	first := &stubGenerator{name: "a", questions: []genx.Question{validQuestion()}}
	second := &stubGenerator{name: "b", questions: []genx.Question{validQuestion()}}

	chain := genx.NewChain(first, second)
	if _, err := chain.Generate(context.Background(), "text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.calls != 0 {
		t.Fatal("chain should stop at the first valid batch")
	}
}

func TestChain_AllTiersFailReturnsLastError(t *testing.T) {
	lastErr := errors.New("insufficient text")
	chain := genx.NewChain(
		&stubGenerator{name: "a", err: errors.New("down")},
		&stubGenerator{name: "b", err: lastErr},
	)
	_, err := chain.Generate(context.Background(), "text")
	if !errors.Is(err, lastErr) {
		t.Fatalf("expected last tier error, got %v", err)
	}
}

func TestValidate_RejectsMultipleCorrect(t *testing.T) {
	q := validQuestion()
	q.Choices[1].IsCorrect = true
	if err := q.Validate(); err == nil {
		t.Fatal("expected validation error for two correct choices")
	}
}

func TestValidate_RejectsWrongChoiceCount(t *testing.T) {
	q := validQuestion()
	q.Choices = append(q.Choices, genx.Choice{Text: "extra"})
	if err := q.Validate(); err == nil {
		t.Fatal("expected validation error for five choices")
	}
}
