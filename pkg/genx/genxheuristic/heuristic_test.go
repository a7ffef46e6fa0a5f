package genxheuristic_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/pkg/genx"
	"github.com/quizforge/quizforge/pkg/genx/genxheuristic"
)

func newDeterministic(count int) *genxheuristic.Generator {
	return genxheuristic.New(count, genxheuristic.WithRand(rand.New(rand.NewSource(1))))
}

func correctChoice(t *testing.T, q genx.Question) string {
	t.Helper()
	var correct []string
	for _, c := range q.Choices {
		if c.IsCorrect {
			correct = append(correct, c.Text)
		}
	}
	if len(correct) != 1 {
		t.Fatalf("expected exactly one correct choice, got %d", len(correct))
	}
	return correct[0]
}

func TestGenerate_QuestionShape(t *testing.T) {
	g := newDeterministic(3)
	text := strings.Repeat("photosynthesis converts sunlight into energy inside chloroplasts ", 5)

	questions, err := g.Generate(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if q.Text != "Which term appears in the uploaded document?" {
			t.Fatalf("unexpected question text %q", q.Text)
		}
		if len(q.Choices) != 4 {
			t.Fatalf("expected 4 choices, got %d", len(q.Choices))
		}
		answer := correctChoice(t, q)
		if !strings.Contains(strings.ToLower(text), answer) {
			t.Fatalf("correct answer %q not present in document", answer)
		}
		if err := q.Validate(); err != nil {
			t.Fatalf("generated question failed validation: %v", err)
		}
	}
}

func TestGenerate_FrequencyRankWithLexicalTieBreak(t *testing.T) {
	g := newDeterministic(3)
	// zeta and alpha both appear twice; gamma three times.
	text := "gamma zeta alpha gamma zeta alpha gamma"

	questions, err := g.Generate(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}

	answers := make([]string, 0, 3)
	for _, q := range questions {
		answers = append(answers, correctChoice(t, q))
	}
	want := []string{"gamma", "alpha", "zeta"}
	for i, w := range want {
		if answers[i] != w {
			t.Fatalf("expected answer order %v, got %v", want, answers)
		}
	}
}

func TestGenerate_StopWordsExcluded(t *testing.T) {
	g := newDeterministic(3)
	text := "the the the and and which molecule molecule"

	questions, err := g.Generate(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range questions {
		if ans := correctChoice(t, q); ans == "the" || ans == "and" || ans == "which" {
			t.Fatalf("stop word %q used as answer", ans)
		}
	}
}

func TestGenerate_ShortTokenRelaxation(t *testing.T) {
	g := newDeterministic(3)

	// Only three-letter tokens: first filter finds nothing, relaxed pass does.
	questions, err := g.Generate(context.Background(), "fox fox owl cat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(questions) == 0 {
		t.Fatal("expected questions from relaxed token filter")
	}
	if ans := correctChoice(t, questions[0]); ans != "fox" {
		t.Fatalf("expected most frequent short token, got %q", ans)
	}
}

func TestGenerate_DigitsOnlyIsInsufficient(t *testing.T) {
	g := newDeterministic(3)
	if _, err := g.Generate(context.Background(), "1234 5678 90"); err == nil {
		t.Fatal("expected insufficient-content error for digits-only text")
	}
}

func TestGenerate_EmptyTextIsInsufficient(t *testing.T) {
	g := newDeterministic(3)
	if _, err := g.Generate(context.Background(), "   \n\t "); err == nil {
		t.Fatal("expected insufficient-content error for empty text")
	}
}

func TestGenerate_DistractorsAvoidDocumentTerms(t *testing.T) {
	g := newDeterministic(3)
	// chemistry is in the distractor pool and in the document.
	text := "chemistry chemistry thermodynamics reaction reaction reaction"

	questions, err := g.Generate(context.Background(), text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range questions {
		answer := correctChoice(t, q)
		for _, c := range q.Choices {
			if c.IsCorrect {
				continue
			}
			if c.Text == answer {
				t.Fatal("distractor duplicates the answer")
			}
			if c.Text == "chemistry" || c.Text == "thermodynamics" {
				t.Fatalf("distractor %q appears in the document", c.Text)
			}
		}
	}
}
