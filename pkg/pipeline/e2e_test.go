package pipeline_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/quizforge/quizforge/pkg/genx"
	"github.com/quizforge/quizforge/pkg/genx/genxheuristic"
	"github.com/quizforge/quizforge/pkg/pipeline"
)

type downRemoteGenerator struct{ calls int }

func (d *downRemoteGenerator) Name() string { return "remote" }

func (d *downRemoteGenerator) Generate(context.Context, string) ([]genx.Question, error) {
	d.calls++
	return nil, errors.New("backend unreachable")
}

type capturingNotifier struct {
	recordingNotifier
	questions []genx.Question
}

func (c *capturingNotifier) SendResult(ctx context.Context, documentID string, questions []genx.Question) error {
	c.questions = questions
	return c.recordingNotifier.SendResult(ctx, documentID, questions)
}

// Full run with every remote tier down: extraction yields text, the chain
// falls through to the heuristic, and the callback carries its questions.
func TestProcess_HeuristicCarriesTheJob(t *testing.T) {
	tempDir := t.TempDir()
	text := "mitochondria produce energy. mitochondria and ribosomes build proteins. energy flows through membranes. energy energy."

	storage := &fakeStorage{files: map[string][]byte{"docs/bio.pdf": []byte("%PDF")}}
	remote := &downRemoteGenerator{}
	chain := genx.NewChain(remote, genxheuristic.New(3, genxheuristic.WithRand(rand.New(rand.NewSource(7)))))
	notifier := &capturingNotifier{}

	svc := pipeline.New(storage, &fakeExtractor{text: text}, &fakeRecognizer{}, chain, notifier, tempDir)
	svc.Process(context.Background(), "doc-bio", "docs/bio.pdf")

	if remote.calls != 1 {
		t.Fatalf("remote tier should be tried once, got %d", remote.calls)
	}
	if notifier.results != 1 {
		t.Fatalf("expected one result callback, got %d", notifier.results)
	}
	if len(notifier.questions) != 3 {
		t.Fatalf("expected 3 heuristic questions, got %d", len(notifier.questions))
	}

	for _, q := range notifier.questions {
		if len(q.Choices) != 4 {
			t.Fatalf("expected 4 choices, got %d", len(q.Choices))
		}
		var answer string
		for _, c := range q.Choices {
			if c.IsCorrect {
				answer = c.Text
			}
		}
		if !strings.Contains(text, answer) {
			t.Fatalf("answer %q does not appear in the source text", answer)
		}
	}
	tempDirIsEmpty(t, tempDir)
}
