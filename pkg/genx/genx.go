// Package genx turns extracted document text into multiple-choice questions.
// Generators form an ordered chain: remote model backends first, with a
// deterministic heuristic registered last so the chain can always produce
// something from usable text.
package genx

import (
	"context"

	"github.com/quizforge/quizforge/pkg/logx"
)

// Generator produces a batch of validated questions from document text.
type Generator interface {
	Name() string
	Generate(ctx context.Context, content string) ([]Question, error)
}

// Chain tries generators in order and returns the first valid batch.
type Chain struct {
	generators []Generator
}

// NewChain builds a chain over the given generators, tried in order.
func NewChain(generators ...Generator) *Chain {
	return &Chain{generators: generators}
}

// Generate runs the chain. A generator failure or invalid batch is logged
// and the next generator is tried; the last generator's error is returned
// when every one fails.
func (c *Chain) Generate(ctx context.Context, content string) ([]Question, error) {
	var lastErr error
	for _, g := range c.generators {
		questions, err := g.Generate(ctx, content)
		if err == nil {
			err = ValidateAll(questions)
		}
		if err != nil {
			lastErr = err
			logx.WithError(err).WithField("generator", g.Name()).Warn("question generator failed, trying next")
			continue
		}
		logx.WithFields(logx.Fields{"generator": g.Name(), "questions": len(questions)}).Info("questions generated")
		return questions, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, genErrors.New(ErrAllGeneratorsFailed)
}
