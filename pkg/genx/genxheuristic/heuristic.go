// Package genxheuristic is the deterministic last-resort question generator.
// It needs no network or model: it ranks document terms by frequency and
// builds recognition questions around the top ones, padding the answer with
// off-topic distractors.
package genxheuristic

import (
	"context"
	"math/rand"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/quizforge/quizforge/pkg/genx"
)

var wordPattern = regexp.MustCompile(`[a-z]+(?:[-’'][a-z]+)*`)

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "that": {}, "with": {}, "this": {}, "from": {},
	"into": {}, "your": {}, "have": {}, "will": {}, "must": {}, "should": {},
	"are": {}, "was": {}, "were": {}, "is": {}, "of": {}, "to": {}, "in": {},
	"on": {}, "by": {}, "it": {}, "as": {}, "be": {}, "or": {}, "an": {}, "a": {},
	"at": {}, "we": {}, "you": {}, "they": {}, "their": {}, "our": {}, "not": {},
	"no": {}, "but": {}, "if": {}, "than": {}, "then": {}, "there": {}, "here": {},
	"which": {},
}

// distractorPool supplies wrong answers unlikely to appear in most documents.
var distractorPool = []string{
	"chemistry", "economics", "philosophy", "astronomy", "botany", "geography",
	"algebra", "poetry", "architecture", "geology", "linguistics", "meteorology",
	"zoology", "calculus", "thermodynamics", "cryptography", "microbiology",
	"astrophysics", "neurology", "ecology",
}

const questionText = "Which term appears in the uploaded document?"

// Generator builds frequency-ranked term questions.
type Generator struct {
	questionCount int
	rng           *rand.Rand
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand injects the random source, for reproducible output.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) { g.rng = rng }
}

// New builds a Generator producing at most questionCount questions.
func New(questionCount int, opts ...Option) *Generator {
	g := &Generator{
		questionCount: questionCount,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) Name() string { return "heuristic" }

// Generate tokenizes the text, ranks candidate terms by frequency with a
// lexical tie-break, and emits one four-choice question per top term. Text
// with no usable tokens is an error.
func (g *Generator) Generate(_ context.Context, content string) ([]genx.Question, error) {
	cleaned := strings.ToLower(strings.Join(strings.Fields(content), " "))
	tokens := wordPattern.FindAllString(cleaned, -1)

	words := filterTokens(tokens, 4, true)
	if len(words) == 0 {
		words = filterTokens(tokens, 3, true)
	}
	if len(words) == 0 {
		words = filterTokens(tokens, 3, false)
	}

	freq := make(map[string]int, len(words))
	present := make(map[string]struct{}, len(words))
	for _, w := range words {
		freq[w]++
		present[w] = struct{}{}
	}

	terms := make([]string, 0, len(freq))
	for w := range freq {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > g.questionCount {
		terms = terms[:g.questionCount]
	}

	questions := make([]genx.Question, 0, len(terms))
	for _, term := range terms {
		questions = append(questions, g.buildQuestion(term, present))
	}
	if len(questions) == 0 {
		return nil, heuristicErrors.New(ErrInsufficientContent)
	}
	return questions, nil
}

func filterTokens(tokens []string, minLen int, excludeStop bool) []string {
	var out []string
	for _, t := range tokens {
		if len(t) < minLen {
			continue
		}
		if excludeStop {
			if _, stop := stopWords[t]; stop {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// buildQuestion pairs term with three distractors. Pool terms that appear in
// the document are avoided, but reused when nothing else is left.
func (g *Generator) buildQuestion(term string, present map[string]struct{}) genx.Question {
	var pool []string
	for _, d := range distractorPool {
		if d == term {
			continue
		}
		if _, ok := present[d]; ok {
			continue
		}
		pool = append(pool, d)
	}
	if len(pool) < 3 {
		extra := make([]string, 0, len(distractorPool))
		for _, d := range distractorPool {
			if d != term {
				extra = append(extra, d)
			}
		}
		g.rng.Shuffle(len(extra), func(i, j int) { extra[i], extra[j] = extra[j], extra[i] })
		for _, d := range extra {
			if len(pool) >= 3 {
				break
			}
			if !contains(pool, d) {
				pool = append(pool, d)
			}
		}
	}
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	texts := append([]string{term}, pool[:3]...)
	g.rng.Shuffle(len(texts), func(i, j int) { texts[i], texts[j] = texts[j], texts[i] })

	choices := make([]genx.Choice, 0, len(texts))
	for _, t := range texts {
		choices = append(choices, genx.Choice{Text: t, IsCorrect: t == term})
	}
	return genx.Question{Text: questionText, Choices: choices}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
