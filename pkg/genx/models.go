package genx

// Choice is one answer option of a multiple-choice question.
type Choice struct {
	Text      string `json:"choice_text"`
	IsCorrect bool   `json:"is_correct"`
}

// Question is a multiple-choice question with exactly four options, exactly
// one of them correct.
type Question struct {
	Text    string   `json:"question_text"`
	Choices []Choice `json:"choices"`
}

// Validate enforces the question shape.
func (q Question) Validate() error {
	if q.Text == "" {
		return genErrors.New(ErrInvalidQuestion).WithDetail("reason", "empty question text")
	}
	if len(q.Choices) != 4 {
		return genErrors.New(ErrInvalidQuestion).
			WithDetail("reason", "question must have exactly 4 choices").
			WithDetail("choices", len(q.Choices))
	}
	correct := 0
	for _, c := range q.Choices {
		if c.Text == "" {
			return genErrors.New(ErrInvalidQuestion).WithDetail("reason", "empty choice text")
		}
		if c.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return genErrors.New(ErrInvalidQuestion).
			WithDetail("reason", "question must have exactly one correct choice").
			WithDetail("correct", correct)
	}
	return nil
}

// ValidateAll validates every question in the batch.
func ValidateAll(questions []Question) error {
	if len(questions) == 0 {
		return genErrors.New(ErrNoQuestions)
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}
