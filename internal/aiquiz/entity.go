package aiquiz

import (
	"fmt"
	"strings"

	"github.com/saulo-duarte/genquiz/internal/quiz"
)

type QuestionRequest struct {
	Topic       string `json:"topic"`
	Count       int    `json:"count"`
	Model       string `json:"model,omitempty"`
	SkipHistory bool   `json:"skip_history,omitempty"`
}

// Validate trims the topic in place and checks the count against maxCount.
func (r *QuestionRequest) Validate(maxCount int) error {
	r.Topic = strings.TrimSpace(r.Topic)
	r.Model = strings.TrimSpace(r.Model)

	if r.Topic == "" {
		return fmt.Errorf("%w: enter a topic", ErrInvalidRequest)
	}
	if r.Count < 1 || r.Count > maxCount {
		return fmt.Errorf("%w: number of questions must be between 1 and %d", ErrInvalidRequest, maxCount)
	}
	return nil
}

// CheckRequest grades questions the client already holds, for quizzes that
// never reached history.
type CheckRequest struct {
	Questions []quiz.Question  `json:"questions"`
	Sheet     quiz.AnswerSheet `json:"sheet"`
}

func (r *CheckRequest) Validate() error {
	if len(r.Questions) == 0 {
		return fmt.Errorf("%w: no questions to check", ErrInvalidRequest)
	}
	for i, q := range r.Questions {
		if !q.Valid() {
			return fmt.Errorf("%w: question %d is malformed", ErrInvalidRequest, i+1)
		}
	}
	return nil
}

type Completion struct {
	Model       string
	System      string
	User        string
	Temperature float32
}
