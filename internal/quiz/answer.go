package quiz

import (
	"errors"
	"fmt"
)

var ErrInvalidAnswer = errors.New("invalid answer")

type TileState string

const (
	TileCorrect TileState = "correct"
	TileWrong   TileState = "wrong"
	TileNeutral TileState = "neutral"
)

// AnswerSheet is the client's current selection state. It only lives for
// one check request.
type AnswerSheet struct {
	Selected map[int]int `json:"selected"`
	Revealed []int       `json:"revealed"`
}

type QuestionResult struct {
	Index    int         `json:"index"`
	Tiles    []TileState `json:"tiles"`
	Answered bool        `json:"answered"`
	Correct  bool        `json:"correct"`
	Revealed bool        `json:"revealed"`
	Answer   string      `json:"answer,omitempty"`
}

type CheckResult struct {
	Questions    []QuestionResult `json:"questions"`
	Answered     int              `json:"answered"`
	CorrectCount int              `json:"correct_count"`
	Total        int              `json:"total"`
}

// Tiles colours the options of q for an optional selection.
func Tiles(q Question, selected *int, revealed bool) []TileState {
	tiles := make([]TileState, len(q.Options))
	for i := range tiles {
		tiles[i] = TileNeutral

		switch {
		case revealed && i == q.CorrectIndex:
			tiles[i] = TileCorrect
		case revealed:
			if selected != nil && *selected == i {
				tiles[i] = TileWrong
			}
		case selected != nil && *selected == i:
			if i == q.CorrectIndex {
				tiles[i] = TileCorrect
			} else {
				tiles[i] = TileWrong
			}
		}
	}
	return tiles
}

func Check(s *Session, sheet AnswerSheet) (*CheckResult, error) {
	revealed := make(map[int]bool, len(sheet.Revealed))
	for _, idx := range sheet.Revealed {
		if idx < 0 || idx >= len(s.Questions) {
			return nil, fmt.Errorf("%w: question %d out of range", ErrInvalidAnswer, idx)
		}
		revealed[idx] = true
	}
	for qIdx, opt := range sheet.Selected {
		if qIdx < 0 || qIdx >= len(s.Questions) {
			return nil, fmt.Errorf("%w: question %d out of range", ErrInvalidAnswer, qIdx)
		}
		if opt < 0 || opt >= len(s.Questions[qIdx].Options) {
			return nil, fmt.Errorf("%w: option %d out of range for question %d", ErrInvalidAnswer, opt, qIdx)
		}
	}

	result := &CheckResult{
		Questions: make([]QuestionResult, len(s.Questions)),
		Total:     len(s.Questions),
	}

	for i, q := range s.Questions {
		var selected *int
		if opt, ok := sheet.Selected[i]; ok {
			selected = &opt
		}

		qr := QuestionResult{
			Index:    i,
			Tiles:    Tiles(q, selected, revealed[i]),
			Answered: selected != nil,
			Correct:  selected != nil && *selected == q.CorrectIndex,
			Revealed: revealed[i],
		}
		if qr.Revealed {
			qr.Answer = Letter(q.CorrectIndex)
		}

		if qr.Answered {
			result.Answered++
		}
		if qr.Correct {
			result.CorrectCount++
		}
		result.Questions[i] = qr
	}

	return result, nil
}
