package quiz

import (
	"github.com/google/uuid"
	util "github.com/saulo-duarte/genquiz/internal/utils"
)

const OptionCount = 4

type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// Session is one generation run. It is written once and never updated.
type Session struct {
	ID        uuid.UUID          `json:"id"`
	Topic     string             `json:"topic"`
	Count     int                `json:"num"`
	Model     string             `json:"model,omitempty"`
	Questions []Question         `json:"questions"`
	Response  string             `json:"response"`
	CreatedAt util.LocalDateTime `json:"ts"`
}

func Letter(index int) string {
	if index < 0 || index >= OptionCount {
		return "?"
	}
	return string(rune('a' + index))
}

func (q Question) Valid() bool {
	return len(q.Options) == OptionCount && q.CorrectIndex >= 0 && q.CorrectIndex < OptionCount
}
