package quiz

import (
	"fmt"
	"strings"
)

func Transcript(s *Session) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "Generated: %s\n", s.CreatedAt.Display())
	if s.Model != "" {
		fmt.Fprintf(&b, "Model: %s\n", s.Model)
	}
	fmt.Fprintf(&b, "Questions: %d\n", len(s.Questions))

	for i, q := range s.Questions {
		fmt.Fprintf(&b, "\nQ%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(&b, "   %s) %s\n", Letter(j), opt)
		}
		fmt.Fprintf(&b, "Answer: %s)\n", Letter(q.CorrectIndex))
	}

	return b.String()
}

func ExportFileName(s *Session) string {
	topic := strings.Join(strings.Fields(s.Topic), "_")
	if topic == "" {
		topic = "quiz"
	}
	topic = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return '-'
		}
		return r
	}, topic)

	return fmt.Sprintf("mcqs_%s_%s.txt", topic, s.ID.String()[:8])
}
