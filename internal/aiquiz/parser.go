package aiquiz

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/saulo-duarte/genquiz/internal/quiz"
)

var (
	questionStartRe = regexp.MustCompile(`(?m)^[ \t]*(?:#{1,6}[ \t]*)?(?:\*\*)?(?:Q(?:uestion)?[ \t]*)?(\d+)[.):](?:\*\*)?(?:[ \t]+|$)`)
	optionRe        = regexp.MustCompile(`^\(?([a-dA-D])[.)]\)?[ \t]+(.+)$`)
	answerRe        = regexp.MustCompile(`(?i)\banswer\s*[:\-]\s*\(?([a-d])\b`)
)

// ParseQuestions turns the model's numbered MCQ text into questions. Every
// question block needs options a to d and an answer letter; one bad block
// fails the whole response.
func ParseQuestions(raw string) ([]quiz.Question, error) {
	text := stripFences(strings.ReplaceAll(raw, "\r\n", "\n"))

	starts := questionStartRe.FindAllStringIndex(text, -1)
	if len(starts) == 0 {
		return nil, fmt.Errorf("%w: no numbered questions found", ErrParse)
	}

	questions := make([]quiz.Question, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}

		q, err := parseBlock(text[loc[1]:end])
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrParse, i+1, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func parseBlock(block string) (quiz.Question, error) {
	var (
		textParts []string
		options   [quiz.OptionCount]string
		seen      [quiz.OptionCount]bool
		answer    = -1
		inOptions bool
	)

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if line == "" {
			continue
		}
		bare := strings.TrimSpace(strings.TrimLeft(line, "-*•"))

		if m := optionRe.FindStringSubmatch(bare); m != nil {
			idx := int(strings.ToLower(m[1])[0] - 'a')
			if seen[idx] {
				return quiz.Question{}, fmt.Errorf("duplicate option %s", quiz.Letter(idx))
			}
			seen[idx] = true
			options[idx] = strings.TrimSpace(m[2])
			inOptions = true
			continue
		}

		if m := answerRe.FindStringSubmatch(line); m != nil {
			if answer < 0 {
				answer = int(strings.ToLower(m[1])[0] - 'a')
			}
			continue
		}

		if !inOptions && answer < 0 {
			textParts = append(textParts, line)
		}
	}

	text := strings.TrimSpace(strings.Join(textParts, " "))
	if text == "" {
		return quiz.Question{}, fmt.Errorf("empty question text")
	}
	for i, ok := range seen {
		if !ok {
			return quiz.Question{}, fmt.Errorf("missing option %s", quiz.Letter(i))
		}
	}
	if answer < 0 {
		return quiz.Question{}, fmt.Errorf("missing answer")
	}

	return quiz.Question{
		Text:         text,
		Options:      options[:],
		CorrectIndex: answer,
	}, nil
}

func stripFences(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "```") {
			continue
		}
		kept = append(kept, l)
	}
	return strings.Join(kept, "\n")
}
