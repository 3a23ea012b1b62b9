package aiquiz

import "fmt"

const systemPrompt = "You are an expert exam question setter. Generate multiple-choice questions (MCQs) on the given topic."

func BuildUserPrompt(topic string, count int) string {
	return fmt.Sprintf(`Topic: %s
Number of Questions: %d

Instructions:
1. Each question must be clear and concise.
2. Provide 4 options (a, b, c, d).
3. Only one option should be correct.
4. After each question, include: Answer: <a|b|c|d>
5. Number questions like: 1., 2., 3., ...
`, topic, count)
}
