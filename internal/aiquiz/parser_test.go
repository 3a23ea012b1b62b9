package aiquiz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/genquiz/internal/aiquiz"
	"github.com/saulo-duarte/genquiz/internal/quiz"
)

const photosynthesisResponse = `Here are 3 multiple-choice questions on Photosynthesis:

1. Which pigment absorbs light during photosynthesis?
a) Chlorophyll
b) Hemoglobin
c) Melanin
d) Keratin
Answer: a

2. Where do the light-dependent reactions take place?
a) Stroma
b) Thylakoid membrane
c) Cytoplasm
d) Nucleus
Answer: b

3. Which gas is released as a by-product?
a) Carbon dioxide
b) Nitrogen
c) Oxygen
d) Methane
Answer: c
`

func TestParseQuestions(t *testing.T) {
	questions, err := aiquiz.ParseQuestions(photosynthesisResponse)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	assert.Equal(t, quiz.Question{
		Text:         "Which pigment absorbs light during photosynthesis?",
		Options:      []string{"Chlorophyll", "Hemoglobin", "Melanin", "Keratin"},
		CorrectIndex: 0,
	}, questions[0])
	assert.Equal(t, 1, questions[1].CorrectIndex)
	assert.Equal(t, 2, questions[2].CorrectIndex)

	for _, q := range questions {
		assert.True(t, q.Valid())
	}
}

func TestParseQuestionsFormattingDrift(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []quiz.Question
	}{
		{
			name: "MarkdownBoldAndFences",
			raw: "```\n**1. What is 2 + 2?**\n- **A)** 3\n- **B)** 4\n- **C)** 5\n- **D)** 22\n**Answer:** B\n```",
			want: []quiz.Question{
				{Text: "What is 2 + 2?", Options: []string{"3", "4", "5", "22"}, CorrectIndex: 1},
			},
		},
		{
			name: "QuestionPrefixAndParenOptions",
			raw:  "Q1. Capital of France?\n(a) Berlin\n(b) Madrid\n(c) Paris\n(d) Rome\nCorrect answer: (c) Paris\n\nQ2) Largest planet?\na. Earth\nb. Jupiter\nc. Mars\nd. Venus\nanswer - b",
			want: []quiz.Question{
				{Text: "Capital of France?", Options: []string{"Berlin", "Madrid", "Paris", "Rome"}, CorrectIndex: 2},
				{Text: "Largest planet?", Options: []string{"Earth", "Jupiter", "Mars", "Venus"}, CorrectIndex: 1},
			},
		},
		{
			name: "MultiLineQuestionAndExplanation",
			raw:  "1. Consider the code below.\nWhat does len(\"go\") return?\na) 1\nb) 2\nc) 3\nd) 0\nAnswer: b\nExplanation: the string has two bytes.\r\n",
			want: []quiz.Question{
				{Text: "Consider the code below. What does len(\"go\") return?", Options: []string{"1", "2", "3", "0"}, CorrectIndex: 1},
			},
		},
		{
			name: "NumberOnItsOwnLine",
			raw:  "1.\nWhat is 2 + 2?\na) 3\nb) 4\nc) 5\nd) 22\nAnswer: b\n\n2)\nWhat is 3 * 3?\na) 6\nb) 33\nc) 9\nd) 0\nAnswer: c",
			want: []quiz.Question{
				{Text: "What is 2 + 2?", Options: []string{"3", "4", "5", "22"}, CorrectIndex: 1},
				{Text: "What is 3 * 3?", Options: []string{"6", "33", "9", "0"}, CorrectIndex: 2},
			},
		},
		{
			name: "OptionsOutOfOrder",
			raw:  "1. Pick d\nd) four\nb) two\na) one\nc) three\nAnswer: d",
			want: []quiz.Question{
				{Text: "Pick d", Options: []string{"one", "two", "three", "four"}, CorrectIndex: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := aiquiz.ParseQuestions(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuestionsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"Empty", ""},
		{"NoNumberedQuestions", "Sorry, I cannot help with that."},
		{"MissingOptionMarkers", "1. What is 2 + 2?\n3\n4\n5\n22\nAnswer: b"},
		{"MissingOneOption", "1. What is 2 + 2?\na) 3\nb) 4\nc) 5\nAnswer: b"},
		{"MissingAnswer", "1. What is 2 + 2?\na) 3\nb) 4\nc) 5\nd) 22"},
		{"DuplicateOption", "1. What is 2 + 2?\na) 3\nb) 4\nb) 5\nc) 6\nd) 22\nAnswer: b"},
		{"AnswerOutOfRange", "1. What is 2 + 2?\na) 3\nb) 4\nc) 5\nd) 22\nAnswer: e"},
		{"OneBadBlockFailsAll", photosynthesisResponse + "\n4. Broken question\na) only one\nAnswer: a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := aiquiz.ParseQuestions(tt.raw)
			assert.ErrorIs(t, err, aiquiz.ErrParse)
			assert.Nil(t, got)
		})
	}
}
