package quiz_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/saulo-duarte/genquiz/internal/quiz"
)

func TestTranscript(t *testing.T) {
	s := newSession("Photosynthesis", 0)

	text := quiz.Transcript(s)

	assert.True(t, strings.HasPrefix(text, "Topic: Photosynthesis\nGenerated: 2025-05-01 10:00\n"))
	assert.Contains(t, text, "Model: llama-3.1-8b-instant\n")
	assert.Contains(t, text, "\nQ1. What does a chloroplast contain?\n   a) Chlorophyll\n   b) Keratin\n   c) Myosin\n   d) Collagen\nAnswer: a)\n")
	assert.Contains(t, text, "\nQ2. Which gas is released?\n")
	assert.Contains(t, text, "Answer: c)\n")
}

func TestExportFileName(t *testing.T) {
	id := uuid.MustParse("0123abcd-0000-4000-8000-000000000000")

	tests := []struct {
		topic string
		want  string
	}{
		{"Binary Search Trees", "mcqs_Binary_Search_Trees_0123abcd.txt"},
		{"  spaced   out ", "mcqs_spaced_out_0123abcd.txt"},
		{"TCP/IP", "mcqs_TCP-IP_0123abcd.txt"},
		{"", "mcqs_quiz_0123abcd.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, quiz.ExportFileName(&quiz.Session{ID: id, Topic: tt.topic}))
		})
	}
}
