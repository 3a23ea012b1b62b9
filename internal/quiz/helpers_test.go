package quiz_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/genquiz/internal/quiz"
	util "github.com/saulo-duarte/genquiz/internal/utils"
)

var baseTime = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

func newSession(topic string, minute int) *quiz.Session {
	util.SetLocation(time.UTC)
	return &quiz.Session{
		ID:    uuid.New(),
		Topic: topic,
		Count: 2,
		Model: "llama-3.1-8b-instant",
		Questions: []quiz.Question{
			{Text: "What does a chloroplast contain?", Options: []string{"Chlorophyll", "Keratin", "Myosin", "Collagen"}, CorrectIndex: 0},
			{Text: "Which gas is released?", Options: []string{"Nitrogen", "Carbon dioxide", "Oxygen", "Helium"}, CorrectIndex: 2},
		},
		Response:  "1. What does a chloroplast contain?\n...",
		CreatedAt: util.LocalDateTime{Time: baseTime.Add(time.Duration(minute) * time.Minute)},
	}
}

func assertSameSession(t *testing.T, want, got *quiz.Session) {
	t.Helper()
	require.NotNil(t, got)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at: want %v, got %v", want.CreatedAt, got.CreatedAt)

	w, g := *want, *got
	w.CreatedAt, g.CreatedAt = util.LocalDateTime{}, util.LocalDateTime{}
	assert.Equal(t, w, g)
}

func topics(sessions []*quiz.Session) []string {
	out := make([]string, len(sessions))
	for i, s := range sessions {
		out[i] = s.Topic
	}
	return out
}
