package aiquiz

import (
	"context"
	"errors"

	"github.com/saulo-duarte/genquiz/internal/config"
	"github.com/saulo-duarte/genquiz/internal/quiz"
)

type AIQuizContainer struct {
	Handler *Handler
	Service Service
}

func NewAIQuizContainer(ctx context.Context, s *config.Settings, history quiz.QuizService) *AIQuizContainer {
	log := config.WithContext(ctx)

	var (
		provider Provider
		err      error
	)
	switch s.LLMProvider {
	case config.ProviderGemini:
		provider, err = NewGeminiProvider(ctx, s.APIKey)
	default:
		provider, err = NewGroqProvider(s.APIKey, "")
	}
	if err != nil {
		provider = nil
		if errors.Is(err, ErrMissingCredential) {
			log.Warnf("No API key configured for %s, generation is disabled", s.LLMProvider)
		} else {
			log.WithError(err).Error("Failed to create LLM provider")
		}
	}

	service := NewService(provider, history, Options{
		Models:       s.Models,
		Temperature:  s.Temperature,
		Timeout:      s.LLMTimeout,
		MaxQuestions: s.MaxQuestions,
	})
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
		Service: service,
	}
}
