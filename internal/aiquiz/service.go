package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/genquiz/internal/config"
	"github.com/saulo-duarte/genquiz/internal/quiz"
	util "github.com/saulo-duarte/genquiz/internal/utils"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnknownModel      = errors.New("unknown model")
	ErrMissingCredential = errors.New("missing API key")
	ErrProvider          = errors.New("LLM request failed")
	ErrParse             = errors.New("could not parse the generated questions")
	ErrHistory           = errors.New("could not save quiz to history")
)

type Options struct {
	Models       []string
	Temperature  float32
	Timeout      time.Duration
	MaxQuestions int
}

type Service interface {
	GenerateQuestions(ctx context.Context, req QuestionRequest) (*quiz.Session, error)
	Ready() bool
	Models() []string
	MaxQuestions() int
}

type service struct {
	provider Provider
	history  quiz.QuizService
	opts     Options
}

// NewService accepts a nil provider; every generation then fails with
// ErrMissingCredential.
func NewService(provider Provider, history quiz.QuizService, opts Options) Service {
	if opts.MaxQuestions <= 0 {
		opts.MaxQuestions = 20
	}
	return &service{provider: provider, history: history, opts: opts}
}

func (s *service) Ready() bool {
	return s.provider != nil
}

func (s *service) Models() []string {
	return s.opts.Models
}

func (s *service) MaxQuestions() int {
	return s.opts.MaxQuestions
}

func (s *service) resolveModel(model string) (string, error) {
	if model == "" {
		if len(s.opts.Models) == 0 {
			return "", fmt.Errorf("%w: no models configured", ErrUnknownModel)
		}
		return s.opts.Models[0], nil
	}
	for _, m := range s.opts.Models {
		if m == model {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownModel, model)
}

// GenerateQuestions returns the session together with ErrHistory when the
// questions were generated but could not be stored.
func (s *service) GenerateQuestions(ctx context.Context, req QuestionRequest) (*quiz.Session, error) {
	log := config.WithContext(ctx)

	if err := req.Validate(s.opts.MaxQuestions); err != nil {
		return nil, err
	}
	if s.provider == nil {
		log.Warn("Generation requested but no LLM API key is configured")
		return nil, ErrMissingCredential
	}

	model, err := s.resolveModel(req.Model)
	if err != nil {
		return nil, err
	}

	log = log.WithFields(logrus.Fields{
		"topic": req.Topic,
		"count": req.Count,
		"model": model,
	})

	callCtx := ctx
	if s.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.opts.Timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := s.provider.Complete(callCtx, Completion{
		Model:       model,
		System:      systemPrompt,
		User:        BuildUserPrompt(req.Topic, req.Count),
		Temperature: s.opts.Temperature,
	})
	if err != nil {
		log.WithError(err).Error("Failed to generate questions")
		if errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrProvider) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrProvider, err)
	}
	log.WithField("elapsed", time.Since(started)).Debug("Completion received")

	questions, err := ParseQuestions(raw)
	if err != nil {
		log.WithError(err).Warnf("Failed to parse completion:\n%s", raw)
		return nil, err
	}
	if len(questions) < req.Count {
		log.Warnf("Model returned %d of %d requested questions", len(questions), req.Count)
		return nil, fmt.Errorf("%w: expected %d questions, got %d", ErrParse, req.Count, len(questions))
	}
	questions = questions[:req.Count]

	session := &quiz.Session{
		ID:        uuid.New(),
		Topic:     req.Topic,
		Count:     req.Count,
		Model:     model,
		Questions: questions,
		Response:  raw,
		CreatedAt: util.Now(),
	}

	if !req.SkipHistory {
		if err := s.history.Save(ctx, session); err != nil {
			return session, fmt.Errorf("%w: %v", ErrHistory, err)
		}
	}

	log.WithField("session_id", session.ID).Infof("Generated %d questions", len(questions))
	return session, nil
}
