package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/saulo-duarte/genquiz/internal/aiquiz"
	"github.com/saulo-duarte/genquiz/internal/config"
	"github.com/saulo-duarte/genquiz/internal/quiz"
	"github.com/saulo-duarte/genquiz/internal/router"
	util "github.com/saulo-duarte/genquiz/internal/utils"
)

type Container struct {
	Settings        *config.Settings
	AIQuizContainer *aiquiz.AIQuizContainer
	QuizContainer   *quiz.QuizContainer
	Router          http.Handler
}

func New(ctx context.Context) (*Container, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}
	return NewWithSettings(ctx, settings)
}

func NewWithSettings(ctx context.Context, settings *config.Settings) (*Container, error) {
	config.Init(settings)
	util.SetLocation(settings.Location())

	repo, err := newRepository(ctx, settings)
	if err != nil {
		return nil, err
	}

	quizContainer := quiz.NewQuizContainer(repo)
	aiQuizContainer := aiquiz.NewAIQuizContainer(ctx, settings, quizContainer.Service)

	r := router.New(router.RouterConfig{
		AIQuizHandler:  aiQuizContainer.Handler,
		AIQuizService:  aiQuizContainer.Service,
		QuizHandler:    quizContainer.Handler,
		LLMProvider:    settings.LLMProvider,
		HistoryBackend: settings.HistoryBackend,
		RequestTimeout: settings.LLMTimeout + settings.LLMTimeout/2,
	})

	config.WithContext(ctx).WithField("history_backend", settings.HistoryBackend).Info("Container initialized")

	return &Container{
		Settings:        settings,
		AIQuizContainer: aiQuizContainer,
		QuizContainer:   quizContainer,
		Router:          r,
	}, nil
}

func newRepository(ctx context.Context, s *config.Settings) (quiz.QuizRepository, error) {
	switch s.HistoryBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     s.RedisAddr,
			Password: s.RedisPassword,
			DB:       s.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", s.RedisAddr, err)
		}
		return quiz.NewRedisRepository(client), nil

	case config.BackendPostgres:
		if err := config.Connect(ctx, s.DatabaseDSN); err != nil {
			return nil, err
		}
		return quiz.NewGormRepository(config.DB)

	default:
		return quiz.NewFileRepository(s.HistoryFile), nil
	}
}
