package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/saulo-duarte/genquiz/internal/aiquiz"
	"github.com/saulo-duarte/genquiz/internal/config"
	"github.com/saulo-duarte/genquiz/internal/middlewares"
	"github.com/saulo-duarte/genquiz/internal/quiz"
	"github.com/saulo-duarte/genquiz/internal/web"
)

type RouterConfig struct {
	AIQuizHandler  *aiquiz.Handler
	AIQuizService  aiquiz.Service
	QuizHandler    *quiz.Handler
	LLMProvider    string
	HistoryBackend string
	// RequestTimeout bounds every request; it should exceed the LLM timeout.
	RequestTimeout time.Duration
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	r.Use(middlewares.CorsMiddleware)

	r.Get("/healthz", health(cfg))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/openapi.json")))

	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

	r.Handle("/*", web.Handler())
	return r
}

func health(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]interface{}{
			"status":          "ok",
			"llm_ready":       cfg.AIQuizService.Ready(),
			"provider":        cfg.LLMProvider,
			"models":          cfg.AIQuizService.Models(),
			"max_questions":   cfg.AIQuizService.MaxQuestions(),
			"history_backend": cfg.HistoryBackend,
		})
	}
}
