package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListQuizzes)
	r.Delete("/", h.ClearHistory)
	r.Get("/{id}", h.GetQuiz)
	r.Delete("/{id}", h.DeleteQuiz)
	r.Get("/{id}/export", h.ExportQuiz)
	r.Post("/{id}/check", h.CheckAnswers)
	return r
}
