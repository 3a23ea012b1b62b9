package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/genquiz/internal/config"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		config.Error(w, http.StatusBadRequest, "invalid quiz id")
	case errors.Is(err, ErrSessionNotFound):
		config.Error(w, http.StatusNotFound, "quiz not found")
	case errors.Is(err, ErrInvalidAnswer):
		config.Error(w, http.StatusBadRequest, err.Error())
	default:
		config.Error(w, http.StatusInternalServerError, "could not access quiz history")
	}
}

func (h *Handler) ListQuizzes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	newestFirst := true
	if v := r.URL.Query().Get("newest_first"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			config.Error(w, http.StatusBadRequest, "invalid newest_first value")
			return
		}
		newestFirst = b
	}

	sessions, err := h.service.Search(r.Context(), r.URL.Query().Get("q"), newestFirst)
	if err != nil {
		log.WithError(err).Error("Error listing quiz history")
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, sessions)
}

func (h *Handler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "history cleared",
	})
}

func (h *Handler) ExportQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+ExportFileName(session)+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(Transcript(session)))
}

func (h *Handler) CheckAnswers(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var sheet AnswerSheet
	if err := json.NewDecoder(r.Body).Decode(&sheet); err != nil {
		log.WithError(err).Warn("Invalid answer sheet body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Check(r.Context(), chi.URLParam(r, "id"), sheet)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}
