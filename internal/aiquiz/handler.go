package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/genquiz/internal/config"
	"github.com/saulo-duarte/genquiz/internal/quiz"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.service.GenerateQuestions(r.Context(), req)
	switch {
	case err == nil:
		config.JSON(w, http.StatusCreated, session)
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrUnknownModel):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMissingCredential):
		config.Error(w, http.StatusServiceUnavailable, "service not ready: missing API key")
	case errors.Is(err, ErrParse):
		config.Error(w, http.StatusUnprocessableEntity, "could not parse the generated questions, try again")
	case errors.Is(err, ErrProvider):
		config.Error(w, http.StatusBadGateway, "question generation failed, try again")
	case errors.Is(err, ErrHistory):
		log.WithError(err).Error("Generated quiz was not saved")
		config.JSON(w, http.StatusCreated, map[string]interface{}{
			"session": session,
			"warning": "quiz generated but could not be saved to history",
		})
	default:
		log.WithError(err).Error("Failed to generate questions")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) CheckAnswers(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		config.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := quiz.Check(&quiz.Session{Questions: req.Questions}, req.Sheet)
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidAnswer) {
			config.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Failed to check answers")
		config.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	config.JSON(w, http.StatusOK, result)
}
