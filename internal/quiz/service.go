package quiz

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/genquiz/internal/config"
	"github.com/sirupsen/logrus"
)

var ErrInvalidID = errors.New("invalid id format")

type QuizService interface {
	Save(ctx context.Context, s *Session) error
	List(ctx context.Context, newestFirst bool) ([]*Session, error)
	Search(ctx context.Context, query string, newestFirst bool) ([]*Session, error)
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Check(ctx context.Context, id string, sheet AnswerSheet) (*CheckResult, error)
}

type quizService struct {
	repo QuizRepository
}

func NewService(repo QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func parseID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid quiz session ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *quizService) Save(ctx context.Context, session *Session) error {
	log := config.WithContext(ctx)

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}

	if err := s.repo.Append(ctx, session); err != nil {
		log.WithError(err).Error("Failed to save quiz session")
		return err
	}

	log.WithFields(logrus.Fields{
		"session_id": session.ID,
		"topic":      session.Topic,
	}).Info("Quiz session saved")
	return nil
}

func (s *quizService) List(ctx context.Context, newestFirst bool) ([]*Session, error) {
	return s.Search(ctx, "", newestFirst)
}

func (s *quizService) Search(ctx context.Context, query string, newestFirst bool) ([]*Session, error) {
	log := config.WithContext(ctx)

	sessions, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list quiz history")
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]*Session, 0, len(sessions))
	for _, session := range sessions {
		if query == "" ||
			strings.Contains(strings.ToLower(session.Topic), query) ||
			strings.Contains(strings.ToLower(session.Response), query) {
			out = append(out, session)
		}
	}

	if newestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out, nil
}

func (s *quizService) GetByID(ctx context.Context, id string) (*Session, error) {
	log := config.WithContext(ctx)

	sessionID, err := parseID(log, id)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			log.WithField("session_id", id).Warn("Quiz session not found")
			return nil, err
		}
		log.WithError(err).Error("Failed to load quiz session")
		return nil, err
	}
	return session, nil
}

func (s *quizService) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	sessionID, err := parseID(log, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			log.WithField("session_id", id).Warn("Quiz session not found for deletion")
			return err
		}
		log.WithError(err).Error("Failed to delete quiz session")
		return err
	}

	log.WithField("session_id", id).Info("Quiz session deleted")
	return nil
}

func (s *quizService) Clear(ctx context.Context) error {
	log := config.WithContext(ctx)

	if err := s.repo.Clear(ctx); err != nil {
		log.WithError(err).Error("Failed to clear quiz history")
		return err
	}

	log.Info("Quiz history cleared")
	return nil
}

func (s *quizService) Check(ctx context.Context, id string, sheet AnswerSheet) (*CheckResult, error) {
	session, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return Check(session, sheet)
}
