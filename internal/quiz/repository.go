package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("quiz session not found")
	ErrCorruptHistory  = errors.New("history file is corrupt")
)

type QuizRepository interface {
	Append(ctx context.Context, s *Session) error
	List(ctx context.Context) ([]*Session, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
}

// fileRepository keeps every session in a single JSON array. Access is
// serialised inside the process only; two processes sharing the file can
// still lose writes.
type fileRepository struct {
	path string
	mu   sync.Mutex
}

func NewFileRepository(path string) QuizRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) load() ([]*Session, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []*Session{}, nil
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", r.path, err)
	}
	if len(data) == 0 {
		return []*Session{}, nil
	}

	var sessions []*Session
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptHistory, err)
	}
	return sessions, nil
}

func (r *fileRepository) save(sessions []*Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".quiz_history-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close history: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace history file %s: %w", r.path, err)
	}
	return nil
}

func (r *fileRepository) Append(_ context.Context, s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.load()
	if err != nil {
		return err
	}
	return r.save(append(sessions, s))
}

func (r *fileRepository) List(_ context.Context) ([]*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *fileRepository) GetByID(_ context.Context, id uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, s := range sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, ErrSessionNotFound
}

func (r *fileRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]*Session, 0, len(sessions))
	for _, s := range sessions {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(sessions) {
		return ErrSessionNotFound
	}
	return r.save(kept)
}

func (r *fileRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save([]*Session{})
}
