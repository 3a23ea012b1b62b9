package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisSessionPrefix = "genquiz:session:"
	redisSessionIndex  = "genquiz:sessions"
	redisSessionSeq    = "genquiz:seq"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) QuizRepository {
	return &redisRepository{client: client}
}

func sessionKey(id uuid.UUID) string {
	return redisSessionPrefix + id.String()
}

func (r *redisRepository) Append(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	// CreatedAt has second precision, so the index is scored by an append
	// counter instead.
	seq, err := r.client.Incr(ctx, redisSessionSeq).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate history sequence: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(s.ID), data, 0)
		pipe.ZAdd(ctx, redisSessionIndex, redis.Z{
			Score:  float64(seq),
			Member: s.ID.String(),
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store session %s: %w", s.ID, err)
	}
	return nil
}

func (r *redisRepository) List(ctx context.Context) ([]*Session, error) {
	ids, err := r.client.ZRange(ctx, redisSessionIndex, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read session index: %w", err)
	}
	if len(ids) == 0 {
		return []*Session{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisSessionPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read sessions: %w", err)
	}

	sessions := make([]*Session, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a body
			continue
		}
		var s Session
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return nil, fmt.Errorf("%w: session %s: %v", ErrCorruptHistory, ids[i], err)
		}
		sessions = append(sessions, &s)
	}
	return sessions, nil
}

func (r *redisRepository) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read session %s: %w", id, err)
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: session %s: %v", ErrCorruptHistory, id, err)
	}
	return &s, nil
}

func (r *redisRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, sessionKey(id))
		pipe.ZRem(ctx, redisSessionIndex, id.String())
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	if del.Val() == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *redisRepository) Clear(ctx context.Context) error {
	ids, err := r.client.ZRange(ctx, redisSessionIndex, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read session index: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, redisSessionPrefix+id)
	}
	keys = append(keys, redisSessionIndex)

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
