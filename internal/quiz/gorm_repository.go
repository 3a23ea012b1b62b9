package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	util "github.com/saulo-duarte/genquiz/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type sessionRecord struct {
	ID        uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	Topic     string                         `gorm:"type:text;not null;index"`
	Count     int                            `gorm:"not null"`
	Model     string                         `gorm:"type:text"`
	Questions datatypes.JSONType[[]Question] `gorm:"type:jsonb;not null"`
	Response  string                         `gorm:"type:text;not null"`
	CreatedAt time.Time                      `gorm:"not null;index"`
}

func (sessionRecord) TableName() string {
	return "quiz_sessions"
}

func toRecord(s *Session) *sessionRecord {
	return &sessionRecord{
		ID:        s.ID,
		Topic:     s.Topic,
		Count:     s.Count,
		Model:     s.Model,
		Questions: datatypes.NewJSONType(s.Questions),
		Response:  s.Response,
		CreatedAt: s.CreatedAt.Time,
	}
}

func (r *sessionRecord) toSession() *Session {
	return &Session{
		ID:        r.ID,
		Topic:     r.Topic,
		Count:     r.Count,
		Model:     r.Model,
		Questions: r.Questions.Data(),
		Response:  r.Response,
		CreatedAt: util.From(r.CreatedAt),
	}
}

type gormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) (QuizRepository, error) {
	if err := db.AutoMigrate(&sessionRecord{}); err != nil {
		return nil, err
	}
	return &gormRepository{db: db}, nil
}

func (r *gormRepository) Append(ctx context.Context, s *Session) error {
	return r.db.WithContext(ctx).Create(toRecord(s)).Error
}

func (r *gormRepository) List(ctx context.Context) ([]*Session, error) {
	var records []*sessionRecord
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	sessions := make([]*Session, len(records))
	for i, rec := range records {
		sessions[i] = rec.toSession()
	}
	return sessions, nil
}

func (r *gormRepository) GetByID(ctx context.Context, id uuid.UUID) (*Session, error) {
	var rec sessionRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return rec.toSession(), nil
}

func (r *gormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&sessionRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *gormRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&sessionRecord{}).Error
}
