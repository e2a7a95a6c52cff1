package services

import (
	"context"
	"errors"
	"time"

	"financeapp/internal/models"

	"gorm.io/gorm"
)

// sessionService stores login sessions in the database.
type sessionService struct {
	db *gorm.DB
}

// NewSessionService creates a new SessionServicer.
func NewSessionService(db *gorm.DB) SessionServicer {
	return &sessionService{db: db}
}

// CreateSession inserts s.
func (s *sessionService) CreateSession(ctx context.Context, sess *models.Session) error {
	return s.db.WithContext(ctx).Omit("User").Create(sess).Error
}

// FindSession returns the session with its user, or nil when it does not exist.
func (s *sessionService) FindSession(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := s.db.WithContext(ctx).Preload("User").First(&sess, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// DeleteSession removes a session. Deleting a missing session is not an error.
func (s *sessionService) DeleteSession(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Session{}).Error
}

// DeleteExpiredSessions purges sessions that expired before now.
func (s *sessionService) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", now.UTC()).Delete(&models.Session{})
	return res.RowsAffected, res.Error
}
