package session

import (
	"EcoPanier/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SessionRepository interface {
		CreateSession(ctx context.Context, session *entities.Session) error
		GetSessionByID(ctx context.Context, id string) (*entities.Session, error)
		UpdateSession(ctx context.Context, session *entities.Session) error
	}

	sessionRepository struct {
		db *gorm.DB
	}
)

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) CreateSession(ctx context.Context, session *entities.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) GetSessionByID(ctx context.Context, id string) (*entities.Session, error) {
	var session entities.Session
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) UpdateSession(ctx context.Context, session *entities.Session) error {
	return r.db.WithContext(ctx).Save(session).Error
}
