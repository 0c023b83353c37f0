package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/integration/persistence/model"
)

// sqlSessionStorage keeps the session user in the sessions table. It works
// with any GORM dialector; PostgreSQL and SQLite are wired.
type sqlSessionStorage struct {
	db *gorm.DB
}

// NewSQLSessionStorage creates a session storage on db. The sessions table
// must exist (see model.SessionModel).
func NewSQLSessionStorage(db *gorm.DB) adapter.SessionStorage {
	return &sqlSessionStorage{
		db: db,
	}
}

// Load returns the stored user, or nil when no row exists.
func (s *sqlSessionStorage) Load(ctx context.Context) (*entity.User, error) {
	var session model.SessionModel
	result := s.db.WithContext(ctx).Where("storage_key = ?", adapter.SessionStorageKey).First(&session)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return session.ToEntity(), nil
}

// Save upserts the session row.
func (s *sqlSessionStorage) Save(ctx context.Context, user *entity.User) error {
	session := model.SessionFromEntity(adapter.SessionStorageKey, user)
	return s.db.WithContext(ctx).Save(session).Error
}

// Clear deletes the session row.
func (s *sqlSessionStorage) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).
		Delete(&model.SessionModel{}, "storage_key = ?", adapter.SessionStorageKey).
		Error
}

// Ping checks the database connection.
func (s *sqlSessionStorage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
