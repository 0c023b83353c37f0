// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

// SessionModel represents the sessions table. It holds at most one row per
// storage key.
type SessionModel struct {
	Key       string    `gorm:"column:storage_key;type:varchar(64);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SessionModel.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToEntity converts a SessionModel to a domain User entity.
func (m *SessionModel) ToEntity() *entity.User {
	return entity.NewUser(m.Name, m.Email)
}

// SessionFromEntity creates a SessionModel for the given key from a User.
func SessionFromEntity(key string, user *entity.User) *SessionModel {
	return &SessionModel{
		Key:       key,
		Name:      user.Name,
		Email:     user.Email,
		UpdatedAt: time.Now().UTC(),
	}
}
