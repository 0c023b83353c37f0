package db

import (
	"testing"

	"github.com/productivity-hub/backend/config"
	"github.com/productivity-hub/backend/internal/integration/persistence/model"
)

func TestNewSQLiteConnection(t *testing.T) {
	database, err := NewSQLiteConnection(&config.DatabaseConfig{SQLitePath: "file::memory:"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer database.Close()

	if database.Dialect() != "sqlite" {
		t.Errorf("unexpected dialect %q", database.Dialect())
	}
	if err := database.AutoMigrate(&model.SessionModel{}); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	if !database.DB().Migrator().HasTable(&model.SessionModel{}) {
		t.Error("expected sessions table to exist")
	}
}
