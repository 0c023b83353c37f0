package db

import (
	"time"

	"github.com/glebarez/sqlite"

	"github.com/productivity-hub/backend/config"
)

// NewSQLiteConnection opens the pure-Go SQLite database at cfg.SQLitePath.
// SQLite serialises writers, so the pool is held to one connection.
func NewSQLiteConnection(cfg *config.DatabaseConfig) (*Database, error) {
	return open("sqlite", sqlite.Open(cfg.SQLitePath), 1, 1, time.Duration(0))
}
