package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/productivity-hub/backend/config"
	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/infra/db"
	"github.com/productivity-hub/backend/internal/integration/persistence"
	"github.com/productivity-hub/backend/internal/integration/persistence/model"
)

// StorageName returns the configured session backend, defaulting to memory.
func StorageName(cfg *config.Config) string {
	if cfg.Session.Storage == "" {
		return config.StorageMemory
	}
	return cfg.Session.Storage
}

// NewSessionStorage opens the session storage backend selected by
// SESSION_STORAGE. The returned func closes it.
func NewSessionStorage(cfg *config.Config) (adapter.SessionStorage, func() error, error) {
	noop := func() error { return nil }

	switch StorageName(cfg) {
	case config.StorageMemory:
		return persistence.NewMemorySessionStorage(), noop, nil

	case config.StorageRedis:
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid REDIS_URL: %w", err)
		}
		if cfg.Redis.Password != "" {
			opts.Password = cfg.Redis.Password
		}
		if cfg.Redis.DB != 0 {
			opts.DB = cfg.Redis.DB
		}

		client := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return persistence.NewRedisSessionStorage(client, cfg.Redis.KeyPrefix), client.Close, nil

	case config.StorageSQLite, config.StoragePostgres:
		var (
			database *db.Database
			err      error
		)
		if cfg.Session.Storage == config.StorageSQLite {
			database, err = db.NewSQLiteConnection(&cfg.Database)
		} else {
			database, err = db.NewPostgresConnection(&cfg.Database)
		}
		if err != nil {
			return nil, nil, err
		}
		if err := database.AutoMigrate(&model.SessionModel{}); err != nil {
			database.Close()
			return nil, nil, err
		}
		return persistence.NewSQLSessionStorage(database.DB()), database.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown SESSION_STORAGE %q", cfg.Session.Storage)
	}
}
