package examples

import (
	"fmt"
	"strings"
)

type BackendConfig struct {
	Kind        string
	FilePath    string
	SQLitePath  string
	PostgresDSN string
	Redis       RedisConfig
}

// OpenBackend builds the backend named by cfg.Kind (file when blank).
func OpenBackend(cfg BackendConfig) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "", "file":
		path := strings.TrimSpace(cfg.FilePath)
		if path == "" {
			path = "data/user_examples.json"
		}
		return NewFileBackend(path), nil
	case "sqlite":
		return NewSQLiteBackend(cfg.SQLitePath)
	case "postgres":
		return NewPostgresBackend(cfg.PostgresDSN)
	case "redis":
		return NewRedisBackend(cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown example store %q", cfg.Kind)
	}
}
