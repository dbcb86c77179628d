package storage

import (
	"fmt"

	"noteserv/pkg/config"
)

// NewStore returns a concrete Store based on database configuration.
// Falls back to sqlite when no type is provided.
func NewStore(cfg config.DatabaseConfig, hasher PasswordHasher) (Store, error) {
	switch cfg.Type {
	case "sqlite", "":
		return NewSQLiteStore(cfg.Path, hasher)
	case "mysql":
		return NewMySQLStore(cfg.Path, hasher)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}
}
