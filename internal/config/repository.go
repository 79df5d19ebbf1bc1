package config

import (
	"fmt"
	"os"

	"blockday/internal/logging"
	"blockday/internal/repository/sqlite"
)

// CreateRepository creates a repository instance using the configuration system.
// A database file that cannot be opened or migrated is set aside as .bak
// and replaced with a fresh seeded one rather than blocking the app.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	path := config.GetDatabasePath()
	repo, err := sqlite.New(path)
	if err == nil {
		return repo, nil
	}

	logging.Debugf("database unusable, starting fresh: %v\n", err)
	if renameErr := os.Rename(path, path+".bak"); renameErr != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo, err = sqlite.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
