package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the blockday application
type Config struct {
	Database    DatabaseConfig
	Scoring     ScoringConfig
	Insights    InsightsConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `env:"BD_DB_DIR"`
	Filename string `env:"BD_DB_FILENAME"`
}

// ScoringConfig holds XP economy configuration
type ScoringConfig struct {
	Mode string `env:"BD_SCORING_MODE"` // "default" or "hardcore"
}

// InsightsConfig holds configuration for the insights model call
type InsightsConfig struct {
	APIKey  string        `env:"BD_INSIGHTS_API_KEY"`
	BaseURL string        `env:"BD_INSIGHTS_BASE_URL"`
	Model   string        `env:"BD_INSIGHTS_MODEL"`
	Timeout time.Duration `env:"BD_INSIGHTS_TIMEOUT"`
	// RecentLogs bounds how many focus sessions the summary payload carries
	RecentLogs int `env:"BD_INSIGHTS_RECENT_LOGS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"BD_APP_TIMEOUT"`
	Verbose bool          `env:"BD_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".blockday")

	return &Config{
		Database: DatabaseConfig{
			Dir:      defaultDBDir,
			Filename: "blockday.db",
		},
		Scoring: ScoringConfig{
			Mode: "default",
		},
		Insights: InsightsConfig{
			BaseURL:    "https://api.openai.com/v1/chat/completions",
			Model:      "gpt-4o-mini",
			Timeout:    30 * time.Second,
			RecentLogs: 20,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("BD_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("BD_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}

	if mode := os.Getenv("BD_SCORING_MODE"); mode != "" {
		c.Scoring.Mode = mode
	}

	if apiKey := os.Getenv("BD_INSIGHTS_API_KEY"); apiKey != "" {
		c.Insights.APIKey = apiKey
	}
	if baseURL := os.Getenv("BD_INSIGHTS_BASE_URL"); baseURL != "" {
		c.Insights.BaseURL = baseURL
	}
	if model := os.Getenv("BD_INSIGHTS_MODEL"); model != "" {
		c.Insights.Model = model
	}
	if timeout := os.Getenv("BD_INSIGHTS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Insights.Timeout = d
		}
	}
	if recent := os.Getenv("BD_INSIGHTS_RECENT_LOGS"); recent != "" {
		if n, err := strconv.Atoi(recent); err == nil && n > 0 {
			c.Insights.RecentLogs = n
		}
	}

	if timeout := os.Getenv("BD_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("BD_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Scoring.Mode != "default" && c.Scoring.Mode != "hardcore" {
		return &ConfigError{Field: "scoring.mode", Message: "scoring mode must be default or hardcore"}
	}
	if c.Insights.BaseURL == "" {
		return &ConfigError{Field: "insights.base_url", Message: "insights base URL cannot be empty"}
	}
	if c.Insights.Model == "" {
		return &ConfigError{Field: "insights.model", Message: "insights model cannot be empty"}
	}
	if c.Insights.Timeout <= 0 {
		return &ConfigError{Field: "insights.timeout", Message: "insights timeout must be positive"}
	}
	if c.Insights.RecentLogs <= 0 {
		return &ConfigError{Field: "insights.recent_logs", Message: "recent logs count must be positive"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
