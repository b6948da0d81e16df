package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. It is constructed once at
// process start and passed explicitly; nothing reads the environment after Load.
type Config struct {
	// GitHub
	GitHubToken string
	Owner       string
	Repos       []string

	// Retention
	RetentionDays int
}

// DefaultRetentionDays is used when RETENTION_DAYS is not set
const DefaultRetentionDays = 30

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	retention := DefaultRetentionDays
	if v := os.Getenv("RETENTION_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, &ConfigError{Field: "RETENTION_DAYS", Message: "must be an integer"}
		}
		retention = n
	}

	return &Config{
		GitHubToken:   getEnv("GITHUB_TOKEN", ""),
		Owner:         getEnv("GITHUB_OWNER", ""),
		Repos:         splitRepos(getEnv("GITHUB_REPOS", "")),
		RetentionDays: retention,
	}, nil
}

// getEnv returns the value of an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitRepos parses a comma-separated repository list, preserving order
func splitRepos(s string) []string {
	var repos []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			repos = append(repos, name)
		}
	}
	return repos
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return &ConfigError{Field: "GITHUB_TOKEN", Message: "GitHub token is required"}
	}
	if c.Owner == "" {
		return &ConfigError{Field: "GITHUB_OWNER", Message: "owner is required"}
	}
	if len(c.Repos) == 0 {
		return &ConfigError{Field: "GITHUB_REPOS", Message: "at least one repository is required"}
	}
	if c.RetentionDays < 0 {
		return &ConfigError{Field: "RETENTION_DAYS", Message: "must be >= 0"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
