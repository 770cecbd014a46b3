// Package config handles loading and managing Strategos configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/strategos/strategos/pkg/scoring"
)

// Config is the top-level configuration for Strategos.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Oracle  OracleConfig  `yaml:"oracle"`
	Storage StorageConfig `yaml:"storage"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// ServerConfig controls the daemon's HTTP surface and database.
type ServerConfig struct {
	Port          string `yaml:"port"`
	DatabaseURL   string `yaml:"database_url"`
	APIKey        string `yaml:"api_key"`
	WebhookSecret string `yaml:"webhook_secret"`
}

// OracleConfig selects and tunes the strategy generation provider.
type OracleConfig struct {
	Provider  string `yaml:"provider"` // claude or openai
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// StorageConfig selects the result payload backend.
type StorageConfig struct {
	Backend   string   `yaml:"backend"` // local, s3, or gcs
	LocalPath string   `yaml:"local_path"`
	S3        S3Config `yaml:"s3"`
	GCSBucket string   `yaml:"gcs_bucket"`
}

// S3Config holds the S3 backend settings.
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	Weights         scoring.Weights `yaml:"weights"`
	ArchiveMinScore float64         `yaml:"archive_min_score"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			DatabaseURL: "postgres://localhost:5432/strategos?sslmode=disable",
		},
		Oracle: OracleConfig{
			Provider:  "claude",
			MaxTokens: 8192,
		},
		Storage: StorageConfig{
			Backend:   "local",
			LocalPath: DataDir(),
		},
		Scoring: ScoringConfig{
			Weights:         scoring.DefaultWeights(),
			ArchiveMinScore: scoring.ArchiveMinScore,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Scoring.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("config weights: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Env wins over
// file values so deployments can keep secrets out of the YAML.
func (c *Config) ApplyEnv() {
	overlay(&c.Server.Port, "PORT")
	overlay(&c.Server.DatabaseURL, "DATABASE_URL")
	overlay(&c.Server.APIKey, "STRATEGOS_API_KEY")
	overlay(&c.Server.WebhookSecret, "STRATEGOS_WEBHOOK_SECRET")
	overlay(&c.Oracle.Provider, "STRATEGOS_ORACLE_PROVIDER")
	overlay(&c.Oracle.Model, "STRATEGOS_ORACLE_MODEL")
	overlay(&c.Storage.Backend, "STRATEGOS_STORAGE_BACKEND")
	overlay(&c.Storage.LocalPath, "STRATEGOS_STORAGE_PATH")
	overlay(&c.Storage.S3.Bucket, "S3_BUCKET")
	overlay(&c.Storage.S3.Region, "S3_REGION")
	overlay(&c.Storage.S3.Endpoint, "S3_ENDPOINT")
	overlay(&c.Storage.S3.AccessKey, "S3_ACCESS_KEY")
	overlay(&c.Storage.S3.SecretKey, "S3_SECRET_KEY")
	overlay(&c.Storage.GCSBucket, "GCS_BUCKET")
}

func overlay(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// FindConfigFile looks for .strategos/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".strategos", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// DataDir returns the local result storage directory.
// Uses ~/.local/share/strategos/ to avoid polluting the working directory.
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".local", "share", "strategos")
}
