package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/finman-cli/finman/internal/advisor"
)

// FileName is the config file kept in the data directory.
const FileName = "finman.yaml"

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config is the top-level finman.yaml configuration.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Git        GitConfig        `yaml:"git"`
}

// StorageConfig selects how wallets are persisted.
type StorageConfig struct {
	Backend string `yaml:"backend"` // "json" or "sqlite"
}

// ThresholdsConfig controls advisory warnings.
type ThresholdsConfig struct {
	// BudgetWarn is the spent/limit ratio at which the near-limit
	// warning fires.
	BudgetWarn float64 `yaml:"budget_warn"`
}

// GitConfig controls versioning of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Default returns the configuration written on first use.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Backend: BackendJSON},
		Thresholds: ThresholdsConfig{
			BudgetWarn: advisor.DefaultWarnRatio,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "finman",
			AuthorEmail: "finman@localhost",
		},
	}
}

// Load reads a finman.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// LoadOrDefault reads finman.yaml from the data dir, writing the
// default config there on first use so it is on disk to edit. Env
// overrides apply to the returned value, never to the file.
func LoadOrDefault(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		cfg.applyEnv()
		return cfg, nil
	}
	return Load(path)
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Home resolves the data directory: FINMAN_HOME when set, otherwise
// ~/.finman. A .env file in the working directory is honored.
func Home() (string, error) {
	_ = godotenv.Load() // optional; missing .env is fine

	if dir := os.Getenv("FINMAN_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home dir: %w", err)
	}
	return filepath.Join(home, ".finman"), nil
}

// applyEnv lets the environment override file settings.
func (c *Config) applyEnv() {
	if backend := os.Getenv("FINMAN_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
}
