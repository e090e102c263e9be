package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	// APIURL is the base URL of the platform's REST API, including the
	// /api prefix, e.g. http://localhost:5000/api.
	APIURL string `mapstructure:"API_URL"`

	// DataDir holds the credential store and attempt drafts.
	DataDir string `mapstructure:"DATA_DIR"`

	// Timeout bounds every API request.
	Timeout time.Duration `mapstructure:"TIMEOUT"`

	// Debug enables per-call logging on stderr.
	Debug bool `mapstructure:"DEBUG"`
}

// Load reads configuration from ~/.graphtrain/config.yaml (and the
// current directory, for development), then applies GRAPHTRAIN_*
// environment overrides on top of defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("finding home directory: %w", err)
	}
	defaultDataDir := filepath.Join(home, ".graphtrain")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultDataDir)
	v.AddConfigPath(".")

	v.SetDefault("API_URL", "http://localhost:5000/api")
	v.SetDefault("DATA_DIR", defaultDataDir)
	v.SetDefault("TIMEOUT", "30s")
	v.SetDefault("DEBUG", false)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine; env and defaults apply.
	}

	v.SetEnvPrefix("GRAPHTRAIN")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &cfg, nil
}

// CredentialsPath returns the SQLite file backing the credential store.
func (c *Config) CredentialsPath() string {
	return filepath.Join(c.DataDir, "graphtrain.db")
}
