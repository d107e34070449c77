package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the findash CLI.
type Config struct {
	APIBaseURL     string        `env:"FINDASH_API_URL"`
	AIServiceURL   string        `env:"FINDASH_AI_SERVICE_URL"`
	StoragePath    string        `env:"FINDASH_STORAGE_PATH"`
	RequestTimeout time.Duration `env:"FINDASH_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"FINDASH_LOG_LEVEL"`
	LogFormat      string        `env:"FINDASH_LOG_FORMAT"`
}

// LoadDefaults populates c with defaults suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.AIServiceURL = "http://localhost:8000"
	c.StoragePath = "findash.db"
	c.RequestTimeout = 0
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, the JSON file, the environment
// and finally the command-line args (without the program name).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("env config: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}
