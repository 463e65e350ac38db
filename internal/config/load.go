package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config at path, overlays secrets from the environment,
// and validates the result. Secrets never live in the YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	c.YouTube.APIKey = os.Getenv("RAPID_API_KEY")
	c.Storage.Key = os.Getenv("SUPABASE_SERVICE_KEY")
	c.Database.DSN = os.Getenv("DATABASE_URL")

	if v := os.Getenv("SUPABASE_URL"); v != "" {
		c.Storage.URL = v
	}

	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		for _, key := range strings.Split(v, ",") {
			if key = strings.TrimSpace(key); key != "" {
				c.Gemini.APIKeys = append(c.Gemini.APIKeys, key)
			}
		}
	}
}
