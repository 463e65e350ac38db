package config

import "fmt"

type Config struct {
	YouTube  YouTubeConfig  `yaml:"youtube"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Slides   SlidesConfig   `yaml:"slides"`
	Paths    PathsConfig    `yaml:"paths"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type YouTubeConfig struct {
	APIHost            string `yaml:"api_host"`
	APIKey             string `yaml:"-"` // RAPID_API_KEY
	TargetLanguage     string `yaml:"target_language"`
	MaxDurationSeconds int    `yaml:"max_duration_seconds"`
	TimeoutSeconds     int    `yaml:"timeout_seconds"`
}

type GeminiConfig struct {
	Model          string   `yaml:"model"`
	APIKeys        []string `yaml:"-"` // GEMINI_API_KEYS, comma separated
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type SlidesConfig struct {
	Count int `yaml:"count"`
}

type PathsConfig struct {
	Scratch string `yaml:"scratch"`
}

type StorageConfig struct {
	URL    string `yaml:"url"`
	Key    string `yaml:"-"` // SUPABASE_SERVICE_KEY
	Bucket string `yaml:"bucket"`
}

type DatabaseConfig struct {
	DSN string `yaml:"-"` // DATABASE_URL
}

type ServerConfig struct {
	Port                   string `yaml:"port"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) Validate() error {
	if c.YouTube.APIKey == "" {
		return fmt.Errorf("RAPID_API_KEY is required")
	}
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEYS is required")
	}
	if c.Storage.URL == "" {
		return fmt.Errorf("storage.url (or SUPABASE_URL) is required")
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}

	if c.YouTube.APIHost == "" {
		c.YouTube.APIHost = "yt-api.p.rapidapi.com"
	}
	if c.YouTube.TargetLanguage == "" {
		c.YouTube.TargetLanguage = "pt"
	}
	if c.YouTube.MaxDurationSeconds == 0 {
		c.YouTube.MaxDurationSeconds = 1200
	}
	if c.YouTube.TimeoutSeconds == 0 {
		c.YouTube.TimeoutSeconds = 30
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = 120
	}
	if c.Slides.Count == 0 {
		c.Slides.Count = 10
	}
	if c.Paths.Scratch == "" {
		c.Paths.Scratch = "data/scratch"
	}
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = "presentations"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.Server.ShutdownTimeoutSeconds == 0 {
		c.Server.ShutdownTimeoutSeconds = 10
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
