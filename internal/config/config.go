package config

import "time"

// GeminiConfig holds settings for the hosted content generation service.
type GeminiConfig struct {
	APIKey      string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL     string        `mapstructure:"base_url" yaml:"base_url"`
	GuideModel  string        `mapstructure:"guide_model" yaml:"guide_model"`
	SearchModel string        `mapstructure:"search_model" yaml:"search_model"`
	Timeout     time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	DatabasePath      string        `mapstructure:"database_path" yaml:"database_path"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	Gemini            GeminiConfig  `mapstructure:"gemini" yaml:"gemini"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":3000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		DatabasePath:      "roams.db",
		LogLevel:          "info",
		Gemini: GeminiConfig{
			GuideModel:  "gemini-3-flash-preview",
			SearchModel: "gemini-2.5-flash",
			Timeout:     60 * time.Second,
		},
	}
}
