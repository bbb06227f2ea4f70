package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	GenAI  GenAIConfig  `yaml:"genai"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// Transport is "stdio" or "http".
	Transport string `yaml:"transport"`
}

type DBConfig struct {
	Path string `yaml:"path"`
	// LegacyPath points at the flat-file store of earlier releases;
	// data found there is migrated on startup. Empty disables it.
	LegacyPath string `yaml:"legacy_path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type GenAIConfig struct {
	BaseURL               string `yaml:"base_url"`
	APIKey                string `yaml:"api_key"`
	TextModel             string `yaml:"text_model"`
	ImageModel            string `yaml:"image_model"`
	FallbackModel         string `yaml:"fallback_model"`
	AttemptTimeoutSeconds int    `yaml:"attempt_timeout_seconds"`
}

// AttemptTimeout returns the per-attempt image generation deadline.
func (c GenAIConfig) AttemptTimeout() time.Duration {
	return time.Duration(c.AttemptTimeoutSeconds) * time.Second
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			Transport: "stdio",
		},
		DB: DBConfig{
			Path: "lumina.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		GenAI: GenAIConfig{
			BaseURL:               "https://generativelanguage.googleapis.com/v1beta",
			TextModel:             "gemini-2.5-flash",
			ImageModel:            "gemini-3-pro-image-preview",
			FallbackModel:         "gemini-2.5-flash-image",
			AttemptTimeoutSeconds: 60,
		},
	}

	if path := os.Getenv("LUMINA_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("LUMINA_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("LUMINA_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LUMINA_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if transport := os.Getenv("LUMINA_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if dbPath := os.Getenv("LUMINA_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if legacyPath := os.Getenv("LUMINA_LEGACY_PATH"); legacyPath != "" {
		cfg.DB.LegacyPath = legacyPath
	}
	if level := os.Getenv("LUMINA_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if key := os.Getenv("LUMINA_API_KEY"); key != "" {
		cfg.GenAI.APIKey = key
	}
	if url := os.Getenv("LUMINA_GENAI_BASE_URL"); url != "" {
		cfg.GenAI.BaseURL = url
	}
	if model := os.Getenv("LUMINA_TEXT_MODEL"); model != "" {
		cfg.GenAI.TextModel = model
	}
	if model := os.Getenv("LUMINA_IMAGE_MODEL"); model != "" {
		cfg.GenAI.ImageModel = model
	}
	if model := os.Getenv("LUMINA_FALLBACK_MODEL"); model != "" {
		cfg.GenAI.FallbackModel = model
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
