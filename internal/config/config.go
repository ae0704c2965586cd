// Package config loads assessly settings from an optional YAML file and
// ASSESSLY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/assessly/internal/feedback"
	"github.com/abhisek/assessly/internal/llm"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig    `mapstructure:"server"`
	Database DatabaseConfig  `mapstructure:"database"`
	Log      LogConfig       `mapstructure:"log"`
	LLM      llm.Config      `mapstructure:"llm"`
	Feedback feedback.Config `mapstructure:"feedback"`
	Tracing  TracingConfig   `mapstructure:"tracing"`
	CORS     CORSConfig      `mapstructure:"cors"`

	// Content is the directory of assessment definitions the server grades.
	Content string `mapstructure:"content"`

	// Learner identifies the person taking assessments in the TUI.
	Learner string `mapstructure:"learner"`

	// ServerURL points the TUI at a remote grader. Empty grades locally.
	ServerURL string `mapstructure:"server_url"`
}

type ServerConfig struct {
	Addr           string          `mapstructure:"addr"`
	Mode           string          `mapstructure:"mode"`
	RequestTimeout time.Duration   `mapstructure:"request_timeout"`
	RateLimit      RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig limits grading requests per learner. Zero disables it.
type RateLimitConfig struct {
	MaxRequests int           `mapstructure:"max_requests"`
	Window      time.Duration `mapstructure:"window"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`

	// Console adds a human readable core on stderr.
	Console bool `mapstructure:"console"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
	ServiceName       string `mapstructure:"service_name"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server modes.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:           ":8080",
			Mode:           ModeRelease,
			RequestTimeout: 15 * time.Second,
			RateLimit:      RateLimitConfig{MaxRequests: 60, Window: time.Minute},
		},
		Database: DatabaseConfig{Driver: "sqlite"},
		Log:      LogConfig{Level: "info"},
		LLM:      llm.DefaultConfig(),
		Feedback: feedback.DefaultConfig(),
		Tracing: TracingConfig{
			CollectorEndpoint: "http://localhost:14268/api/traces",
			ServiceName:       "assessly",
		},
		Content: "assessments",
	}
}

// Load reads the configuration. An explicit path must exist; without one,
// assessly.yaml is looked up in the working directory and in the user's
// config directory, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix("ASSESSLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("assessly")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "assessly"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LLM.Discover()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []error
	switch c.Server.Mode {
	case ModeDebug, ModeRelease:
	default:
		errs = append(errs, fmt.Errorf("server.mode must be %q or %q, got %q", ModeDebug, ModeRelease, c.Server.Mode))
	}
	if c.Server.RateLimit.MaxRequests < 0 {
		errs = append(errs, errors.New("server.rate_limit.max_requests must not be negative"))
	}
	if c.Server.RateLimit.MaxRequests > 0 && c.Server.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("server.rate_limit.window must be positive"))
	}
	if c.Tracing.Enabled && c.Tracing.CollectorEndpoint == "" {
		errs = append(errs, errors.New("tracing.collector_endpoint is required when tracing is enabled"))
	}
	if err := c.LLM.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// setDefaults registers every key so that environment variables are seen
// by Unmarshal even when no file mentions them.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.mode", d.Server.Mode)
	v.SetDefault("server.request_timeout", d.Server.RequestTimeout)
	v.SetDefault("server.rate_limit.max_requests", d.Server.RateLimit.MaxRequests)
	v.SetDefault("server.rate_limit.window", d.Server.RateLimit.Window)

	v.SetDefault("database.driver", d.Database.Driver)
	v.SetDefault("database.dsn", d.Database.DSN)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.console", d.Log.Console)

	v.SetDefault("llm.provider", d.LLM.Provider)
	providers := map[string]llm.ProviderConfig{
		"anthropic":  d.LLM.Anthropic,
		"openai":     d.LLM.OpenAI,
		"gemini":     d.LLM.Gemini,
		"openrouter": d.LLM.OpenRouter,
	}
	for name, pc := range providers {
		v.SetDefault("llm."+name+".api_key", pc.APIKey)
		v.SetDefault("llm."+name+".model", pc.Model)
		v.SetDefault("llm."+name+".base_url", pc.BaseURL)
	}
	v.SetDefault("llm.retry.max_attempts", d.LLM.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.LLM.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.LLM.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.LLM.Retry.Multiplier)
	v.SetDefault("llm.timeout", d.LLM.Timeout)

	v.SetDefault("feedback.max_tokens", d.Feedback.MaxTokens)
	v.SetDefault("feedback.temperature", d.Feedback.Temperature)

	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.collector_endpoint", d.Tracing.CollectorEndpoint)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)

	v.SetDefault("cors.allowed_origins", d.CORS.AllowedOrigins)

	v.SetDefault("content", d.Content)
	v.SetDefault("learner", d.Learner)
	v.SetDefault("server_url", d.ServerURL)
}
