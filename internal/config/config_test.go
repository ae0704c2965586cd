package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearProviderEnv keeps API keys of the machine running the tests out of
// provider discovery.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "assessly.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfig(t, `
server:
  addr: ":9000"
  rate_limit:
    max_requests: 10
    window: 30s
database:
  driver: postgres
  dsn: postgres://localhost/assessly
llm:
  provider: mock
cors:
  allowed_origins: ["https://lms.example.com"]
learner: ada
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, ModeRelease, cfg.Server.Mode)
	assert.Equal(t, 10, cfg.Server.RateLimit.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.Server.RateLimit.Window)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.OpenAI.Model)
	assert.Equal(t, []string{"https://lms.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "ada", cfg.Learner)
	assert.Equal(t, 300, cfg.Feedback.MaxTokens)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearProviderEnv(t)
	path := writeConfig(t, "server:\n  addr: \":9000\"\n")
	t.Setenv("ASSESSLY_SERVER_ADDR", ":7000")
	t.Setenv("ASSESSLY_LLM_PROVIDER", "openai")
	t.Setenv("ASSESSLY_LLM_OPENAI_API_KEY", "sk-test")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
}

func TestLoadWithoutFile(t *testing.T) {
	clearProviderEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Server.Addr, cfg.Server.Addr)
	assert.False(t, cfg.LLM.Enabled())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDiscoverProviderFromVendorKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	path := writeConfig(t, "learner: ada\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.APIKey)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad mode", func(c *Config) { c.Server.Mode = "prod" }, "server.mode"},
		{"negative rate", func(c *Config) { c.Server.RateLimit.MaxRequests = -1 }, "must not be negative"},
		{"zero window", func(c *Config) { c.Server.RateLimit.Window = 0 }, "window must be positive"},
		{"tracing endpoint", func(c *Config) {
			c.Tracing.Enabled = true
			c.Tracing.CollectorEndpoint = ""
		}, "collector_endpoint"},
		{"llm key", func(c *Config) { c.LLM.Provider = "gemini" }, "ASSESSLY_LLM_GEMINI_API_KEY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
