package config

import (
	"os"
	"testing"
	"time"

	"finance-chatbot-be/internal/constant"
	"finance-chatbot-be/pkg/qa/huggingface"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	unset(t, "APP_PORT", "GO_ENV", "QA_PROVIDER", "QA_MODEL", "QA_CONFIDENCE_THRESHOLD",
		"QA_TIMEOUT", "QA_CACHE_TTL", "CORS_ALLOWED_ORIGINS", "HUGGINGFACE_BASE_URL", "OLLAMA_BASE_URL",
		"LOG_FILE_PATH", "QA_LOG_FILE_PATH")

	cfg := FromEnv()

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "*", cfg.App.CorsAllowedOrigins)
	assert.Equal(t, "huggingface", cfg.Ai.QAProvider)
	assert.Equal(t, "", cfg.Ai.QAModel)
	assert.Equal(t, 0.3, cfg.Ai.ConfidenceThreshold)
	assert.Equal(t, 60*time.Second, cfg.Ai.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Ai.CacheTTL)
	assert.Equal(t, huggingface.DefaultBaseURL, cfg.Ai.HuggingFaceBaseURL)
	assert.Equal(t, constant.OllamaDefaultBaseURL, cfg.Ai.OllamaBaseURL)
	assert.False(t, cfg.IsProduction())
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GO_ENV", "production")
	t.Setenv("QA_PROVIDER", "ollama")
	t.Setenv("QA_MODEL", "qwen2.5")
	t.Setenv("QA_CONFIDENCE_THRESHOLD", "0.55")
	t.Setenv("QA_TIMEOUT", "5s")
	t.Setenv("QA_CACHE_TTL", "0s")

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "ollama", cfg.Ai.QAProvider)
	assert.Equal(t, "qwen2.5", cfg.Ai.QAModel)
	assert.Equal(t, 0.55, cfg.Ai.ConfidenceThreshold)
	assert.Equal(t, 5*time.Second, cfg.Ai.Timeout)
	assert.Equal(t, time.Duration(0), cfg.Ai.CacheTTL)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvIgnoresUnparsableNumbers(t *testing.T) {
	t.Setenv("QA_CONFIDENCE_THRESHOLD", "high")
	t.Setenv("QA_TIMEOUT", "soon")

	cfg := FromEnv()

	assert.Equal(t, 0.3, cfg.Ai.ConfidenceThreshold)
	assert.Equal(t, 60*time.Second, cfg.Ai.Timeout)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"threshold above one", func(c *Config) { c.Ai.ConfidenceThreshold = 1.5 }},
		{"negative threshold", func(c *Config) { c.Ai.ConfidenceThreshold = -0.1 }},
		{"unknown provider", func(c *Config) { c.Ai.QAProvider = "openai" }},
		{"non numeric port", func(c *Config) { c.App.Port = "http" }},
		{"zero timeout", func(c *Config) { c.Ai.Timeout = 0 }},
		{"bad base url", func(c *Config) { c.Ai.HuggingFaceBaseURL = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Port:               "5000",
			Environment:        "test",
			LogFilePath:        "logs/app.log",
			QALogFilePath:      "logs/qa.log",
			CorsAllowedOrigins: "*",
		},
		Ai: AIConfig{
			QAProvider:          "huggingface",
			HuggingFaceBaseURL:  "https://router.huggingface.co/hf-inference",
			OllamaBaseURL:       "http://localhost:11434",
			ConfidenceThreshold: 0.3,
			Timeout:             time.Second,
			CacheTTL:            time.Minute,
		},
	}
}

// unset clears keys for the duration of the test and restores them afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
