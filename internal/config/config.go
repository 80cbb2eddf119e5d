package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"finance-chatbot-be/internal/constant"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Keys      APIKeys
	Ai        AIConfig
	Telemetry TelemetryConfig
}

type AppConfig struct {
	Port               string `validate:"required,numeric"`
	Environment        string `validate:"required"`
	LogFilePath        string `validate:"required"`
	QALogFilePath      string `validate:"required"`
	CorsAllowedOrigins string `validate:"required"`
}

type APIKeys struct {
	HuggingFace  string
	GoogleGemini string // Only used by cmd/list_models
}

type AIConfig struct {
	QAProvider          string        `validate:"oneof=huggingface ollama"`
	QAModel             string        // Empty means provider default
	HuggingFaceBaseURL  string        `validate:"required,url"`
	OllamaBaseURL       string        `validate:"required,url"`
	ConfidenceThreshold float64       `validate:"gte=0,lte=1"`
	Timeout             time.Duration `validate:"gt=0"`
	CacheTTL            time.Duration `validate:"gte=0"`
}

type TelemetryConfig struct {
	OtelEnabled  bool
	OtelEndpoint string
}

var validate = validator.New()

// Load reads .env (if present) and the process environment. It panics on an
// invalid configuration since nothing downstream can run without one.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Panicf("Invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the current environment without loading .env.
func FromEnv() *Config {
	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			QALogFilePath:      getEnv("QA_LOG_FILE_PATH", "logs/qa_inference.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Keys: APIKeys{
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			QAProvider:          getEnv("QA_PROVIDER", "huggingface"),
			QAModel:             getEnv("QA_MODEL", ""),
			HuggingFaceBaseURL:  getEnv("HUGGINGFACE_BASE_URL", constant.HuggingFaceDefaultBaseURL),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", constant.OllamaDefaultBaseURL),
			ConfidenceThreshold: getEnvAsFloat("QA_CONFIDENCE_THRESHOLD", constant.DefaultConfidenceThreshold),
			Timeout:             getEnvAsDuration("QA_TIMEOUT", 60*time.Second),
			CacheTTL:            getEnvAsDuration("QA_CACHE_TTL", 10*time.Minute),
		},
		Telemetry: TelemetryConfig{
			OtelEnabled:  getEnv("OTEL_ENABLED", "false") == "true",
			OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
