package factory

import (
	"fmt"
	"time"

	"finance-chatbot-be/internal/constant"
	"finance-chatbot-be/pkg/qa"
	"finance-chatbot-be/pkg/qa/cache"
	"finance-chatbot-be/pkg/qa/huggingface"
	"finance-chatbot-be/pkg/qa/ollama"
)

// Settings carries what NewProvider needs from the application config.
type Settings struct {
	ProviderType string // "huggingface" or "ollama"
	ModelName    string // Empty means provider default
	BaseURL      string
	APIKey       string
	Timeout      time.Duration
	CacheTTL     time.Duration // 0 disables the answer cache
}

func NewProvider(s Settings) (qa.Provider, error) {
	var provider qa.Provider

	switch s.ProviderType {
	case "huggingface", "":
		model := s.ModelName
		if model == "" {
			model = constant.HuggingFaceDefaultQAModel
		}
		provider = huggingface.NewHuggingFaceProvider(s.APIKey, s.BaseURL, model, s.Timeout)
	case "ollama":
		model := s.ModelName
		if model == "" {
			model = constant.OllamaDefaultModel
		}
		baseURL := s.BaseURL
		if baseURL == "" {
			baseURL = constant.OllamaDefaultBaseURL
		}
		provider = ollama.NewOllamaProvider(baseURL, model, s.Timeout)
	default:
		return nil, fmt.Errorf("unsupported QA provider: %s", s.ProviderType)
	}

	if s.CacheTTL > 0 {
		provider = cache.NewCachedProvider(provider, s.CacheTTL)
	}
	return provider, nil
}
