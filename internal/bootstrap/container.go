package bootstrap

import (
	"log"

	"finance-chatbot-be/internal/config"
	"finance-chatbot-be/internal/controller"
	"finance-chatbot-be/internal/pkg/logger"
	"finance-chatbot-be/internal/service"
	"finance-chatbot-be/pkg/chatbot"
	"finance-chatbot-be/pkg/qa"
	"finance-chatbot-be/pkg/qa/factory"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	HealthController  controller.IHealthController

	// Shared infrastructure
	Logger   logger.ILogger
	QALogger logger.ILogger
}

// NewContainer builds the QA provider from config and wires everything around it.
func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	baseURL := cfg.Ai.HuggingFaceBaseURL
	if cfg.Ai.QAProvider == "ollama" {
		baseURL = cfg.Ai.OllamaBaseURL
	}

	provider, err := factory.NewProvider(factory.Settings{
		ProviderType: cfg.Ai.QAProvider,
		ModelName:    cfg.Ai.QAModel,
		BaseURL:      baseURL,
		APIKey:       cfg.Keys.HuggingFace,
		Timeout:      cfg.Ai.Timeout,
		CacheTTL:     cfg.Ai.CacheTTL,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize QA Provider: %v", err)
	}
	sysLogger.Info("Bootstrap", "QA provider ready", map[string]interface{}{
		"provider":  provider.Name(),
		"threshold": cfg.Ai.ConfidenceThreshold,
		"cache_ttl": cfg.Ai.CacheTTL.String(),
	})

	qaLogger := logger.NewIsolatedLogger(cfg.App.QALogFilePath)

	return NewContainerWithProvider(cfg, provider, sysLogger, qaLogger)
}

// NewContainerWithProvider wires the container around an already built provider.
func NewContainerWithProvider(cfg *config.Config, provider qa.Provider, sysLogger, qaLogger logger.ILogger) *Container {
	selectorCfg := chatbot.DefaultConfig()
	selectorCfg.Threshold = cfg.Ai.ConfidenceThreshold

	selector := chatbot.NewSelector(provider, selectorCfg, sysLogger)
	chatbotService := service.NewChatbotService(selector, provider.Name(), qaLogger)

	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService),
		HealthController:  controller.NewHealthController(chatbotService),
		Logger:            sysLogger,
		QALogger:          qaLogger,
	}
}
