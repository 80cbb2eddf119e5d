package service

import (
	"context"
	"time"
	"unicode/utf8"

	"finance-chatbot-be/internal/dto"
	"finance-chatbot-be/internal/metrics"
	"finance-chatbot-be/internal/pkg/logger"
	"finance-chatbot-be/pkg/chatbot"

	"github.com/google/uuid"
)

// IChatbotService defines the chatbot service interface
type IChatbotService interface {
	SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	ProviderName() string
}

type chatbotService struct {
	selector     *chatbot.Selector
	providerName string
	qaLogger     logger.ILogger
}

// NewChatbotService wires the response selector behind the HTTP-facing service.
// qaLogger receives one line per decision.
func NewChatbotService(selector *chatbot.Selector, providerName string, qaLogger logger.ILogger) IChatbotService {
	return &chatbotService{
		selector:     selector,
		providerName: providerName,
		qaLogger:     qaLogger,
	}
}

func (cs *chatbotService) ProviderName() string {
	return cs.providerName
}

// SendChat answers one message. Inference failures, cancellation included, are
// folded into the reply by the selector.
func (cs *chatbotService) SendChat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	requestId := uuid.New()
	start := time.Now()

	decision := cs.selector.Decide(ctx, request.Message)
	elapsed := time.Since(start)

	metrics.ChatRepliesTotal.WithLabelValues(string(decision.Source), decision.Rule).Inc()
	metrics.ChatReplyDuration.WithLabelValues(string(decision.Source)).Observe(elapsed.Seconds())
	if decision.Source != chatbot.SourceError {
		metrics.QAConfidence.Observe(decision.Score)
	}

	details := map[string]interface{}{
		"request_id":  requestId.String(),
		"provider":    cs.providerName,
		"source":      string(decision.Source),
		"rule":        decision.Rule,
		"score":       decision.Score,
		"duration_ms": elapsed.Milliseconds(),
		"message":     truncateLog(request.Message, 200),
	}
	if decision.Err != nil {
		details["error"] = decision.Err.Error()
		cs.qaLogger.Warn("ChatbotService", "Replied with error message", details)
	} else {
		cs.qaLogger.Info("ChatbotService", "Reply selected", details)
	}

	return &dto.ChatResponse{Response: decision.Reply}, nil
}

// truncateLog truncates string for logging, never splitting a rune
func truncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
