package chatbot

import (
	"context"
	"fmt"

	"finance-chatbot-be/internal/constant"
	"finance-chatbot-be/internal/pkg/logger"
	"finance-chatbot-be/pkg/qa"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Source tells which branch of the selector produced a reply
type Source string

const (
	SourceModel    Source = "model"
	SourceRule     Source = "rule"
	SourceFallback Source = "fallback"
	SourceError    Source = "error"
)

// Decision is the outcome of one selection
type Decision struct {
	Reply  string
	Source Source
	Rule   string  // Name of the matched rule when Source is SourceRule
	Score  float64 // Model confidence, 0 when inference failed
	Err    error   // Inference failure when Source is SourceError
}

// Config holds the selection policy. Empty fields other than Threshold fall
// back to DefaultConfig.
type Config struct {
	Knowledge     string
	Threshold     float64
	Rules         []Rule
	ErrorReply    string
	FallbackReply string
}

func DefaultConfig() Config {
	return Config{
		Knowledge:     constant.FinancialKnowledgeContext,
		Threshold:     constant.DefaultConfidenceThreshold,
		Rules:         DefaultRules(),
		ErrorReply:    constant.ChatErrorReply,
		FallbackReply: constant.ChatFallbackReply,
	}
}

// Selector decides between the QA model answer and the keyword fallback chain
type Selector struct {
	provider     qa.Provider
	providerName string
	cfg          Config
	logger       logger.ILogger
}

func NewSelector(provider qa.Provider, cfg Config, log logger.ILogger) *Selector {
	def := DefaultConfig()
	if cfg.Knowledge == "" {
		cfg.Knowledge = def.Knowledge
	}
	if cfg.Rules == nil {
		cfg.Rules = def.Rules
	}
	if cfg.ErrorReply == "" {
		cfg.ErrorReply = def.ErrorReply
	}
	if cfg.FallbackReply == "" {
		cfg.FallbackReply = def.FallbackReply
	}
	return &Selector{
		provider:     provider,
		providerName: providerName(provider),
		cfg:          cfg,
		logger:       log,
	}
}

// providerName reads the name once so a misbehaving provider cannot fail later requests.
func providerName(p qa.Provider) (name string) {
	defer func() {
		if r := recover(); r != nil {
			name = "unknown"
		}
	}()
	return p.Name()
}

// Respond returns the reply text for message. It never returns an empty string.
func (s *Selector) Respond(ctx context.Context, message string) string {
	return s.Decide(ctx, message).Reply
}

// Decide runs inference and applies the acceptance threshold, then the rule chain.
func (s *Selector) Decide(ctx context.Context, message string) Decision {
	candidate, err := s.infer(ctx, message)
	if err != nil {
		s.logger.Error("Selector", "QA inference failed", map[string]interface{}{
			"provider": s.providerName,
			"error":    err.Error(),
		})
		return Decision{Reply: s.cfg.ErrorReply, Source: SourceError, Err: err}
	}

	if s.accept(candidate) {
		return Decision{Reply: candidate.Answer, Source: SourceModel, Score: candidate.Score}
	}

	s.logger.Debug("Selector", "Low confidence answer, using fallback chain", map[string]interface{}{
		"score":  candidate.Score,
		"answer": candidate.Answer,
	})

	if rule, ok := MatchRule(s.cfg.Rules, message); ok {
		return Decision{Reply: rule.Reply, Source: SourceRule, Rule: rule.Name, Score: candidate.Score}
	}

	return Decision{Reply: s.cfg.FallbackReply, Source: SourceFallback, Score: candidate.Score}
}

func (s *Selector) accept(c *qa.Candidate) bool {
	return c.Answer != "" && c.Score >= s.cfg.Threshold
}

// infer wraps the provider call in a span and turns panics and nil
// candidates into errors.
func (s *Selector) infer(ctx context.Context, message string) (candidate *qa.Candidate, err error) {
	ctx, span := otel.Tracer("finance-chatbot-be/chatbot").Start(ctx, "qa.answer")
	defer span.End()
	span.SetAttributes(attribute.String("qa.provider", s.providerName))

	defer func() {
		if r := recover(); r != nil {
			candidate, err = nil, fmt.Errorf("qa provider panic: %v", r)
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	candidate, err = s.provider.Answer(ctx, message, s.cfg.Knowledge)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, fmt.Errorf("qa provider returned no candidate")
	}

	span.SetAttributes(attribute.Float64("qa.score", candidate.Score))
	return candidate, nil
}
