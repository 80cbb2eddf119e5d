package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"finance-chatbot-be/internal/constant"
	"finance-chatbot-be/pkg/qa"
)

// OllamaProvider runs extractive QA on a local chat model. The model is asked
// for a span and a self-reported confidence; spans that are not literally in
// the passage are rejected with score 0.
type OllamaProvider struct {
	BaseURL   string
	ModelName string
	Client    *http.Client
}

// Ensure OllamaProvider implements qa.Provider
var _ qa.Provider = &OllamaProvider{}

func NewOllamaProvider(baseURL, modelName string, timeout time.Duration) *OllamaProvider {
	return &OllamaProvider{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		ModelName: modelName,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type ollamaChatRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Stream   bool            `json:"stream"`
	Format   string          `json:"format,omitempty"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
}

type ollamaChatResponse struct {
	Model   string        `json:"model"`
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
	Error   string        `json:"error,omitempty"`
}

type extractedAnswer struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

// --- Interface Implementation ---

func (o *OllamaProvider) Name() string {
	return "ollama:" + o.ModelName
}

func (o *OllamaProvider) Answer(ctx context.Context, question, passage string) (*qa.Candidate, error) {
	// 1. Prepare Payload
	reqPayload := ollamaChatRequest{
		Model: o.ModelName,
		Messages: []ollamaMessage{
			{Role: "system", Content: constant.OllamaExtractiveQAPrompt},
			{Role: "user", Content: fmt.Sprintf("PASSAGE:\n%s\n\nQUESTION: %s", passage, question)},
		},
		Stream:  false,
		Format:  "json",
		Options: &ollamaOptions{Temperature: 0},
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	// 2. Send Request
	url := o.BaseURL + constant.OllamaChatEndpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	// 3. Parse Response
	var ollamaResp ollamaChatResponse
	if err := json.Unmarshal(bodyBytes, &ollamaResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if ollamaResp.Error != "" {
		return nil, fmt.Errorf("ollama error: %s", ollamaResp.Error)
	}

	var extracted extractedAnswer
	if err := json.Unmarshal([]byte(ollamaResp.Message.Content), &extracted); err != nil {
		return nil, fmt.Errorf("unmarshal model answer: %w", err)
	}

	// 4. Ground the span in the passage
	return groundCandidate(extracted, passage), nil
}

func groundCandidate(extracted extractedAnswer, passage string) *qa.Candidate {
	answer := strings.TrimSpace(extracted.Answer)
	start := strings.Index(passage, answer)
	if answer == "" || start < 0 {
		return &qa.Candidate{Answer: answer, Score: 0}
	}
	return &qa.Candidate{
		Answer: answer,
		Score:  qa.ClampScore(extracted.Score),
		Start:  start,
		End:    start + len(answer),
	}
}
