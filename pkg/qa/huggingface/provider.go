package huggingface

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

const DefaultBaseURL = constant.HuggingFaceDefaultBaseURL

type HuggingFaceProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// Ensure HuggingFaceProvider implements qa.Provider
var _ qa.Provider = &HuggingFaceProvider{}

// Request Payload Structure (question-answering task)
type qaRequest struct {
	Inputs qaInputs `json:"inputs"`
}

type qaInputs struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

type apiError struct {
	Error string `json:"error"`
}

func NewHuggingFaceProvider(apiKey, baseURL, model string, timeout time.Duration) *HuggingFaceProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HuggingFaceProvider{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *HuggingFaceProvider) Name() string {
	return "huggingface:" + p.model
}

func (p *HuggingFaceProvider) Answer(ctx context.Context, question, passage string) (*qa.Candidate, error) {
	reqBody := qaRequest{
		Inputs: qaInputs{
			Question: question,
			Context:  passage,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("huggingface api error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return decodeCandidate(bodyBytes)
}

// decodeCandidate accepts both the single-object and the top-k array shapes
// the inference API returns for question-answering.
func decodeCandidate(body []byte) (*qa.Candidate, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response from huggingface api")
	}

	if trimmed[0] == '[' {
		var candidates []qa.Candidate
		if err := json.Unmarshal(trimmed, &candidates); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("empty candidates from huggingface api")
		}
		best := candidates[0]
		best.Score = qa.ClampScore(best.Score)
		return &best, nil
	}

	var apiErr apiError
	if err := json.Unmarshal(trimmed, &apiErr); err == nil && apiErr.Error != "" {
		return nil, fmt.Errorf("huggingface api returned error: %s", apiErr.Error)
	}

	var candidate qa.Candidate
	if err := json.Unmarshal(trimmed, &candidate); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	candidate.Score = qa.ClampScore(candidate.Score)
	return &candidate, nil
}
