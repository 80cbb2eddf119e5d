package qa

import (
	"context"
)

// Candidate is the span an extractive QA model picked from the context passage.
type Candidate struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"` // Confidence in [0,1]
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

// Provider defines the contract for any extractive question-answering backend
type Provider interface {
	// Answer extracts the best answer to question from passage
	Answer(ctx context.Context, question, passage string) (*Candidate, error)

	// Name identifies the backend in logs and metrics
	Name() string
}

// ClampScore forces a model-reported score into [0,1].
func ClampScore(score float64) float64 {
	if score < 0 || score != score { // NaN
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
