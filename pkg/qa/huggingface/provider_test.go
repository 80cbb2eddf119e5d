package huggingface

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSendsQuestionAndContext(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody qaRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"answer":"3 to 6 months","score":0.82,"start":10,"end":24}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("secret", srv.URL, "deepset/roberta-base-squad2", time.Second)
	candidate, err := p.Answer(context.Background(), "How much should an emergency fund cover?", "passage")

	require.NoError(t, err)
	assert.Equal(t, "/models/deepset/roberta-base-squad2", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "How much should an emergency fund cover?", gotBody.Inputs.Question)
	assert.Equal(t, "passage", gotBody.Inputs.Context)
	assert.Equal(t, "3 to 6 months", candidate.Answer)
	assert.InDelta(t, 0.82, candidate.Score, 1e-9)
	assert.Equal(t, 10, candidate.Start)
	assert.Equal(t, 24, candidate.End)
}

func TestAnswerWithoutAPIKeyOmitsAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"answer":"x","score":0.5}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("", srv.URL+"/", "m", time.Second)
	_, err := p.Answer(context.Background(), "q", "c")
	require.NoError(t, err)
}

func TestAnswerDecodesArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"answer":"low-cost","score":0.41},{"answer":"ETFs","score":0.2}]`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("", srv.URL, "m", time.Second)
	candidate, err := p.Answer(context.Background(), "q", "c")

	require.NoError(t, err)
	assert.Equal(t, "low-cost", candidate.Answer)
	assert.InDelta(t, 0.41, candidate.Score, 1e-9)
}

func TestAnswerErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non 200 status", http.StatusServiceUnavailable, `{"error":"Model is loading"}`},
		{"error field on 200", http.StatusOK, `{"error":"Input is invalid"}`},
		{"empty array", http.StatusOK, `[]`},
		{"empty body", http.StatusOK, ``},
		{"garbage body", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := NewHuggingFaceProvider("", srv.URL, "m", time.Second)
			candidate, err := p.Answer(context.Background(), "q", "c")

			assert.Error(t, err)
			assert.Nil(t, candidate)
		})
	}
}

func TestAnswerClampsScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer":"x","score":1.7}`))
	}))
	defer srv.Close()

	p := NewHuggingFaceProvider("", srv.URL, "m", time.Second)
	candidate, err := p.Answer(context.Background(), "q", "c")

	require.NoError(t, err)
	assert.Equal(t, 1.0, candidate.Score)
}

func TestNameAndDefaultBaseURL(t *testing.T) {
	p := NewHuggingFaceProvider("", "", "deepset/roberta-base-squad2", time.Second)
	assert.Equal(t, DefaultBaseURL, p.baseURL)
	assert.Equal(t, "huggingface:deepset/roberta-base-squad2", p.Name())
}
