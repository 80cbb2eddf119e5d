package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"finance-chatbot-be/pkg/qa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls     int
	candidate *qa.Candidate
	err       error
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Answer(ctx context.Context, question, passage string) (*qa.Candidate, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if p.candidate == nil {
		return nil, nil
	}
	c := *p.candidate
	return &c, nil
}

func TestCachedProviderHit(t *testing.T) {
	next := &countingProvider{candidate: &qa.Candidate{Answer: "3 to 6 months", Score: 0.8}}
	p := NewCachedProvider(next, time.Minute)

	first, err := p.Answer(context.Background(), "how long?", "passage")
	require.NoError(t, err)
	second, err := p.Answer(context.Background(), "how long?", "passage")
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, p.Len())
	assert.Equal(t, "counting", p.Name())
}

func TestCachedProviderKeysOnQuestionAndPassage(t *testing.T) {
	next := &countingProvider{candidate: &qa.Candidate{Answer: "x", Score: 0.5}}
	p := NewCachedProvider(next, time.Minute)

	_, _ = p.Answer(context.Background(), "q1", "passage")
	_, _ = p.Answer(context.Background(), "q2", "passage")
	_, _ = p.Answer(context.Background(), "q1", "other passage")

	assert.Equal(t, 3, next.calls)
}

func TestCachedProviderDoesNotCacheErrors(t *testing.T) {
	next := &countingProvider{err: errors.New("model unavailable")}
	p := NewCachedProvider(next, time.Minute)

	_, err := p.Answer(context.Background(), "q", "passage")
	assert.Error(t, err)
	_, err = p.Answer(context.Background(), "q", "passage")
	assert.Error(t, err)

	assert.Equal(t, 2, next.calls)
	assert.Equal(t, 0, p.Len())
}

func TestCachedProviderReturnsCopies(t *testing.T) {
	next := &countingProvider{candidate: &qa.Candidate{Answer: "x", Score: 0.5}}
	p := NewCachedProvider(next, time.Minute)

	first, _ := p.Answer(context.Background(), "q", "passage")
	first.Answer = "mutated"

	second, _ := p.Answer(context.Background(), "q", "passage")
	assert.Equal(t, "x", second.Answer)
}

func TestCachedProviderNilCandidateIsError(t *testing.T) {
	next := &countingProvider{}
	p := NewCachedProvider(next, time.Minute)

	var (
		got *qa.Candidate
		err error
	)
	require.NotPanics(t, func() {
		got, err = p.Answer(context.Background(), "q", "passage")
	})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, p.Len())
}
