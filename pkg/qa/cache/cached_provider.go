package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"finance-chatbot-be/pkg/qa"

	"github.com/patrickmn/go-cache"
)

// CachedProvider memoizes successful answers of the wrapped provider. The
// knowledge passage is fixed, so the same question always maps to the same span.
// Failed inferences are never cached.
type CachedProvider struct {
	next  qa.Provider
	cache *cache.Cache
}

var _ qa.Provider = &CachedProvider{}

func NewCachedProvider(next qa.Provider, ttl time.Duration) *CachedProvider {
	// Purge expired items at twice the TTL
	c := cache.New(ttl, 2*ttl)
	return &CachedProvider{
		next:  next,
		cache: c,
	}
}

func (p *CachedProvider) Name() string {
	return p.next.Name()
}

func (p *CachedProvider) Answer(ctx context.Context, question, passage string) (*qa.Candidate, error) {
	key := cacheKey(question, passage)
	if x, found := p.cache.Get(key); found {
		candidate := *x.(*qa.Candidate)
		return &candidate, nil
	}

	candidate, err := p.next.Answer(ctx, question, passage)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, fmt.Errorf("qa provider returned no candidate")
	}

	stored := *candidate
	p.cache.Set(key, &stored, cache.DefaultExpiration)
	return candidate, nil
}

// Len reports the number of cached answers, expired ones included until purged.
func (p *CachedProvider) Len() int {
	return p.cache.ItemCount()
}

func cacheKey(question, passage string) string {
	h := sha256.New()
	h.Write([]byte(passage))
	h.Write([]byte{0})
	h.Write([]byte(question))
	return hex.EncodeToString(h.Sum(nil))
}
