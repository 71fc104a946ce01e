package ecoflow

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-zone rate limiters: zone_id -> rate limiter.
// Detection requests are expensive (two upstream vision calls), so each zone
// gets its own token bucket.
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(zoneID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[zoneID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[zoneID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(zoneID string, zoneRate rate.Limit, zoneBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[zoneID] = rate.NewLimiter(zoneRate, zoneBurst)
}
