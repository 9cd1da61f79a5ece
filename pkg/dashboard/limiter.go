package dashboard

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore hands every client its own token bucket. Clients are
// keyed by the X-Client-ID header or metadata, or by remote address when
// a browser never sent one. A nil store admits everything.
type RateLimiterStore struct {
	mu           sync.Mutex
	buckets      map[string]*rate.Limiter
	defaultRate  rate.Limit
	defaultBurst int
}

// LimiterSettings describes the bucket a client currently draws from.
type LimiterSettings struct {
	ClientID  string  `json:"clientId"`
	Rate      float64 `json:"rate"`
	Burst     int     `json:"burst"`
	Unlimited bool    `json:"unlimited"`
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		buckets:      make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

// GetLimiter returns the client's bucket, creating it with the default
// rate and burst on first sight.
func (s *RateLimiterStore) GetLimiter(clientID string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, ok := s.buckets[clientID]
	if !ok {
		bucket = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.buckets[clientID] = bucket
	}
	return bucket
}

// SetLimiter replaces the client's bucket, so a throttled client starts
// over with a full burst.
func (s *RateLimiterStore) SetLimiter(clientID string, clientRate rate.Limit, clientBurst int) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buckets[clientID] = rate.NewLimiter(clientRate, clientBurst)
}

// Allow reports whether clientID may make one more request now.
func (s *RateLimiterStore) Allow(clientID string) bool {
	if s == nil {
		return true
	}
	return s.GetLimiter(clientID).Allow()
}

func (s *RateLimiterStore) Settings(clientID string) LimiterSettings {
	if s == nil {
		return LimiterSettings{ClientID: clientID, Unlimited: true}
	}
	bucket := s.GetLimiter(clientID)
	if bucket.Limit() == rate.Inf {
		return LimiterSettings{ClientID: clientID, Burst: bucket.Burst(), Unlimited: true}
	}
	return LimiterSettings{ClientID: clientID, Rate: float64(bucket.Limit()), Burst: bucket.Burst()}
}
