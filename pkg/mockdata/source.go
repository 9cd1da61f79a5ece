// Package mockdata is the read-only data source behind every dashboard
// view. Literal collections are returned as fresh copies on each call and
// every generated series draws from one explicitly seeded generator, so a
// given seed always reproduces the same views.
package mockdata

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewSource creates a source seeded with seed. A nil now uses time.Now.
func NewSource(seed int64, now func() time.Time) *Source {
	if now == nil {
		now = time.Now
	}
	return &Source{
		rnd: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

func (s *Source) Now() time.Time {
	return s.now()
}

// float returns the next value in [0, 1). *rand.Rand is not safe for
// concurrent use, and the source is shared by the http and grpc servers.
func (s *Source) float() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *Source) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// daylight is the sine curve shared by every 24h series: 0 at 06:00,
// peaking at 12:00 and negative through the night.
func daylight(hour int) float64 {
	return math.Sin(float64(hour-6) * math.Pi / 12)
}
