package bids

import (
	"sync"

	"golang.org/x/time/rate"
)

// limiterStore keeps one token bucket per bidder so a single hot bidder
// cannot monopolize the commit path during a sniping burst.
type limiterStore struct {
	mu       sync.Mutex
	limiters map[int]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLimiterStore(perSecond float64, burst int) *limiterStore {
	return &limiterStore{
		limiters: make(map[int]*rate.Limiter),
		limit:    rate.Limit(perSecond),
		burst:    burst,
	}
}

func (s *limiterStore) allow(userID int) bool {
	s.mu.Lock()
	limiter, ok := s.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(s.limit, s.burst)
		s.limiters[userID] = limiter
	}
	s.mu.Unlock()
	return limiter.Allow()
}
