package ratelimit

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Limiter paces outbound requests per host so a roster that lists many feeds
// from the same publisher doesn't hammer it. Hosts are tracked independently;
// requests to different hosts never wait on each other.
type Limiter struct {
	mu       sync.Mutex
	interval time.Duration
	last     map[string]time.Time
	requests int
}

// New creates a Limiter enforcing a minimum interval between requests to the
// same host. A zero or negative interval disables pacing.
func New(interval time.Duration) *Limiter {
	return &Limiter{
		interval: interval,
		last:     make(map[string]time.Time),
	}
}

// Wait blocks until a request to rawURL's host is allowed, or the context is
// cancelled. Unparseable URLs are paced under a shared "unknown" host.
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	host := hostOf(rawURL)

	l.mu.Lock()
	now := time.Now()
	next := now
	if l.interval > 0 {
		if prev, ok := l.last[host]; ok && prev.Add(l.interval).After(now) {
			next = prev.Add(l.interval)
		}
	}
	l.last[host] = next
	l.requests++
	l.mu.Unlock()

	if wait := time.Until(next); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil
}

// Requests reports how many requests the limiter has admitted.
func (l *Limiter) Requests() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.requests
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "unknown"
	}
	return strings.ToLower(u.Host)
}
