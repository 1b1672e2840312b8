// Package ratelimit provides a fixed-window request limiter keyed by client
// identity. State lives in process memory and does not survive restarts.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"woofer/internal/common"
)

// pruneThreshold bounds the client map: once it grows past this many keys,
// expired windows are swept before a new one is added.
const pruneThreshold = 1024

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// LimitExceededError is returned by callers that surface a rejected
// decision. It unwraps to common.ErrRateLimited.
type LimitExceededError struct {
	RetryAfter time.Duration
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry in %s", e.RetryAfter.Round(time.Second))
}

func (e *LimitExceededError) Unwrap() error {
	return common.ErrRateLimited
}

type clientWindow struct {
	start time.Time
	count int
}

// Limiter admits at most max requests per key within each window. The
// check-and-increment for a key is linearizable: a single mutex guards the
// whole map, so concurrent requests from one client cannot race past the
// configured maximum.
type Limiter struct {
	mu      sync.Mutex
	window  time.Duration
	max     int
	now     func() time.Time
	clients map[string]*clientWindow
}

// New returns a Limiter admitting max requests per windowDur for each key.
func New(windowDur time.Duration, max int) *Limiter {
	return &Limiter{
		window:  windowDur,
		max:     max,
		now:     time.Now,
		clients: make(map[string]*clientWindow),
	}
}

// Allow records one request for key and decides whether to admit it. A
// missing or expired window starts fresh with count 1; otherwise the count
// is incremented and the request rejected once it exceeds the maximum.
func (l *Limiter) Allow(key string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients[key]
	if !ok || now.Sub(w.start) >= l.window {
		if len(l.clients) >= pruneThreshold {
			l.prune(now)
		}
		l.clients[key] = &clientWindow{start: now, count: 1}
		if l.max < 1 {
			return Decision{Allowed: false, RetryAfter: l.window}
		}
		return Decision{Allowed: true}
	}

	w.count++
	if w.count > l.max {
		return Decision{Allowed: false, RetryAfter: l.window - now.Sub(w.start)}
	}
	return Decision{Allowed: true}
}

// prune drops expired windows. Caller holds the mutex.
func (l *Limiter) prune(now time.Time) {
	for key, w := range l.clients {
		if now.Sub(w.start) >= l.window {
			delete(l.clients, key)
		}
	}
}
