package infra

import (
	"errors"
	"sync"
	"time"
)

// ErrBreakerOpen is returned while the breaker is cooling down.
var ErrBreakerOpen = errors.New("translate breaker is open")

// Breaker is a small circuit breaker guarding the translation proxy.
// Translation is best-effort everywhere it is called, so fast-failing
// while the proxy is down just turns a slow failure into a cheap one.
// After threshold consecutive failures calls fail immediately for the
// cooldown period; the first call afterwards probes, and one success
// closes the breaker again.
type Breaker struct {
	mu        sync.Mutex
	failures  int
	openUntil time.Time

	threshold int
	cooldown  time.Duration
}

func NewBreaker(threshold int, cooldown time.Duration) *Breaker {
	return &Breaker{threshold: threshold, cooldown: cooldown}
}

// Execute runs fn unless the breaker is open.
func (b *Breaker) Execute(fn func() error) error {
	b.mu.Lock()
	if b.failures >= b.threshold && time.Now().Before(b.openUntil) {
		b.mu.Unlock()
		return ErrBreakerOpen
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.failures++
		if b.failures >= b.threshold {
			b.openUntil = time.Now().Add(b.cooldown)
		}
		return err
	}
	b.failures = 0
	return nil
}
