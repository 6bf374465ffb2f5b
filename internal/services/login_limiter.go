package services

import (
	"context"
	"sync"
	"time"

	"fxledger/internal/config"

	"golang.org/x/time/rate"
)

const (
	limiterCleanupInterval = time.Minute
	limiterIdleTTL         = 3 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginLimiter keeps one token bucket per remote host
type LoginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewLoginLimiter(cfg config.SecurityConfig) *LoginLimiter {
	limit := rate.Limit(cfg.LoginRatePerSec)
	if cfg.LoginRatePerSec <= 0 {
		limit = rate.Inf
	}
	burst := cfg.LoginBurst
	if burst <= 0 {
		burst = 1
	}
	return &LoginLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

// Allow reports whether host may attempt another login now
func (l *LoginLimiter) Allow(host string) bool {
	return l.getVisitor(host).AllowN(l.now(), 1)
}

func (l *LoginLimiter) getVisitor(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[host]
	if !exists {
		limiter := rate.NewLimiter(l.limit, l.burst)
		l.visitors[host] = &visitor{limiter, l.now()}
		return limiter
	}

	v.lastSeen = l.now()
	return v.limiter
}

// Run evicts idle hosts until ctx is done
func (l *LoginLimiter) Run(ctx context.Context) {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cleanup(limiterIdleTTL)
		}
	}
}

func (l *LoginLimiter) cleanup(ttl time.Duration) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for host, v := range l.visitors {
		if l.now().Sub(v.lastSeen) > ttl {
			delete(l.visitors, host)
			removed++
		}
	}
	return removed
}

func (l *LoginLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.visitors)
}
