package services

import (
	"errors"
	"sync"
	"time"

	"fxledger/internal/config"
	"fxledger/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
	// OnStateChange is called after every transition, outside the breaker lock
	OnStateChange func(from, to models.CircuitBreakerState)
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// CircuitBreakerConfigFrom maps the persistence breaker settings
func CircuitBreakerConfigFrom(cfg config.BreakerConfig) CircuitBreakerConfig {
	c := DefaultCircuitBreakerConfig()
	if cfg.MaxFailures > 0 {
		c.MaxFailures = cfg.MaxFailures
	}
	if cfg.ResetTimeout > 0 {
		c.ResetTimeout = cfg.ResetTimeout
	}
	return c
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

type CircuitBreaker struct {
	mu                sync.RWMutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return newCircuitBreaker(config, time.Now)
}

func newCircuitBreaker(config CircuitBreakerConfig, now func() time.Time) *CircuitBreaker {
	if config.HalfOpenMaxSucc <= 0 {
		config.HalfOpenMaxSucc = 1
	}
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    now,
	}
}

// IsOpen reports whether calls should be refused. An open breaker whose reset
// timeout has elapsed moves to half-open and lets the next call through.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	from := cb.state
	if cb.state == StateOpen && cb.shouldTransitionToHalfOpen() {
		cb.state = StateHalfOpen
		cb.halfOpenSuccesses = 0
	}
	open := cb.state == StateOpen
	to := cb.state
	cb.mu.Unlock()

	cb.notify(from, to)
	return open
}

func (cb *CircuitBreaker) shouldTransitionToHalfOpen() bool {
	return cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	from := cb.state
	if cb.state == StateHalfOpen {
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			cb.transitionToClosed()
		}
	} else if cb.state == StateClosed {
		cb.failures = 0
	}
	to := cb.state
	cb.mu.Unlock()

	cb.notify(from, to)
}

func (cb *CircuitBreaker) transitionToClosed() {
	cb.state = StateClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	from := cb.state
	cb.lastFailureTime = cb.now()

	if cb.state == StateHalfOpen {
		cb.transitionToOpen()
	} else if cb.state == StateClosed {
		cb.failures++
		if cb.failures >= cb.config.MaxFailures {
			cb.transitionToOpen()
		}
	}
	to := cb.state
	cb.mu.Unlock()

	cb.notify(from, to)
}

func (cb *CircuitBreaker) transitionToOpen() {
	cb.state = StateOpen
	cb.halfOpenSuccesses = 0
}

func (cb *CircuitBreaker) notify(from, to models.CircuitBreakerState) {
	if from != to && cb.config.OnStateChange != nil {
		cb.config.OnStateChange(from, to)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	from := cb.state
	cb.state = StateClosed
	cb.failures = 0
	cb.halfOpenSuccesses = 0
	cb.mu.Unlock()

	cb.notify(from, StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
