package ai

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"jobsphere-ai/internal/config"
	"jobsphere-ai/internal/logging"
)

// CircuitState represents the state of a provider circuit breaker
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

const circuitResetTimeout = 30 * time.Second

// providerBreaker tracks consecutive failures for a single provider
type providerBreaker struct {
	maxFailures  int
	failureCount int
	lastFailTime time.Time
	state        CircuitState
	mu           sync.RWMutex
}

// Guard manages rate limiting and circuit breaking per provider. A provider
// whose circuit is open is skipped by the orchestrator so the chain moves on
// to the next candidate without waiting out a failing upstream.
type Guard struct {
	config   *config.Config
	limiters map[string]*rate.Limiter
	breakers map[string]*providerBreaker
	mu       sync.Mutex
	logger   logging.Logger
}

// NewGuard creates a new provider guard
func NewGuard(cfg *config.Config) *Guard {
	return &Guard{
		config:   cfg,
		limiters: make(map[string]*rate.Limiter),
		breakers: make(map[string]*providerBreaker),
		logger:   logging.GetGlobalLogger().WithField("component", "ai_guard"),
	}
}

// Allow checks whether a call to the given provider may proceed
func (g *Guard) Allow(provider string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isCircuitClosed(provider) {
		g.logger.Debug("Provider call rejected by circuit breaker", map[string]interface{}{
			"provider": provider,
		})
		return false
	}

	allowed := g.getLimiter(provider).Allow()
	if !allowed {
		g.logger.Debug("Provider call rejected by rate limiter", map[string]interface{}{
			"provider": provider,
		})
	}
	return allowed
}

// RecordSuccess resets the circuit after a successful provider call
func (g *Guard) RecordSuccess(provider string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cb, exists := g.breakers[provider]
	if !exists {
		return
	}

	cb.mu.Lock()
	if cb.state != CircuitClosed {
		g.logger.Info("Circuit breaker closed after successful call", map[string]interface{}{
			"provider": provider,
		})
	}
	cb.state = CircuitClosed
	cb.failureCount = 0
	cb.mu.Unlock()
}

// RecordFailure counts a failed provider call toward opening the circuit
func (g *Guard) RecordFailure(provider string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cb := g.getBreaker(provider)
	cb.mu.Lock()
	cb.failureCount++
	cb.lastFailTime = time.Now()

	if cb.failureCount >= cb.maxFailures && cb.state == CircuitClosed {
		cb.state = CircuitOpen
		g.logger.Warn("Circuit breaker opened due to failures", map[string]interface{}{
			"provider": provider,
			"failures": cb.failureCount,
			"error":    err.Error(),
		})
	}
	cb.mu.Unlock()
}

// State reports the current circuit state for a provider
func (g *Guard) State(provider string) CircuitState {
	g.mu.Lock()
	defer g.mu.Unlock()

	cb, exists := g.breakers[provider]
	if !exists {
		return CircuitClosed
	}
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (g *Guard) getLimiter(provider string) *rate.Limiter {
	if limiter, exists := g.limiters[provider]; exists {
		return limiter
	}

	// Configured as calls per minute.
	rps := rate.Limit(float64(g.config.AI.RateLimit) / 60.0)
	limiter := rate.NewLimiter(rps, 5)
	g.limiters[provider] = limiter

	g.logger.Info("Created provider rate limiter", map[string]interface{}{
		"provider": provider,
		"rate":     float64(rps),
	})
	return limiter
}

func (g *Guard) getBreaker(provider string) *providerBreaker {
	if cb, exists := g.breakers[provider]; exists {
		return cb
	}

	maxFailures := g.config.AI.MaxFailures
	if maxFailures <= 0 {
		maxFailures = 5
	}
	cb := &providerBreaker{
		maxFailures: maxFailures,
		state:       CircuitClosed,
	}
	g.breakers[provider] = cb
	return cb
}

func (g *Guard) isCircuitClosed(provider string) bool {
	cb := g.getBreaker(provider)

	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case CircuitClosed, CircuitHalfOpen:
		return true
	case CircuitOpen:
		if time.Since(cb.lastFailTime) > circuitResetTimeout {
			cb.state = CircuitHalfOpen
			g.logger.Info("Circuit breaker transitioned to half-open", map[string]interface{}{
				"provider": provider,
			})
			return true
		}
		return false
	default:
		return false
	}
}

// String returns string representation of CircuitState
func (cs CircuitState) String() string {
	switch cs {
	case CircuitClosed:
		return "closed"
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}
