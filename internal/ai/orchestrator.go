package ai

import (
	"context"
	"fmt"
	"time"

	"jobsphere-ai/internal/logging"
	"jobsphere-ai/pkg/utils"
)

const allProvidersFailedMessage = "All AI services are currently unavailable. Please try again later."

const ruleProviderName = "rules"

// Orchestrator walks a capability's provider chain in order and returns the
// first successful result. Intermediate failures are logged and absorbed; the
// caller only sees an error when the whole chain is exhausted.
type Orchestrator struct {
	guard   *Guard
	timeout time.Duration
	logger  logging.Logger
}

// NewOrchestrator creates an orchestrator with the given provider guard and
// per-attempt timeout for remote providers.
func NewOrchestrator(guard *Guard, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		guard:   guard,
		timeout: timeout,
		logger:  logging.GetGlobalLogger().WithField("component", "ai_orchestrator"),
	}
}

// Execute tries each provider in the chain sequentially, invoking the
// capability call through the supplied closure. Remote attempts run under the
// configured timeout and are counted by the guard; the terminal rule-based
// provider runs unguarded so the chain always has a last resort.
func (o *Orchestrator) Execute(ctx context.Context, capability Capability, chain []Provider, invoke func(ctx context.Context, p Provider) (interface{}, error)) (*Result, error) {
	if len(chain) == 0 {
		return nil, fmt.Errorf("no providers configured for %s", capability)
	}

	var lastErr error
	for _, provider := range chain {
		name := provider.GetProviderName()
		remote := name != ruleProviderName

		if remote && o.guard != nil && !o.guard.Allow(name) {
			lastErr = fmt.Errorf("provider %s unavailable (circuit open or throttled)", name)
			o.logger.Warn("Skipping provider", map[string]interface{}{
				"capability": string(capability),
				"provider":   name,
			})
			continue
		}

		payload, err := o.callProvider(ctx, provider, remote, invoke)
		if err != nil {
			lastErr = err
			if remote && o.guard != nil {
				o.guard.RecordFailure(name, err)
			}
			o.logger.Warn("Provider attempt failed, falling back", map[string]interface{}{
				"capability": string(capability),
				"provider":   name,
				"error":      err.Error(),
				"rate_limit": utils.IsRateLimitSignal(err.Error()),
			})
			continue
		}

		if remote && o.guard != nil {
			o.guard.RecordSuccess(name)
		}
		o.logger.Info("Capability served", map[string]interface{}{
			"capability": string(capability),
			"provider":   name,
		})
		return &Result{
			Success:  true,
			Payload:  payload,
			Provider: provider.Label(),
		}, nil
	}

	o.logger.Error("All providers failed", map[string]interface{}{
		"capability": string(capability),
		"last_error": lastErr.Error(),
	})
	return nil, fmt.Errorf("%s", allProvidersFailedMessage)
}

// callProvider runs one attempt with panic containment. A panicking provider
// must degrade into a normal failure so the chain can continue.
func (o *Orchestrator) callProvider(ctx context.Context, provider Provider, remote bool, invoke func(ctx context.Context, p Provider) (interface{}, error)) (payload interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			payload = nil
			err = fmt.Errorf("provider %s panicked: %v", provider.GetProviderName(), r)
		}
	}()

	callCtx := ctx
	if remote && o.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	return invoke(callCtx, provider)
}
