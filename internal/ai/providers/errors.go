package providers

import (
	"fmt"
	"strings"
)

// normalizeRemoteError wraps a provider API error so that throttling failures
// are recognizable downstream by message inspection. Provider SDKs surface
// quota exhaustion in different vocabularies (429, RESOURCE_EXHAUSTED,
// rate_limit_error) and the orchestrator only looks at the message text.
func normalizeRemoteError(provider string, err error) error {
	msg := strings.ToLower(err.Error())
	for _, hint := range []string{"429", "rate_limit", "rate limit", "resource_exhausted", "quota", "too many requests"} {
		if strings.Contains(msg, hint) {
			return fmt.Errorf("%s rate limit exceeded: %w", provider, err)
		}
	}
	return fmt.Errorf("%s API call failed: %w", provider, err)
}
