package quota

import (
	"context"
	"fmt"
	"math"
	"time"

	"jobsphere-ai/internal/logging"
	"jobsphere-ai/pkg/utils"
)

// Tracker gates AI capability calls behind a per-user, per-feature daily cap.
// It owns no counter state itself; all reads and writes go through the Store
// so the atomicity guarantee lives at the storage layer.
type Tracker struct {
	store  Store
	limit  int
	logger logging.Logger

	// now is swappable in tests to cross day boundaries
	now func() time.Time
}

// NewTracker creates a quota tracker with the given daily limit
func NewTracker(store Store, limit int) *Tracker {
	return &Tracker{
		store:  store,
		limit:  limit,
		logger: logging.GetGlobalLogger(),
		now:    time.Now,
	}
}

// Limit returns the configured daily cap
func (t *Tracker) Limit() int {
	return t.limit
}

// CheckAndConsume admits or rejects a capability call for (userID, feature),
// consuming one unit of today's quota on admission. A nil return means the
// call may proceed. Rejections are *utils.CustomError values: 429 when the
// cap is reached, 503 when the usage record cannot be updated (transient,
// never counted against the user).
func (t *Tracker) CheckAndConsume(ctx context.Context, userID, feature string) error {
	now := t.now()

	allowed, used, err := t.store.CheckAndConsume(ctx, userID, feature, t.limit, now)
	if err != nil {
		t.logger.Error("Quota store unavailable", map[string]interface{}{
			"user_id": userID,
			"feature": feature,
			"error":   err.Error(),
		})
		return utils.NewServiceUnavailableError("could not verify usage quota")
	}

	if !allowed {
		hoursLeft := hoursUntilReset(now)
		t.logger.Info("Daily quota exceeded", map[string]interface{}{
			"user_id": userID,
			"feature": feature,
			"used":    used,
			"limit":   t.limit,
		})
		return utils.NewQuotaExceededError(fmt.Sprintf(
			"Daily limit reached (%d/%d). Resets in %d hour%s.",
			t.limit, t.limit, hoursLeft, plural(hoursLeft),
		))
	}

	t.logger.Debug("Quota consumed", map[string]interface{}{
		"user_id": userID,
		"feature": feature,
		"used":    used,
		"limit":   t.limit,
	})
	return nil
}

// Ping verifies the backing store is reachable. Stores without a connection
// to probe (the memory store) always report healthy.
func (t *Tracker) Ping(ctx context.Context) error {
	if p, ok := t.store.(interface{ Ping(context.Context) error }); ok {
		return p.Ping(ctx)
	}
	return nil
}

// Usage reports {used, limit, remaining} for display without consuming quota
func (t *Tracker) Usage(ctx context.Context, userID, feature string) (used, limit, remaining int, err error) {
	used, err = t.store.Usage(ctx, userID, feature, t.now())
	if err != nil {
		return 0, t.limit, 0, utils.NewServiceUnavailableError("could not read usage quota")
	}

	remaining = t.limit - used
	if remaining < 0 {
		remaining = 0
	}
	return used, t.limit, remaining, nil
}

// hoursUntilReset computes whole hours until the next midnight, rounded up
func hoursUntilReset(now time.Time) int {
	nextMidnight := dayStart(now).AddDate(0, 0, 1)
	hours := int(math.Ceil(nextMidnight.Sub(now).Hours()))
	if hours < 1 {
		hours = 1
	}
	return hours
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
