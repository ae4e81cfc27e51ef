package quota

import (
	"context"
	"time"
)

// Feature keys for the per-user daily counters. Each feature owns an
// independent <feature>Count / <feature>ResetDate pair in the store.
const (
	FeatureResumeAnalysis   = "resumeAnalysis"
	FeatureCoverLetter      = "coverLetter"
	FeaturePracticeTest     = "practiceTest"
	FeatureAnswerEvaluation = "answerEvaluation"
)

// UsageRecord is the persisted daily usage state for one (user, feature) pair
type UsageRecord struct {
	Count     int       `json:"count"`
	ResetDate time.Time `json:"resetDate"`
}

// Store persists per-user, per-feature usage counters.
//
// CheckAndConsume must be atomic: two concurrent calls for the same
// (userID, feature) must never both be admitted past the limit. Day rollover
// (resetting the counter the first time a call arrives on a new calendar day)
// happens inside the same atomic step, before the limit check.
type Store interface {
	// CheckAndConsume applies day rollover, then increments the counter
	// unless it has already reached limit. It returns whether the call was
	// admitted and the count after the operation.
	CheckAndConsume(ctx context.Context, userID, feature string, limit int, now time.Time) (allowed bool, used int, err error)

	// Usage reports the current count with rollover applied read-only;
	// it never mutates stored state.
	Usage(ctx context.Context, userID, feature string, now time.Time) (used int, err error)
}

// dayStart returns midnight of t's calendar day in t's location
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
