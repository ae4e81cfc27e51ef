package quota

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps usage records in process memory. It is the default store
// for single-instance deployments and tests. The mutex serializes every
// check-and-consume, so concurrent calls for the same (user, feature) can
// never lose an increment or slip past the cap.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]*UsageRecord
}

// NewMemoryStore creates an empty in-memory usage store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string]*UsageRecord),
	}
}

// CheckAndConsume implements Store
func (s *MemoryStore) CheckAndConsume(_ context.Context, userID, feature string, limit int, now time.Time) (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userID + ":" + feature
	rec, ok := s.records[key]
	if !ok {
		rec = &UsageRecord{}
		s.records[key] = rec
	}

	today := dayStart(now)
	if rec.ResetDate.Before(today) {
		rec.Count = 0
		rec.ResetDate = today
	}

	if rec.Count >= limit {
		return false, rec.Count, nil
	}

	rec.Count++
	return true, rec.Count, nil
}

// Usage implements Store
func (s *MemoryStore) Usage(_ context.Context, userID, feature string, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[userID+":"+feature]
	if !ok {
		return 0, nil
	}

	if rec.ResetDate.Before(dayStart(now)) {
		return 0, nil
	}
	return rec.Count, nil
}
