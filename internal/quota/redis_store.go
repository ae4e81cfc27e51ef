package quota

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"jobsphere-ai/internal/config"
)

// checkAndConsumeScript performs day rollover, limit check, and increment as
// one atomic server-side step. KEYS[1] is the user's usage hash; ARGV carries
// the count field, reset field, midnight of today (unix seconds), and the cap.
// Returns {admitted, count}.
var checkAndConsumeScript = redis.NewScript(`
local count = tonumber(redis.call('HGET', KEYS[1], ARGV[1]) or '0')
local reset = tonumber(redis.call('HGET', KEYS[1], ARGV[2]) or '0')
local today = tonumber(ARGV[3])
local limit = tonumber(ARGV[4])

if reset < today then
  count = 0
  reset = today
end

if count >= limit then
  redis.call('HSET', KEYS[1], ARGV[1], count, ARGV[2], reset)
  return {0, count}
end

count = count + 1
redis.call('HSET', KEYS[1], ARGV[1], count, ARGV[2], reset)
return {1, count}
`)

// RedisStore persists usage records in a Redis hash per user, one
// <feature>Count / <feature>ResetDate field pair per feature
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a usage store backed by the configured Redis instance
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	opts.DB = cfg.Redis.DB
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &RedisStore{client: redis.NewClient(opts)}, nil
}

// Ping tests the Redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// CheckAndConsume implements Store via the atomic Lua script
func (s *RedisStore) CheckAndConsume(ctx context.Context, userID, feature string, limit int, now time.Time) (bool, int, error) {
	res, err := checkAndConsumeScript.Run(ctx, s.client,
		[]string{usageKey(userID)},
		countField(feature),
		resetField(feature),
		dayStart(now).Unix(),
		limit,
	).Int64Slice()
	if err != nil {
		return false, 0, fmt.Errorf("failed to update usage record: %w", err)
	}
	if len(res) != 2 {
		return false, 0, fmt.Errorf("unexpected usage script reply: %v", res)
	}

	return res[0] == 1, int(res[1]), nil
}

// Usage implements Store; rollover is applied in the reply without writing
func (s *RedisStore) Usage(ctx context.Context, userID, feature string, now time.Time) (int, error) {
	vals, err := s.client.HMGet(ctx, usageKey(userID), countField(feature), resetField(feature)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read usage record: %w", err)
	}

	count := parseIntField(vals[0])
	reset := parseIntField(vals[1])

	if time.Unix(int64(reset), 0).Before(dayStart(now)) {
		return 0, nil
	}
	return count, nil
}

func usageKey(userID string) string {
	return "aiusage:" + userID
}

func countField(feature string) string {
	return feature + "Count"
}

func resetField(feature string) string {
	return feature + "ResetDate"
}

func parseIntField(v interface{}) int {
	str, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(str)
	if err != nil {
		return 0
	}
	return n
}
