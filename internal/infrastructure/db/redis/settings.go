package redis

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const settingPrefix = "settings:"

// SettingStore reads runtime settings from Redis, falling back to the
// defaults captured at startup when a key has never been set. Operators
// flip a setting with e.g. SET settings:registration.enabled true —
// no redeploy needed.
type SettingStore struct {
	client   *redis.Client
	defaults map[string]bool
}

// NewSettingStore wraps the given Redis client. defaults supplies the
// value per key when Redis holds none.
func NewSettingStore(client *redis.Client, defaults map[string]bool) *SettingStore {
	return &SettingStore{client: client, defaults: defaults}
}

// Bool reads a boolean setting. Accepted stored values follow
// strconv.ParseBool ("true", "1", "false", "0", ...). A Redis failure is
// returned to the caller rather than silently falling back, so gated
// features fail closed.
func (s *SettingStore) Bool(ctx context.Context, key string) (bool, error) {
	val, err := s.client.Get(ctx, settingPrefix+key).Result()
	if err == redis.Nil {
		return s.defaults[key], nil
	}
	if err != nil {
		return false, fmt.Errorf("read setting %s: %w", key, err)
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("setting %s holds %q, want a boolean", key, val)
	}
	return parsed, nil
}
