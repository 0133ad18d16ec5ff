package lesson

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Sessions are abandoned server-side if untouched this long.
const sessionTTL = 2 * time.Hour

// RedisSessionStore keeps the per-player in-flight session as a JSON blob in
// Redis. Every mutation rewrites the blob and refreshes the TTL, so a client
// that vanishes mid-lesson leaves nothing behind.
type RedisSessionStore struct {
	redis  *redis.Client
	logger zerolog.Logger
}

// NewRedisSessionStore creates a session store backed by Redis.
func NewRedisSessionStore(rdb *redis.Client, logger zerolog.Logger) *RedisSessionStore {
	return &RedisSessionStore{
		redis:  rdb,
		logger: logger,
	}
}

func sessionKey(playerID uuid.UUID) string {
	return fmt.Sprintf("lesson:session:%s", playerID.String())
}

// Get retrieves the active session, nil when none exists.
func (s *RedisSessionStore) Get(ctx context.Context, playerID uuid.UUID) (*Session, error) {
	data, err := s.redis.Get(ctx, sessionKey(playerID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if sess.TheorySeen == nil {
		sess.TheorySeen = map[string]bool{}
	}
	if sess.Matched == nil {
		sess.Matched = map[string]bool{}
	}
	return &sess, nil
}

// Put stores the session, replacing any previous one.
func (s *RedisSessionStore) Put(ctx context.Context, playerID uuid.UUID, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.redis.Set(ctx, sessionKey(playerID), data, sessionTTL).Err()
}

// Delete removes the session.
func (s *RedisSessionStore) Delete(ctx context.Context, playerID uuid.UUID) error {
	return s.redis.Del(ctx, sessionKey(playerID)).Err()
}

// Lock acquires a short per-player lock so concurrent submissions from two
// connections cannot interleave a read-modify-write. Returns an unlock func.
func (s *RedisSessionStore) Lock(ctx context.Context, playerID uuid.UUID) (func() error, error) {
	key := fmt.Sprintf("lesson:lock:%s", playerID.String())
	lockValue := uuid.New().String()

	acquired, err := s.redis.SetNX(ctx, key, lockValue, 10*time.Second).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !acquired {
		return nil, fmt.Errorf("lock already held")
	}

	unlock := func() error {
		// Lua script ensures we only delete our own lock
		script := `
			if redis.call("get", KEYS[1]) == ARGV[1] then
				return redis.call("del", KEYS[1])
			else
				return 0
			end
		`
		return s.redis.Eval(ctx, script, []string{key}, lockValue).Err()
	}

	return unlock, nil
}
