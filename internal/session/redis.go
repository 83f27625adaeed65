// README: Redis session store; one JSON value per session key with a TTL.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripmate/internal/planner"
)

const sessionKeyPrefix = "trip:session:%s"

type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisStore keeps sessions for ttl after their last save; a zero ttl
// keeps them forever.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*planner.TripState, error) {
	val, err := s.redis.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	var st planner.TripState
	if err := json.Unmarshal(val, &st); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &st, nil
}

func (s *RedisStore) Save(ctx context.Context, st *planner.TripState) error {
	val, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", st.SessionID, err)
	}
	return s.redis.Set(ctx, sessionKey(st.SessionID), val, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	n, err := s.redis.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(sessionKeyPrefix, sessionID)
}
