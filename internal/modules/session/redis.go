// README: Session store backed by Redis (JSON values with TTL).
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "trip:session:%s"
	latestKey        = "trip:session:latest"
)

// RedisStore keeps sessions in Redis so multiple instances can serve the
// choose call for a plan another instance produced.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.redis.Pipeline()
	pipe.Set(ctx, sessionKey(sess.ID), payload, s.ttl)
	pipe.Set(ctx, latestKey, sess.ID, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.redis.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Latest(ctx context.Context) (*Session, error) {
	id, err := s.redis.Get(ctx, latestKey).Result()
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func sessionKey(id string) string {
	return fmt.Sprintf(sessionKeyPrefix, id)
}
