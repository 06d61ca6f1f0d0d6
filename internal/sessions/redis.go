package sessions

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps one key per live session so signout actually revokes the
// token server-side instead of waiting for its expiry.
type RedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisStore(addr, password string, db int, log *zap.Logger) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info("redis connected", zap.String("addr", addr))

	return &RedisStore{client: rdb, log: log}, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func sessionKey(jti string) string {
	return "session:" + jti
}

func (s *RedisStore) Put(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(jti), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

func (s *RedisStore) Active(ctx context.Context, jti string) (bool, error) {
	exists, err := s.client.Exists(ctx, sessionKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}

func (s *RedisStore) Delete(ctx context.Context, jti string) error {
	return s.client.Del(ctx, sessionKey(jti)).Err()
}
