package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IT-Nick/quantum-quiz/internal/domain/model"
	"github.com/redis/go-redis/v9"
)

// RedisStore хранит сессии в Redis в виде JSON с TTL, который продлевается при каждом сохранении
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore подключается к Redis и проверяет соединение
func NewRedisStore(ctx context.Context, addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return &RedisStore{rdb: rdb, ttl: ttl}, nil
}

func redisKey(key string) string {
	return fmt.Sprintf("session:%s", key)
}

func (r *RedisStore) Get(ctx context.Context, key string) (*model.Session, error) {
	raw, err := r.rdb.Get(ctx, redisKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return decode(key, raw)
}

func (r *RedisStore) Save(ctx context.Context, s *model.Session) error {
	data, err := encode(s)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, redisKey(s.Key), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.Key, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (r *RedisStore) Close() error { return r.rdb.Close() }
