package repository

import (
	"context"
	"errors"

	"mixto_gestao/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisDocumentStore keeps each document under its own Redis string key.
type RedisDocumentStore struct {
	rdb redis.Cmdable
}

var _ interfaces.IDocumentStore = (*RedisDocumentStore)(nil)

func NewRedisDocumentStore(rdb redis.Cmdable) *RedisDocumentStore {
	return &RedisDocumentStore{rdb: rdb}
}

func (s *RedisDocumentStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisDocumentStore) Put(ctx context.Context, key string, payload []byte) error {
	return s.rdb.Set(ctx, key, payload, 0).Err()
}
