package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	redis.Cmdable
	data   map[string]string
	getErr error
	setErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	if expiration != 0 {
		return redis.NewStatusResult("", fmt.Errorf("unexpected expiration %v", expiration))
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	default:
		return redis.NewStatusResult("", fmt.Errorf("unexpected value type %T", value))
	}
	return redis.NewStatusResult("OK", nil)
}

func TestRedisDocumentStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		store := NewRedisDocumentStore(newFakeRedis())
		got, found, err := store.Get(ctx, "mixto_v1_clients")
		if err != nil || found || got != nil {
			t.Fatalf("expected not found, got %s found=%v err=%v", got, found, err)
		}
	})

	t.Run("put then get", func(t *testing.T) {
		store := NewRedisDocumentStore(newFakeRedis())
		if err := store.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := store.Put(ctx, "k", []byte(`{"a":2}`)); err != nil {
			t.Fatalf("overwrite: %v", err)
		}
		got, found, err := store.Get(ctx, "k")
		if err != nil || !found || string(got) != `{"a":2}` {
			t.Fatalf("unexpected get: %s %v %v", got, found, err)
		}
	})

	t.Run("client errors surface", func(t *testing.T) {
		boom := errors.New("connection refused")
		rdb := newFakeRedis()
		rdb.getErr = boom
		rdb.setErr = boom
		store := NewRedisDocumentStore(rdb)

		if _, found, err := store.Get(ctx, "k"); !errors.Is(err, boom) || found {
			t.Fatalf("expected get error, got found=%v err=%v", found, err)
		}
		if err := store.Put(ctx, "k", []byte("{}")); !errors.Is(err, boom) {
			t.Fatalf("expected put error, got %v", err)
		}
	})
}
