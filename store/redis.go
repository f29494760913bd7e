package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	docKeyPrefix   = "doc:"
	collectionsKey = "collections"
)

// RedisStore keeps JSON documents under doc:<collection>:<id>.
type RedisStore struct {
	rdb *redis.Client
}

func OpenRedis(ctx context.Context, rawURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStore(rdb), nil
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func docKey(collection, id string) string {
	return docKeyPrefix + collection + ":" + id
}

func (r *RedisStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", collection, err)
	}

	id := uuid.NewString()
	_, err = r.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, docKey(collection, id), data, 0)
		pipe.SAdd(ctx, collectionsKey, collection)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	return id, nil
}

func (r *RedisStore) FindOne(ctx context.Context, collection, id string, out any) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	data, err := r.rdb.Get(ctx, docKey(collection, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find %s/%s: %w", collection, id, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

func (r *RedisStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]any) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	key := docKey(collection, id)

	// Optimistic read-modify-write under WATCH, retried on conflict.
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		for k, v := range fields {
			doc[k] = v
		}
		updated, err := json.Marshal(doc)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	for attempt := 0; attempt < 3; attempt++ {
		err := r.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("update %s/%s: %w", collection, id, err)
		}
		return err
	}
	return fmt.Errorf("update %s/%s: %w", collection, id, redis.TxFailedErr)
}

func (r *RedisStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	names, err := r.rdb.SMembers(ctx, collectionsKey).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (r *RedisStore) Close(context.Context) error {
	return r.rdb.Close()
}
