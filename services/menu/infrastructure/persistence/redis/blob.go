// Package redis stores the menu document as a single Redis string value.
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ghuser/menuboard/pkg/cache"
)

// ErrNoDocument is returned by Load when the key does not exist.
var ErrNoDocument = errors.New("redis: no menu document")

// Blob keeps the whole menu under one key, without expiry.
type Blob struct {
	client *cache.RedisClient
	key    string
}

// New returns a Blob storing the menu under key.
func New(client *cache.RedisClient, key string) *Blob {
	return &Blob{client: client, key: key}
}

func (b *Blob) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Client().Get(ctx, b.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("%w: key %q", ErrNoDocument, b.key)
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", b.key, err)
	}
	return data, nil
}

func (b *Blob) Store(ctx context.Context, data []byte) error {
	if err := b.client.Client().Set(ctx, b.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", b.key, err)
	}
	return nil
}

func (b *Blob) CreateIfAbsent(ctx context.Context, data []byte) (bool, error) {
	created, err := b.client.Client().SetNX(ctx, b.key, data, 0).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", b.key, err)
	}
	return created, nil
}

func (b *Blob) Ping(ctx context.Context) error {
	return b.client.Ping(ctx)
}
