package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/littlesteps/media-go/internal/port"
	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetSignedRead(ctx context.Context, objectKey string) ([]byte, error) {
	log.Printf("getting cached signed read URL for object %q...", objectKey)

	val, err := c.client.Get(ctx, getCacheKey(objectKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	return val, nil
}

func (c *Cache) SetSignedRead(ctx context.Context, objectKey string, data []byte, validUntil time.Time) {
	log.Printf("caching signed read URL for object %q, valid until %s...", objectKey, validUntil.Format(time.RFC1123))

	// A failed write only costs a re-sign on the next read.
	if err := c.client.Set(ctx, getCacheKey(objectKey), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("redis set failed for object %q: %v", objectKey, err)
	}
}

func (c *Cache) DeleteSignedRead(ctx context.Context, objectKey string) error {
	log.Printf("deleting cached signed read URL for object %q...", objectKey)

	if err := c.client.Del(ctx, getCacheKey(objectKey)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(objectKey string) string {
	return "signedread:" + objectKey
}
