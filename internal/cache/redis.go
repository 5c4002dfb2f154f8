package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/onyxlab/onyx/internal/domain/model"
)

const keyPrefix = "material:public:"

// RedisCache keeps public material projections in Redis with a TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps an established redis client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCache{client: client, ttl: ttl}
}

type cachedMaterial struct {
	ID       int64    `json:"id"`
	PublicID string   `json:"publicId"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags"`
}

func cacheKey(publicID string) string {
	return keyPrefix + publicID
}

func encodeMaterial(m *model.Material) ([]byte, error) {
	return json.Marshal(cachedMaterial{
		ID:       m.ID,
		PublicID: m.PublicID,
		Title:    m.Title,
		Content:  m.Content,
		Tags:     m.Tags,
	})
}

func decodeMaterial(data []byte) (*model.Material, error) {
	var c cachedMaterial
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &model.Material{
		ID:       c.ID,
		PublicID: c.PublicID,
		Title:    c.Title,
		Content:  c.Content,
		Tags:     c.Tags,
	}, nil
}

// Get loads a cached projection, reporting a miss as (nil, nil).
func (c *RedisCache) Get(ctx context.Context, publicID string) (*model.Material, error) {
	data, err := c.client.Get(ctx, cacheKey(publicID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return decodeMaterial(data)
}

// Set stores a projection under the material's public id.
func (c *RedisCache) Set(ctx context.Context, material *model.Material) error {
	data, err := encodeMaterial(material)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(material.PublicID), data, c.ttl).Err()
}

// Invalidate drops a cached projection after an update or delete.
func (c *RedisCache) Invalidate(ctx context.Context, publicID string) error {
	return c.client.Del(ctx, cacheKey(publicID)).Err()
}
