package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/closetcraft/wardrobe-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const defaultTTL = 10 * time.Minute

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Weather shifts suggestions, so the key includes the weather bucket
// along with the idea limit.
func buildKey(userID int64, maxIdeas int, weatherKey string) string {
	return fmt.Sprintf("sugg:user:%d:max:%d:wx:%s", userID, maxIdeas, weatherKey)
}

// WeatherKey buckets a snapshot for cache-key purposes.
func WeatherKey(w *domain.WeatherSnapshot) string {
	if w == nil {
		return "none"
	}
	return fmt.Sprintf("%d:%s", int(w.TemperatureCelsius), w.Condition)
}

// Get suggestions from cache; found is false on a miss.
func (c *Cache) Get(ctx context.Context, userID int64, maxIdeas int, weatherKey string) (domain.RecommendationBundle, bool, error) {
	key := buildKey(userID, maxIdeas, weatherKey)
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return domain.RecommendationBundle{}, false, nil
	}

	if err != nil {
		return domain.RecommendationBundle{}, false, fmt.Errorf("failed to get suggestions from cache: %w", err)
	}

	var bundle domain.RecommendationBundle
	if err := json.Unmarshal([]byte(val), &bundle); err != nil {
		return domain.RecommendationBundle{}, false, fmt.Errorf("failed to unmarshal suggestions %s: %w", key, err)
	}

	return bundle, true, nil
}

// Store suggestions in cache
func (c *Cache) Set(ctx context.Context, userID int64, maxIdeas int, weatherKey string, bundle domain.RecommendationBundle) error {
	key := buildKey(userID, maxIdeas, weatherKey)
	val, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set suggestions in cache: %w", err)
	}

	return nil
}

// Clear user cache: used when the wardrobe changes
func (c *Cache) ClearUserCache(ctx context.Context, userID int64) error {
	pattern := fmt.Sprintf("sugg:user:%d:*", userID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
