package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"print_shop/internal/models"

	"github.com/go-redis/redis/v8"
)

// Client caches resolved organization preferences so the validator context
// does not hit the database on every transition request.
type Client struct {
	rdb *redis.Client
	ttl time.Duration
}

func Initialize(redisURL string, ttl time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, ttl: ttl}, nil
}

func preferencesKey(orgID uint) string {
	return fmt.Sprintf("org_prefs:%d", orgID)
}

// GetPreferences returns the cached preferences or (nil, nil) on a miss.
func (c *Client) GetPreferences(orgID uint) (*models.OrderPreferences, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, preferencesKey(orgID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	var prefs models.OrderPreferences
	if err := json.Unmarshal([]byte(val), &prefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	return &prefs, nil
}

func (c *Client) SetPreferences(orgID uint, prefs *models.OrderPreferences) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	return c.rdb.Set(ctx, preferencesKey(orgID), jsonData, c.ttl).Err()
}

func (c *Client) DeletePreferences(orgID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, preferencesKey(orgID)).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
