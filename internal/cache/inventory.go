// backend-go/internal/cache/inventory.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mediaexclusive/inventory-manager/backend-go/internal/config"
	"github.com/mediaexclusive/inventory-manager/backend-go/internal/domain"
)

const (
	inventorySnapshotKey = "inventory:snapshot"
	defaultInventoryTTL  = time.Minute
)

// InventoryCache holds the most recent full inventory payload. Writes
// to the sheet must invalidate it so a read never outlives one TTL
// past the last known write.
type InventoryCache interface {
	Get(ctx context.Context) (*domain.Inventory, bool, error)
	Set(ctx context.Context, inv *domain.Inventory) error
	Invalidate(ctx context.Context) error
}

type redisInventoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopInventoryCache struct{}

func NewInventoryCache(cfg config.CacheConfig) (InventoryCache, error) {
	if !cfg.Enabled {
		return &noopInventoryCache{}, nil
	}

	opts, err := buildRedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	ttl := time.Duration(cfg.InventoryTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = defaultInventoryTTL
	}

	return &redisInventoryCache{client: client, ttl: ttl}, nil
}

func NewNoopInventoryCache() InventoryCache {
	return &noopInventoryCache{}
}

func (c *redisInventoryCache) Get(ctx context.Context) (*domain.Inventory, bool, error) {
	payload, err := c.client.Get(ctx, inventorySnapshotKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var inv domain.Inventory
	if err := json.Unmarshal(payload, &inv); err != nil {
		return nil, false, fmt.Errorf("decode inventory snapshot: %w", err)
	}
	return &inv, true, nil
}

func (c *redisInventoryCache) Set(ctx context.Context, inv *domain.Inventory) error {
	payload, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode inventory snapshot: %w", err)
	}
	if err := c.client.Set(ctx, inventorySnapshotKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisInventoryCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, inventorySnapshotKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func (n *noopInventoryCache) Get(ctx context.Context) (*domain.Inventory, bool, error) {
	return nil, false, nil
}

func (n *noopInventoryCache) Set(ctx context.Context, inv *domain.Inventory) error {
	return nil
}

func (n *noopInventoryCache) Invalidate(ctx context.Context) error {
	return nil
}

func buildRedisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opt, nil
	}

	host := cfg.RedisHost
	if host == "" {
		host = "127.0.0.1"
	}

	port := cfg.RedisPort
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:     net.JoinHostPort(host, port),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, nil
}
