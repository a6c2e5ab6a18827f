// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"eventhub/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the generic cache client, or nil when redis is not initialized.
func GetCacheClient() *redis.Client {
	return CacheClient
}
