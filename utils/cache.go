package utils

import (
	"context"
	"log"
	"time"

	"clinicportal/config"

	"github.com/go-redis/redis/v8"
)

// RoleCachePrefix namespaces cached admin-role flags.
const RoleCachePrefix = "role:"

// RoleCacheClient is the dedicated client for role-flag caching.
var RoleCacheClient *redis.Client

// InitRoleCache initializes the Redis client used for role-flag caching.
func InitRoleCache() {
	RoleCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisRoleDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := RoleCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Role Cache): %v", err)
	}
}

// GetRoleCacheClient returns the Redis client for role-flag caching.
func GetRoleCacheClient() *redis.Client {
	if RoleCacheClient == nil {
		InitRoleCache()
	}
	return RoleCacheClient
}
