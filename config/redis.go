package config

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"golang.org/x/net/context"
)

var RedisClient *redis.Client
var ctx = context.Background()

// InitRedis initializes the Redis client used for AI response caching.
func InitRedis(config Config) error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     config.GetRedisConnString(),
		Password: config.RedisPassword,
		DB:       config.RedisDB,
	})

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("redis ping failed: %v", err)
	}

	return nil
}
