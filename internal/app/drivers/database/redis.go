package database

import (
	"context"
	"fmt"
	"log"
	"medibook-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the session/payment-mapping cache. Redis holds only
// reconstructible state here, so a cold start after a flush is harmless.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:       fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:   driverConfig.Redis.Password,
		ClientName: "medibook-service",
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Successfully connected to redis")

	return rdb
}
