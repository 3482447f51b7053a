package database

import (
	"context"
	"log"

	"pos_cafe/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// OrdersChannel carries one message per committed order for the live feed.
const OrdersChannel = "orders:new"

func ConnectRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr: config.ConfigDefault("REDIS_ADDR", "localhost:6379"),
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		// The live feed and report cache degrade without redis; the POS
		// itself keeps working, so log instead of refusing to start.
		log.Printf("redis unavailable: %v", err)
	}
}
