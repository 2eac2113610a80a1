package db

import (
	"context"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func InitRedis(addr, password, dbNum string) {
	n, _ := strconv.Atoi(dbNum)
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       n,
	})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Error connecting to Redis: %s", err)
	}
}
