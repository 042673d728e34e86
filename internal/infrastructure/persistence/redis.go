package persistence

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates the client backing the session store
func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}
