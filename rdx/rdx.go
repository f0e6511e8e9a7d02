package rdx

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client used for response caching. Nil when Redis
// is not configured; callers must treat cache errors as misses.
var Conn *redis.Client

func Init(addr string) {
	if addr == "" {
		return
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Conn.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, caching disabled: %v", addr, err)
		Conn = nil
	}
}

func Get(ctx context.Context, key string) (string, bool) {
	if Conn == nil {
		return "", false
	}
	val, err := Conn.Get(ctx, key).Result()
	if err != nil || val == "" {
		return "", false
	}
	return val, true
}

func Set(ctx context.Context, key, val string, ttl time.Duration) {
	if Conn == nil {
		return
	}
	_ = Conn.Set(ctx, key, val, ttl).Err()
}

func Del(ctx context.Context, keys ...string) {
	if Conn == nil {
		return
	}
	_ = Conn.Del(ctx, keys...).Err()
}
