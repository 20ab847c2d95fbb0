package db

import (
	"context"
	"time"
)

// RedisClient defines the methods the DAOs need from Redis.
type RedisClient interface {
	// PushCapped prepends value to the list at key, keeps only the newest
	// max entries and refreshes the key's TTL (0 means no expiry).
	PushCapped(key, value string, max int64, ttl time.Duration) error
	// ListRange returns the whole list at key, newest first.
	ListRange(key string) ([]string, error)
	GetContext() context.Context
	Ping() error
	Del(key string) error
}
