package db

import (
	"context"
	"log"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerRedisClient guards another RedisClient with a circuit breaker so a
// dead Redis fails fast instead of stalling every request.
type BreakerRedisClient struct {
	next RedisClient
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerRedisClient trips after failures consecutive errors and stays
// open for openFor.
func NewBreakerRedisClient(next RedisClient, failures int, openFor time.Duration) *BreakerRedisClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "redis",
		Timeout: openFor,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(failures)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[BreakerRedisClient] breaker %s: %s -> %s", name, from, to)
		},
	})
	return &BreakerRedisClient{next: next, cb: cb}
}

func (b *BreakerRedisClient) run(fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, fn()
	})
	return err
}

func (b *BreakerRedisClient) PushCapped(key, value string, max int64, ttl time.Duration) error {
	return b.run(func() error { return b.next.PushCapped(key, value, max, ttl) })
}

func (b *BreakerRedisClient) ListRange(key string) ([]string, error) {
	var vals []string
	err := b.run(func() error {
		var err error
		vals, err = b.next.ListRange(key)
		return err
	})
	return vals, err
}

func (b *BreakerRedisClient) Del(key string) error {
	return b.run(func() error { return b.next.Del(key) })
}

func (b *BreakerRedisClient) GetContext() context.Context {
	return b.next.GetContext()
}

// Ping bypasses the breaker so health checks see the real state.
func (b *BreakerRedisClient) Ping() error {
	return b.next.Ping()
}
