package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
)

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewGoRedisClient wraps client and waits for Redis to answer a PING,
// retrying with exponential backoff up to maxRetries times.
func NewGoRedisClient(ctx context.Context, client *redis.Client, maxRetries int, maxElapsed time.Duration) (*GoRedisClient, error) {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed

	err := backoff.Retry(func() error {
		if _, err := client.Ping(ctx).Result(); err != nil {
			log.Printf("[GoRedisClient] Redis not reachable yet: %v", err)
			return err
		}
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(bo, uint64(maxRetries)), ctx))
	if err != nil {
		return nil, fmt.Errorf("could not connect to Redis after retries: %w", err)
	}
	log.Println("[GoRedisClient] Connected to Redis")

	return &GoRedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

// PushCapped runs LPUSH, LTRIM and EXPIRE in one transaction.
func (r *GoRedisClient) PushCapped(key, value string, max int64, ttl time.Duration) error {
	_, err := r.client.TxPipelined(r.ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(r.ctx, key, value)
		pipe.LTrim(r.ctx, key, 0, max-1)
		if ttl > 0 {
			pipe.Expire(r.ctx, key, ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push to list %s: %w", key, err)
	}
	return nil
}

func (r *GoRedisClient) ListRange(key string) ([]string, error) {
	return r.client.LRange(r.ctx, key, 0, -1).Result()
}

func (r *GoRedisClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *GoRedisClient) GetContext() context.Context {
	return r.ctx
}

func (r *GoRedisClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

// Close releases the underlying connection pool.
func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
