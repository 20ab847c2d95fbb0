package db

import (
	"context"
	"log"
	"sync"
	"time"
)

// MockRedisClient simulates a Redis client for testing purposes.
type MockRedisClient struct {
	lists   map[string][]string // Lists, newest first
	mu      sync.RWMutex        // Mutex for thread-safe operations
	context context.Context
}

// NewMockRedisClient initializes a new MockRedisClient.
func NewMockRedisClient(ctx context.Context) *MockRedisClient {
	return &MockRedisClient{
		lists:   make(map[string][]string),
		context: ctx,
	}
}

// PushCapped prepends value and trims the list. TTL is ignored.
func (m *MockRedisClient) PushCapped(key, value string, max int64, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := append([]string{value}, m.lists[key]...)
	if int64(len(list)) > max {
		list = list[:max]
	}
	m.lists[key] = list
	return nil
}

// ListRange returns a copy of the list at key.
func (m *MockRedisClient) ListRange(key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.lists[key]))
	copy(out, m.lists[key])
	return out, nil
}

// GetContext returns the mock Redis client's context.
func (m *MockRedisClient) GetContext() context.Context {
	return m.context
}

// Ping simulates a Redis Ping operation.
func (m *MockRedisClient) Ping() error {
	// Always return nil (indicating Redis is "reachable").
	log.Println("MockRedisClient: Ping successful")
	return nil
}

func (m *MockRedisClient) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.lists, key)
	return nil
}
