package redis

import (
	"encoding/json"
	"fmt"
	"glucose-advisor/db"
	"glucose-advisor/models"
	"log"
	"time"
)

// READINGS_KEY_FORMAT is the per-session list holding recent readings.
const READINGS_KEY_FORMAT = "readings_v1:%s"

// RedisReadingsDAO keeps a capped per-session history of readings in Redis.
type RedisReadingsDAO struct {
	client  db.RedisClient
	maxSize int64
	ttl     time.Duration
}

// NewRedisReadingsDAO keeps at most maxSize readings per session; ttl bounds
// how long an idle session's history survives.
func NewRedisReadingsDAO(client db.RedisClient, maxSize int, ttl time.Duration) *RedisReadingsDAO {
	return &RedisReadingsDAO{client: client, maxSize: int64(maxSize), ttl: ttl}
}

// AppendReading records a reading, evicting the oldest beyond maxSize.
func (dao *RedisReadingsDAO) AppendReading(sessionID string, entry models.ReadingEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal reading for session %s: %w", sessionID, err)
	}
	key := fmt.Sprintf(READINGS_KEY_FORMAT, sessionID)
	if err := dao.client.PushCapped(key, string(data), dao.maxSize, dao.ttl); err != nil {
		return fmt.Errorf("failed to append reading in redis: %w", err)
	}
	return nil
}

// GetReadings returns the session's readings oldest first.
func (dao *RedisReadingsDAO) GetReadings(sessionID string) ([]models.ReadingEntry, error) {
	key := fmt.Sprintf(READINGS_KEY_FORMAT, sessionID)
	raw, err := dao.client.ListRange(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get readings from redis: %w", err)
	}

	entries := make([]models.ReadingEntry, 0, len(raw))
	// LPUSH stores newest first.
	for i := len(raw) - 1; i >= 0; i-- {
		var e models.ReadingEntry
		if err := json.Unmarshal([]byte(raw[i]), &e); err != nil {
			log.Printf("[RedisReadingsDAO] Skipping malformed reading in %s: %v", key, err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ClearReadings drops a session's history.
func (dao *RedisReadingsDAO) ClearReadings(sessionID string) error {
	key := fmt.Sprintf(READINGS_KEY_FORMAT, sessionID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete readings key %s: %w", key, err)
	}
	log.Printf("[RedisReadingsDAO] Cleared readings for session %s", sessionID)
	return nil
}

// Ping reports whether the backing store answers.
func (dao *RedisReadingsDAO) Ping() error {
	if err := dao.client.Ping(); err != nil {
		return fmt.Errorf("readings store unreachable: %w", err)
	}
	return nil
}
