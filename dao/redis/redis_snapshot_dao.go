package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NDNewell/earnings-analytics/db"
	"github.com/NDNewell/earnings-analytics/models"
)

const EARNINGS_SNAPSHOT_KEY_V1 = "earnings_snapshot_v1"

// RedisSnapshotDAO caches the raw record batch fetched from the
// upstream earnings API. Only the raw snapshot is cached; computed
// summaries are always rebuilt per request.
type RedisSnapshotDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisSnapshotDAO initializes a RedisSnapshotDAO with the Redis
// client and the expiry applied to stored snapshots.
func NewRedisSnapshotDAO(client db.RedisClient, ttl time.Duration) *RedisSnapshotDAO {
	return &RedisSnapshotDAO{client: client, ttl: ttl}
}

// GetSnapshot returns the cached batch, or (nil, nil) on a cache miss.
func (dao *RedisSnapshotDAO) GetSnapshot() ([]models.RawRecord, error) {
	str, err := dao.client.Get(EARNINGS_SNAPSHOT_KEY_V1)
	if err != nil {
		if errors.Is(err, db.ErrCacheMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get earnings snapshot from redis: %w", err)
	}
	var records []models.RawRecord
	if err := json.Unmarshal([]byte(str), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal earnings snapshot JSON: %w", err)
	}
	return records, nil
}

// SetSnapshot stores the batch under the snapshot key with the DAO's TTL.
func (dao *RedisSnapshotDAO) SetSnapshot(records []models.RawRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal earnings snapshot: %w", err)
	}
	if err := dao.client.SetWithTTL(EARNINGS_SNAPSHOT_KEY_V1, string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set earnings snapshot in redis: %w", err)
	}
	return nil
}

// DeleteSnapshot drops the cached batch so the next request refetches.
func (dao *RedisSnapshotDAO) DeleteSnapshot() error {
	if err := dao.client.Del(EARNINGS_SNAPSHOT_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete earnings snapshot key: %w", err)
	}
	return nil
}
