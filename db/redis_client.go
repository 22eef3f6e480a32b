package db

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key does not exist. Callers
// use it to tell a cold cache apart from a Redis failure.
var ErrCacheMiss = errors.New("cache miss: key not found")

// RedisClient defines the methods available in the cache client.
type RedisClient interface {
	Set(key, value string) error
	SetWithTTL(key, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Del(key string) error
	Keys(pattern string) ([]string, error)
	Ping() error
	GetContext() context.Context
}
