package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "dashboard:stats"

// StatsCache keeps a short-lived JSON snapshot of the dashboard stats in
// Redis. A nil *StatsCache is valid and caches nothing, so callers never
// need to check whether Redis is configured.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func (s *StatsCache) Get(ctx context.Context) ([]byte, bool) {
	if s == nil || s.client == nil {
		return nil, false
	}
	payload, err := s.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

func (s *StatsCache) Set(ctx context.Context, payload []byte) {
	if s == nil || s.client == nil {
		return
	}
	s.client.Set(ctx, statsKey, payload, s.ttl)
}
