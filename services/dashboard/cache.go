package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"servineo/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const jobsKeyPrefix = "dashboard:jobs:"

// DefaultCacheTTL bounds how long tab and page changes reuse one job list.
const DefaultCacheTTL = 5 * time.Minute

// CachedJobSource keeps each provider's job list in Redis so switching tabs
// or pages filters one snapshot instead of refetching it.
type CachedJobSource struct {
	source JobSource
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedJobSource(source JobSource, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedJobSource {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.L()
	}
	return &CachedJobSource{source: source, client: client, ttl: ttl, logger: logger}
}

// GetProviderJobs serves the cached list, loading it from source on a miss.
// Failed loads are not cached.
func (s *CachedJobSource) GetProviderJobs(ctx context.Context, providerID string) ([]models.JobRecord, error) {
	key := jobsKeyPrefix + providerID
	data, err := s.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var jobs []models.JobRecord
		if err := json.Unmarshal(data, &jobs); err == nil {
			return jobs, nil
		}
		s.logger.Warn("Dropping unreadable cached job list", zap.String("providerID", providerID))
	case err != redis.Nil:
		s.logger.Warn("Job list cache unavailable", zap.String("providerID", providerID), zap.Error(err))
	}

	jobs, err := s.source.GetProviderJobs(ctx, providerID)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(jobs)
	if err != nil {
		return jobs, nil
	}
	if err := s.client.Set(ctx, key, b, s.ttl).Err(); err != nil {
		s.logger.Warn("Failed to cache job list", zap.String("providerID", providerID), zap.Error(err))
	}
	return jobs, nil
}

// Invalidate drops the cached list so the next read reloads it.
func (s *CachedJobSource) Invalidate(ctx context.Context, providerID string) error {
	return s.client.Del(ctx, jobsKeyPrefix+providerID).Err()
}
