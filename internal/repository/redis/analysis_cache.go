package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brandBOS/business/rotation"
	"brandBOS/domain"

	"github.com/redis/go-redis/v9"
)

const analysisTTL = 7 * 24 * time.Hour

// AnalysisCache keeps the latest rotation analysis per account so
// dashboards can read it without hitting Postgres.
type AnalysisCache struct {
	client *redis.Client
}

var _ rotation.AnalysisCache = (*AnalysisCache)(nil)

func NewAnalysisCache(client *redis.Client) *AnalysisCache {
	return &AnalysisCache{
		client: client,
	}
}

func (c *AnalysisCache) StoreLatest(ctx context.Context, accountID string, rec domain.RotationRecommendation) error {
	key := fmt.Sprintf("rotation:latest:%s", accountID)

	jsonData, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendation: %w", err)
	}

	if err := c.client.Set(ctx, key, jsonData, analysisTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache recommendation: %w", err)
	}

	return nil
}

func (c *AnalysisCache) GetLatest(ctx context.Context, accountID string) (domain.RotationRecommendation, bool, error) {
	key := fmt.Sprintf("rotation:latest:%s", accountID)

	jsonData, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.RotationRecommendation{}, false, nil
		}
		return domain.RotationRecommendation{}, false, fmt.Errorf("failed to read cached recommendation: %w", err)
	}

	var rec domain.RotationRecommendation
	if err := json.Unmarshal(jsonData, &rec); err != nil {
		return domain.RotationRecommendation{}, false, fmt.Errorf("failed to unmarshal cached recommendation: %w", err)
	}

	return rec, true, nil
}
