package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"talenthub/internal/model"
)

// AssessmentCache is a read-through cache over the assessments collection,
// keyed by job id. Entries are invalidated on every save and delete.
type AssessmentCache interface {
	Set(ctx context.Context, assessment *model.Assessment) error
	Get(ctx context.Context, jobID string) (*model.Assessment, error)
	Delete(ctx context.Context, jobID string) error
}

type assessmentCache struct {
	client *redis.Client
}

func NewAssessmentCache(client *redis.Client) AssessmentCache {
	return &assessmentCache{
		client: client,
	}
}

func (c *assessmentCache) Set(ctx context.Context, assessment *model.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "assessment:"+assessment.JobID, data, 10*time.Minute).Err()
}

// Get returns nil without error on a cache miss.
func (c *assessmentCache) Get(ctx context.Context, jobID string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, "assessment:"+jobID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var assessment model.Assessment
	if err := json.Unmarshal([]byte(data), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *assessmentCache) Delete(ctx context.Context, jobID string) error {
	return c.client.Del(ctx, "assessment:"+jobID).Err()
}
