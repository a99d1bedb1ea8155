package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/mohammed-rihan-c-234/LifeLine-Blood-Donations/internal/domain"
)

// HospitalCache keeps the hospital directory hot for geo matching. A miss
// returns (nil, nil) so callers fall through to the repository.
type HospitalCache struct {
	client *goredis.Client
	key    string
}

func NewHospitalCache(r *Redis) *HospitalCache {
	return &HospitalCache{
		client: r.Client,
		key:    "hospitals:directory",
	}
}

func (c *HospitalCache) Get(ctx context.Context) ([]domain.Hospital, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var hospitals []domain.Hospital
	if err := json.Unmarshal(data, &hospitals); err != nil {
		return nil, err
	}

	return hospitals, nil
}

func (c *HospitalCache) Set(ctx context.Context, hospitals []domain.Hospital, ttl time.Duration) error {
	b, err := json.Marshal(hospitals)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

// Invalidate drops the cached directory after hospital CRUD.
func (c *HospitalCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
