package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DoctorListKeyPrefix = "doctors:list:"

// DoctorListCache stores the raw upstream payload so a restarted process
// does not have to hit the upstream endpoint again within the TTL.
type DoctorListCache interface {
	Get(ctx context.Context) ([]byte, bool, error)
	Set(ctx context.Context, payload []byte) error
}

type redisDoctorListCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisDoctorListCache keys the payload by the upstream URL so two
// deployments pointing at different lists never share an entry.
func NewRedisDoctorListCache(client *redis.Client, upstreamURL string, ttl time.Duration) DoctorListCache {
	return &redisDoctorListCache{
		client: client,
		key:    DoctorListKeyPrefix + upstreamURL,
		ttl:    ttl,
	}
}

func (c *redisDoctorListCache) Get(ctx context.Context) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", c.key, err)
	}
	return payload, true, nil
}

func (c *redisDoctorListCache) Set(ctx context.Context, payload []byte) error {
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", c.key, err)
	}
	return nil
}

// NoopDoctorListCache is used when Redis is not configured.
type NoopDoctorListCache struct{}

func (NoopDoctorListCache) Get(ctx context.Context) ([]byte, bool, error) {
	return nil, false, nil
}

func (NoopDoctorListCache) Set(ctx context.Context, payload []byte) error {
	return nil
}
