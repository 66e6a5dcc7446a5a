package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stores each record as a hash at <prefix>health_check:<id>
// and indexes the IDs by timestamp in the sorted set <prefix>health_check.
type Redis struct {
	client *redis.Client
	prefix string
	ids    *ids
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		ids:    newIDs(),
	}
}

func (r *Redis) indexKey() string {
	return r.prefix + "health_check"
}

func (r *Redis) recordKey(id string) string {
	return r.prefix + "health_check:" + id
}

func (r *Redis) Create(ctx context.Context, hc HealthCheck) (HealthCheck, error) {
	if err := ctx.Err(); err != nil {
		return HealthCheck{}, err
	}
	hc, err := r.ids.prepare(hc)
	if err != nil {
		return HealthCheck{}, err
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, r.recordKey(hc.ID),
			"id", hc.ID,
			"timestamp", hc.Timestamp.Format(time.RFC3339Nano),
		)
		p.ZAdd(ctx, r.indexKey(), redis.Z{
			Score:  float64(hc.Timestamp.UnixMilli()),
			Member: hc.ID,
		})
		return nil
	})
	if err != nil {
		return HealthCheck{}, fmt.Errorf("store health check %s: %w", hc.ID, err)
	}
	return hc, nil
}

func (r *Redis) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := r.client.ZCard(ctx, r.indexKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count health checks: %w", err)
	}
	return n, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
