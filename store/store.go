// Package store persists health check records.
package store

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/oklog/ulid"
	"github.com/redis/go-redis/v9"
)

// HealthCheck is one recorded health check call.
type HealthCheck struct {
	ID        string
	Timestamp time.Time
}

// Repository stores health check records.
type Repository interface {
	// Create stores a record, assigning an ID if it has none.
	Create(ctx context.Context, hc HealthCheck) (HealthCheck, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Close releases the underlying resources.
	Close() error
}

// ErrClosed is returned by operations on a closed repository.
var ErrClosed = errors.New("store: repository closed")

// Config selects and configures a Repository.
type Config struct {
	// memory or redis
	Kind          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// Open returns the repository selected by c.Kind.
// A redis repository is pinged before it is returned.
func Open(ctx context.Context, c Config) (Repository, error) {
	switch c.Kind {
	case "", "memory":
		return NewMemory(), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     c.RedisAddr,
			Password: c.RedisPassword,
			DB:       c.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("connect to redis %s: %w", c.RedisAddr, err)
		}
		return NewRedis(client, c.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("unknown repository kind %q", c.Kind)
	}
}

// ids hands out lexically sortable, monotonic record IDs.
type ids struct {
	mu      sync.Mutex
	entropy io.Reader
}

func newIDs() *ids {
	return &ids{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (g *ids) next(t time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	id, err := ulid.New(ulid.Timestamp(t), g.entropy)
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// prepare fills in the ID and timestamp of a new record.
func (g *ids) prepare(hc HealthCheck) (HealthCheck, error) {
	if hc.Timestamp.IsZero() {
		hc.Timestamp = time.Now()
	}
	if hc.ID == "" {
		id, err := g.next(hc.Timestamp)
		if err != nil {
			return HealthCheck{}, err
		}
		hc.ID = id
	}
	return hc, nil
}
