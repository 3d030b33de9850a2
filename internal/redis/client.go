// Package redis provides a wrapper around the go-redis client library
// for the creature cache.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior
type Options struct {
	Password string
	DB       int
	UseTLS   bool
}

// NewClient creates a Redis client for a single instance.
// No connection is made until the first command; use Ping to check.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:     endpoint,
		Password: opts.Password,
		DB:       opts.DB,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks that the server answers within timeout.
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return client.Ping(ctx).Err()
}
