package external

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	creaturecache "github.com/KirkDiggler/rpg-creature-lookup/internal/repositories/creature_cache"
)

// CachedConfig contains configuration for a caching creature client.
type CachedConfig struct {
	Client Client
	Cache  creaturecache.Repository
	// TTL for cached creatures (optional, defaults to 24 hours)
	TTL time.Duration
}

// Validate validates the CachedConfig and sets defaults if not provided.
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.Cache == nil {
		vb.RequiredField("Cache")
	}
	if cfg.TTL < 0 {
		vb.Fieldf("TTL", "cannot be negative: %s", cfg.TTL)
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	return nil
}

type cachedClient struct {
	next  Client
	cache creaturecache.Repository
	ttl   time.Duration
}

// NewCachedClient wraps a Client so successful lookups are served from cache
// until they expire. Failures are never cached, and cache errors fall
// through to the wrapped client.
func NewCachedClient(cfg *CachedConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cachedClient{
		next:  cfg.Client,
		cache: cfg.Cache,
		ttl:   cfg.TTL,
	}, nil
}

func (c *cachedClient) GetCreature(ctx context.Context, query creature.Query) (*creature.Creature, error) {
	key := query.PathValue()
	if key == "" {
		return c.next.GetCreature(ctx, query)
	}

	cached, err := c.cache.Get(ctx, creaturecache.GetInput{Key: key})
	switch {
	case err == nil:
		slog.DebugContext(ctx, "creature cache hit", "query", key)
		return cached.Creature, nil
	case errors.IsNotFound(err):
	default:
		slog.WarnContext(ctx, "creature cache read failed", "query", key, "error", err)
	}

	record, err := c.next.GetCreature(ctx, query)
	if err != nil {
		return nil, err
	}

	if record.Complete() {
		if _, err := c.cache.Put(ctx, creaturecache.PutInput{
			Key:      key,
			Creature: record,
			TTL:      c.ttl,
		}); err != nil {
			slog.WarnContext(ctx, "creature cache write failed", "query", key, "error", err)
		}
	}

	return record, nil
}
