package creaturecache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/pkg/clock"
)

type cachedCreature struct {
	creature  creature.Creature
	expiresAt time.Time // zero means no expiry
}

type inMemoryRepository struct {
	clock clock.Clock

	mu      sync.RWMutex
	entries map[string]cachedCreature
}

// InMemoryConfig contains configuration for the in-process creature cache.
type InMemoryConfig struct {
	// Clock is optional, defaults to the system clock
	Clock clock.Clock
}

// NewInMemory creates a creature cache held in process memory
func NewInMemory(cfg *InMemoryConfig) Repository {
	c := clock.New()
	if cfg != nil && cfg.Clock != nil {
		c = cfg.Clock
	}

	return &inMemoryRepository{
		clock:   c,
		entries: make(map[string]cachedCreature),
	}
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	r.mu.RLock()
	entry, ok := r.entries[input.Key]
	r.mu.RUnlock()

	if !ok {
		return nil, errors.NotFoundf("creature %q not cached", input.Key)
	}

	if !entry.expiresAt.IsZero() && !r.clock.Now().Before(entry.expiresAt) {
		r.mu.Lock()
		// Only evict if nobody refreshed it in between.
		if current, ok := r.entries[input.Key]; ok && current.expiresAt.Equal(entry.expiresAt) {
			delete(r.entries, input.Key)
		}
		r.mu.Unlock()
		return nil, errors.NotFoundf("creature %q not cached", input.Key)
	}

	// Copy so callers cannot mutate the cached slices.
	out := cloneCreature(entry.creature)
	return &GetOutput{Creature: &out}, nil
}

func (r *inMemoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Creature == nil {
		return nil, errors.InvalidArgument(errCreatureEmpty)
	}

	entry := cachedCreature{creature: cloneCreature(*input.Creature)}
	if input.TTL > 0 {
		entry.expiresAt = r.clock.Now().Add(input.TTL)
	}

	r.mu.Lock()
	r.entries[input.Key] = entry
	r.mu.Unlock()

	return &PutOutput{}, nil
}

func cloneCreature(c creature.Creature) creature.Creature {
	out := c
	out.Types = slices.Clone(c.Types)
	out.Stats = slices.Clone(c.Stats)
	if c.Name != nil {
		name := *c.Name
		out.Name = &name
	}
	if c.Special != nil {
		special := *c.Special
		out.Special = &special
	}
	return out
}
