// Package creaturecache provides storage for previously fetched creatures
package creaturecache

//go:generate mockgen -destination=mock/mock_repository.go -package=creaturecachemock github.com/KirkDiggler/rpg-creature-lookup/internal/repositories/creature_cache Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

// Repository defines the interface for cached creature lookups
type Repository interface {
	// Get retrieves a cached creature by lookup key
	// Returns errors.InvalidArgument for an empty key
	// Returns errors.NotFound on a miss or an expired entry
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores a creature under a lookup key until TTL elapses
	// Returns errors.InvalidArgument for an empty key or nil creature
	// Returns errors.Internal for storage failures
	Put(ctx context.Context, input PutInput) (*PutOutput, error)
}

// GetInput defines the input for getting a cached creature
type GetInput struct {
	Key string
}

// GetOutput defines the output for getting a cached creature
type GetOutput struct {
	Creature *creature.Creature
}

// PutInput defines the input for caching a creature
type PutInput struct {
	Key      string
	Creature *creature.Creature
	// TTL of zero keeps the entry until evicted by the store
	TTL time.Duration
}

// PutOutput defines the output for caching a creature
type PutOutput struct{}

const (
	errKeyEmpty      = "cache key cannot be empty"
	errCreatureEmpty = "creature cannot be nil"
)
