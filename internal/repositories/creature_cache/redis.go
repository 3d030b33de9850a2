package creaturecache

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-creature-lookup/internal/redis"
)

const creatureKeyPrefix = "creature:lookup:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis creature cache.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed creature cache
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	result, err := r.client.Get(ctx, GetKey(input.Key)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature %q not cached", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to get cached creature %q", input.Key)
	}

	var data creature.Creature
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal cached creature %q", input.Key)
	}

	return &GetOutput{Creature: &data}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if input.Creature == nil {
		return nil, errors.InvalidArgument(errCreatureEmpty)
	}

	jsonData, err := json.Marshal(input.Creature)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature %q", input.Key)
	}

	if err := r.client.Set(ctx, GetKey(input.Key), jsonData, input.TTL).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to cache creature %q", input.Key)
	}

	return &PutOutput{}, nil
}

// GetKey returns the Redis key for a lookup key
// Exposed for testing purposes
func GetKey(key string) string {
	return fmt.Sprintf("%s%s", creatureKeyPrefix, key)
}
