package creaturecache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-creature-lookup/internal/redis"
)

// VerifyInput defines the input for checking cached creatures in Redis
type VerifyInput struct {
	Client redisclient.Client
	// Delete removes the bad entries it finds
	Delete bool
}

// VerifyOutput reports what a verification pass found
type VerifyOutput struct {
	Checked int
	// Bad maps lookup keys to why the entry is unusable
	Bad     map[string]string
	Deleted []string
}

// Verify scans every cached creature and reports entries that no longer
// decode or lack fields needed for display. Such entries would otherwise
// be served as hits.
func Verify(ctx context.Context, input VerifyInput) (*VerifyOutput, error) {
	if input.Client == nil {
		return nil, errors.InvalidArgument("client cannot be nil")
	}

	out := &VerifyOutput{Bad: make(map[string]string)}

	iter := input.Client.Scan(ctx, 0, creatureKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		redisKey := iter.Val()
		out.Checked++

		data, err := input.Client.Get(ctx, redisKey).Result()
		if err != nil {
			slog.WarnContext(ctx, "Failed to read cached creature", "key", redisKey, "error", err)
			continue
		}

		if reason := badEntry(data); reason != "" {
			out.Bad[strings.TrimPrefix(redisKey, creatureKeyPrefix)] = reason
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan cached creatures")
	}

	if !input.Delete {
		return out, nil
	}

	for key := range out.Bad {
		if err := input.Client.Del(ctx, GetKey(key)).Err(); err != nil {
			return out, errors.Wrapf(err, "failed to delete cached creature %q", key)
		}
		out.Deleted = append(out.Deleted, key)
	}

	return out, nil
}

func badEntry(data string) string {
	var c creature.Creature
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return "invalid JSON"
	}
	if missing := c.MissingFields(); len(missing) > 0 {
		return "missing " + strings.Join(missing, ", ")
	}
	return ""
}
