// Package testutils provides helpers shared by package tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis server and a client for it.
// Both are closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	})

	return client, mr
}
