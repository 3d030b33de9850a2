//go:build integration
// +build integration

package external_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
)

func TestGetCreature_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	client, err := external.New(&external.Config{})
	require.NoError(t, err)

	ctx := context.Background()

	testCases := []struct {
		name     string
		query    creature.Query
		wantID   int
		wantName string
	}{
		{
			name:     "by name",
			query:    creature.ByName("pyrolynx"),
			wantID:   1,
			wantName: "Pyrolynx",
		},
		{
			name:     "by id",
			query:    creature.ByID(2),
			wantID:   2,
			wantName: "Aquoroc",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := client.GetCreature(ctx, tc.query)
			require.NoError(t, err)
			require.NotNil(t, record)

			assert.Equal(t, tc.wantID, record.ID)
			assert.Equal(t, tc.wantName, record.GetName())
			assert.NotEmpty(t, record.Types)
			assert.NotEmpty(t, record.Stats)
		})
	}

	t.Run("unknown creature", func(t *testing.T) {
		_, err := client.GetCreature(ctx, creature.ByName("Red"))
		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
