package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	creaturecache "github.com/KirkDiggler/rpg-creature-lookup/internal/repositories/creature_cache"
)

var verifyDelete bool

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the Redis creature cache",
}

var cacheVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Find cached creatures that can no longer be served",
	Long: `Scan the Redis creature cache for entries that fail to decode or have no id.
With --delete they are removed.`,
	RunE: runCacheVerify,
}

func init() {
	cacheVerifyCmd.Flags().BoolVar(&verifyDelete, "delete", false, "Delete the bad entries")
	cacheCmd.AddCommand(cacheVerifyCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheVerify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	rdb, cleanup, err := openRedis(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := creaturecache.Verify(ctx, creaturecache.VerifyInput{
		Client: rdb,
		Delete: verifyDelete,
	})
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(result.Bad))
	for key := range result.Bad {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(out, "Checked %d cached creatures, %d bad\n", result.Checked, len(keys))
	for _, key := range keys {
		fmt.Fprintf(out, "  %s: %s\n", key, result.Bad[key])
	}
	if verifyDelete {
		fmt.Fprintf(out, "Deleted %d\n", len(result.Deleted))
	}
	return nil
}
