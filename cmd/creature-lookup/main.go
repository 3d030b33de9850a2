// Package main is the entry point for the creature lookup
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "creature-lookup",
	Short: "Look up creatures by name or id",
	Long: `Creature lookup searches the creature service by name or numeric id and
shows the creature's types, special ability and base stats.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", ".env", "Optional file of CREATURE_* variables")
	flags.StringVar(&baseURL, "base-url", "", "Creature service base URL")
	flags.DurationVar(&timeout, "timeout", 0, "Fetch timeout, 0 waits indefinitely")
	flags.StringVar(&cacheMode, "cache", "", "Fetch cache: none, memory or redis")
	flags.DurationVar(&cacheTTL, "cache-ttl", 0, "How long cached creatures are kept")
	flags.StringVar(&redisAddr, "redis-addr", "", "Redis address for --cache=redis")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&otelEnabled, "otel", false, "Export traces over OTLP")

	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(catalogCmd)
}
