package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/orchestrators/search"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/view"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup [name or id]",
	Short: "Search once and print the result",
	Long: `Search the creature service once. Input that is a number is looked up by id,
anything else by name.`,
	Example: `  creature-lookup lookup pyrolynx
  creature-lookup lookup 2 --json`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "Print the creature record as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client, cleanup, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	display := view.NewDisplay()
	orch, err := search.NewOrchestrator(&search.Config{
		Client: client,
		Sink:   display,
		Notifier: view.NotifierFunc(func(_ context.Context, message string) {
			fmt.Fprintln(cmd.ErrOrStderr(), message)
		}),
	})
	if err != nil {
		return err
	}

	display.SetInputValue(strings.Join(args, " "))
	out := orch.Search(ctx)
	if out.Err != nil {
		return errors.Wrapf(out.Err, "lookup %q failed", out.Query.PathValue())
	}

	if lookupJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out.Creature)
	}
	return view.WriteText(cmd.OutOrStdout(), display.State())
}
