package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/catalog"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/orchestrators/search"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [id or name]",
	Short: "List the known creatures or look one up",
	Long:  `Without an argument, list every creature the service is known to serve.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for _, e := range catalog.All() {
			fmt.Fprintf(out, "%3d  %s\n", e.ID, e.Name)
		}
		return nil
	}

	e, err := catalog.Lookup(search.Classify(args[0]))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%3d  %s\n", e.ID, e.Name)
	return nil
}
