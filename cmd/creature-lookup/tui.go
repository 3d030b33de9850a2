package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/tui"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Search interactively in the terminal",
	Long:  `Type a name or id and press enter to search. Esc clears, ctrl-c quits.`,
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "Write logs to this file instead of discarding them")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, cleanup, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	screen, err := tui.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to open terminal")
	}
	defer screen.Fini()

	app, err := tui.New(&tui.Config{
		Screen: screen,
		Client: client,
	})
	if err != nil {
		return err
	}

	return app.Run(ctx)
}
