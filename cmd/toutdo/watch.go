package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/toutdo"
	lifecycleadapter "github.com/aretw0/toutdo/pkg/adapters/lifecycle"
	"github.com/aretw0/toutdo/pkg/core"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print change events until interrupted",
	Long: `Watch follows the notes file for edits made by other processes and prints
every notes_updated event. Stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// Desktop alerts are printed to stderr; `toutdo notifications off` silences them.
		alerts := core.NotifierFunc(func(ctx context.Context, e core.Event) {
			fmt.Fprintf(os.Stderr, "notify: %s\n", e)
		})
		app := openApp(ctx, toutdo.WithAlertNotifier(alerts))
		defer app.Close()

		sub, err := app.Broker.Subscribe(ctx)
		if err != nil {
			fatal("Failed to subscribe", err)
		}

		source := lifecycleadapter.NewSource(sub)
		if err := source.Start(ctx); err != nil {
			fatal("Failed to start event source", err)
		}
		app.Follow(ctx)

		fmt.Fprintf(os.Stderr, "Watching %s (Ctrl+C to stop)\n", app.DataDir)
		for e := range source.Events() {
			fmt.Println(e.String())
			if ce, ok := e.(core.Event); ok && verbose {
				for _, n := range ce.Notes {
					fmt.Printf("  %d pinned=%v %s\n", n.ID, n.Pinned, n.Content)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
