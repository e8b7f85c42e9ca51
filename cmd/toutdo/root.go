package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aretw0/toutdo"
)

var (
	verbose  bool
	dataDir  string
	readOnly bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "toutdo",
	Short: "A tiny local note store with pinning and reordering",
	Long: `toutdo keeps a list of short notes in a single JSON file.
Notes can be added, deleted, pinned and reordered; every change is
written atomically and pushed to subscribers as a notes_updated event.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory holding notes.json (default: $TOUTDO_DATA_DIR or the XDG data dir)")
	rootCmd.PersistentFlags().BoolVar(&readOnly, "read-only", false, "Never write to the notes file")
}

// openApp builds the application from the persistent flags.
func openApp(ctx context.Context, extra ...toutdo.Option) *toutdo.App {
	opts := append([]toutdo.Option{
		toutdo.WithDataDir(dataDir),
		toutdo.WithReadOnly(readOnly),
		toutdo.WithLogger(slog.Default()),
	}, extra...)

	app, err := toutdo.New(ctx, opts...)
	if err != nil {
		fatal("Failed to initialize toutdo", err)
	}
	return app
}

func parseID(s string) uint32 {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		fatal("Invalid note id", err)
	}
	return uint32(id)
}
