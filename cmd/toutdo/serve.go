package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer JSON-lines commands on stdin/stdout",
	Long: `Serve exposes the note commands to another process (a UI shell, a script)
over standard input and output. Each input line is a request:

  {"id": 1, "cmd": "add_note", "args": {"content": "buy milk"}}

and each output line is either a response carrying the same id or an event
frame:

  {"event": "notes_updated", "payload": [...]}

Commands: list_notes, add_note, delete_note, toggle_pin, reorder_notes,
toggle_notifications, get_notifications.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := openApp(ctx)
		defer app.Close()

		events, err := app.Broker.Subscribe(ctx)
		if err != nil {
			fatal("Failed to subscribe", err)
		}
		if serveWatch || app.Settings.Watch {
			app.Follow(ctx)
		}

		slog.Debug("serving", "data_dir", app.DataDir, "commands", app.Handler.Commands())
		if err := app.Handler.Serve(ctx, os.Stdin, os.Stdout, events); err != nil {
			fatal("Serve failed", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Reload when the notes file is edited by another process")
}
