package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:     "pin [id]",
	Aliases: []string{"unpin"},
	Short:   "Toggle the pinned flag of a note",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseID(args[0])

		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		if err := app.Store.TogglePin(ctx, id); err != nil {
			fatal("Error toggling pin", err)
		}

		for _, n := range app.Store.List(ctx) {
			if n.ID == id {
				fmt.Printf("Note %d pinned: %v\n", id, n.Pinned)
				return
			}
		}
		fmt.Printf("No note with id %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
