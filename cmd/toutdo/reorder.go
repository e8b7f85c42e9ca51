package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reorderCmd = &cobra.Command{
	Use:   "reorder [id...]",
	Short: "Move the given notes to the front, in order",
	Long: `Reorder places the listed notes first, in the given order. Notes not
mentioned keep their relative order after them. Unknown ids are ignored.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ids := make([]uint32, 0, len(args))
		for _, a := range args {
			ids = append(ids, parseID(a))
		}

		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		if err := app.Store.Reorder(ctx, ids); err != nil {
			fatal("Error reordering notes", err)
		}
		fmt.Printf("Reordered %d notes\n", len(app.Store.List(ctx)))
	},
}

func init() {
	rootCmd.AddCommand(reorderCmd)
}
