package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [content...]",
	Short: "Add a note",
	Long:  `Add appends a new unpinned note. Words are joined with single spaces; no argument adds an empty note.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		note, err := app.Store.Add(ctx, strings.Join(args, " "))
		if err != nil {
			fatal("Note added in memory but not saved", err)
		}
		fmt.Printf("Note added: %d\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
