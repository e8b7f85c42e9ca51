package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/toutdo/pkg/adapters/fs"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the ordered notes to a .json or .yaml file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		serializer, err := fs.SerializerFor(path)
		if err != nil {
			fatal("Unsupported export format", err)
		}

		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		notes := app.Store.List(ctx)

		f, err := os.Create(path)
		if err != nil {
			fatal("Failed to create export file", err)
		}
		if err := serializer.Encode(f, notes); err != nil {
			f.Close()
			fatal("Failed to encode notes", err)
		}
		if err := f.Close(); err != nil {
			fatal("Failed to close export file", err)
		}
		fmt.Printf("Exported %d notes to %s\n", len(notes), path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
