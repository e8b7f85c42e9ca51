package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/toutdo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of toutdo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("toutdo version %s\n", toutdo.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
