package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/toutdo/internal/platform"
)

var notificationsCmd = &cobra.Command{
	Use:       "notifications [on|off|toggle]",
	Short:     "Show or change whether change events are pushed",
	Long:      `Without an argument, prints the current setting. The choice is stored in settings.yaml next to the notes.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off", "toggle"},
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		app := openApp(ctx)
		defer app.Close()

		if len(args) == 0 {
			fmt.Printf("Notifications: %s\n", onOff(app.Gate.Enabled()))
			return
		}

		switch args[0] {
		case "on":
			app.Gate.SetEnabled(true)
		case "off":
			app.Gate.SetEnabled(false)
		case "toggle":
			app.Gate.Toggle()
		}

		settings := app.Settings
		enabled := app.Gate.Enabled()
		settings.Notifications = &enabled
		if err := platform.SaveSettings(app.DataDir, settings); err != nil {
			fatal("Failed to save settings", err)
		}
		fmt.Printf("Notifications: %s\n", onOff(enabled))
	},
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
}
