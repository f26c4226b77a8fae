package cmd

import (
	"fmt"
	"os"

	"appstore-scraper/lib/appstore"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(similarCmd)
}

var similarCmd = &cobra.Command{
	Use:   "similar <track id or bundle id>",
	Short: "Prints the \"customers also bought\" apps for an app.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "incorrect number of arguments")
			os.Exit(1)
		}

		id, appID := splitIdentifier(args[0])
		apps, err := client.Similar(cmd.Context(), appstore.SimilarOptions{
			ID:      id,
			AppID:   appID,
			Country: country,
			Lang:    lang,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		renderApps(apps)
	},
}
