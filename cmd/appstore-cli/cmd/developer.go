package cmd

import (
	"fmt"
	"os"
	"strconv"

	"appstore-scraper/lib/appstore"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(developerCmd)
}

var developerCmd = &cobra.Command{
	Use:   "developer <artist id>",
	Short: "Prints every app published under a developer's artist id.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "incorrect number of arguments")
			os.Exit(1)
		}

		devID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "artist id must be numeric")
			os.Exit(1)
		}

		apps, err := client.Developer(cmd.Context(), appstore.DeveloperOptions{
			DevID:   devID,
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
