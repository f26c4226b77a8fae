package cmd

import (
	"fmt"
	"os"
	"strconv"

	"appstore-scraper/lib/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions <track id>",
	Short: "Prints the released versions of an app, newest first.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "incorrect number of arguments")
			os.Exit(1)
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, "track id must be numeric")
			os.Exit(1)
		}

		versions, err := client.VersionHistory(cmd.Context(), appstore.VersionHistoryOptions{
			ID:      id,
			Country: country,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Version", "Released", "Notes"})

		for _, version := range versions {
			t.AppendRow(table.Row{
				version.VersionDisplay,
				version.ReleaseDate,
				version.ReleaseNotes,
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
