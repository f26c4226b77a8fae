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
	rootCmd.AddCommand(ratingsCmd)
}

var ratingsCmd = &cobra.Command{
	Use:   "ratings <track id>",
	Short: "Prints the star distribution of an app's ratings.",
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

		histogram, err := client.Ratings(cmd.Context(), appstore.RatingsOptions{
			ID:      id,
			Country: country,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Stars", "Count"})

		for stars := 5; stars >= 1; stars-- {
			t.AppendRow(table.Row{stars, histogram[stars]})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
