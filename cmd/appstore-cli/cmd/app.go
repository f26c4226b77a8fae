package cmd

import (
	"fmt"
	"os"
	"strings"

	"appstore-scraper/lib/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var appRatings bool

func init() {
	appCmd.Flags().BoolVar(&appRatings, "ratings", false, "also scrape the rating histogram")
	rootCmd.AddCommand(appCmd)
}

var appCmd = &cobra.Command{
	Use:   "app <track id or bundle id>",
	Short: "Prints the full record of a single app.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "incorrect number of arguments")
			os.Exit(1)
		}

		id, appID := splitIdentifier(args[0])
		app, err := client.App(cmd.Context(), appstore.AppOptions{
			ID:      id,
			AppID:   appID,
			Country: country,
			Lang:    lang,
			Ratings: appRatings,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)

		t.AppendRows([]table.Row{
			{"ID", app.ID},
			{"Bundle ID", app.AppID},
			{"Title", app.Title},
			{"URL", app.URL},
			{"Developer", app.Developer},
			{"Version", app.Version},
			{"Released", app.Released},
			{"Updated", app.Updated},
			{"Price", fmt.Sprintf("%.2f %s", app.Price, app.Currency)},
			{"Score", fmt.Sprintf("%.2f (%d reviews)", app.Score, app.Reviews)},
			{"Content Rating", app.ContentRating},
			{"Genres", strings.Join(app.Genres, ", ")},
		})
		if app.Histogram != nil {
			for stars := 5; stars >= 1; stars-- {
				t.AppendRow(table.Row{
					fmt.Sprintf("%d star", stars),
					app.Histogram[stars],
				})
			}
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
