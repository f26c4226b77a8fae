package cmd

import (
	"fmt"
	"os"
	"strconv"

	"appstore-scraper/lib/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var client *appstore.Client

var country string
var lang string

var rootCmd = &cobra.Command{
	Use:   "appstore-cli",
	Short: "appstore-cli queries the App Store's unofficial storefront endpoints.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&country, "country", "us", "two-letter storefront country code")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "language code for localized fields")
}

func Execute() {
	var err error
	client, err = appstore.NewClient(appstore.ClientOptions{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// splitIdentifier reads a positional app identifier: all-digit
// arguments are track ids, everything else is a bundle id.
func splitIdentifier(arg string) (int64, string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, arg
	}
	return id, ""
}

func renderApps(apps []appstore.App) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Bundle ID", "Title", "Developer", "Price", "Score"})

	for _, app := range apps {
		t.AppendRow(table.Row{
			app.ID,
			app.AppID,
			app.Title,
			app.Developer,
			fmt.Sprintf("%.2f %s", app.Price, app.Currency),
			fmt.Sprintf("%.2f", app.Score),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
