package cmd

import (
	"fmt"
	"os"
	"strings"

	"appstore-scraper/lib/appstore"

	"github.com/spf13/cobra"
)

var searchNum int
var searchPage int

func init() {
	searchCmd.Flags().IntVar(&searchNum, "num", 0, "results per page")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "page number")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <term...>",
	Short: "Searches the storefront for apps matching a term.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "incorrect number of arguments")
			os.Exit(1)
		}

		apps, err := client.Search(cmd.Context(), appstore.SearchOptions{
			Term:    strings.Join(args, " "),
			Num:     searchNum,
			Page:    searchPage,
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
