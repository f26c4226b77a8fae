package cmd

import (
	"fmt"
	"os"

	"appstore-scraper/lib/appstore"

	"github.com/spf13/cobra"
)

var listCollection string
var listCategory int
var listNum int

func init() {
	listCmd.Flags().StringVar(&listCollection, "collection", "", "feed collection, e.g. topfreeapplications")
	listCmd.Flags().IntVar(&listCategory, "category", 0, "numeric genre id to filter by")
	listCmd.Flags().IntVar(&listNum, "num", 0, "number of results, at most 200")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints a collection feed such as the top free apps.",
	Run: func(cmd *cobra.Command, args []string) {
		apps, err := client.List(cmd.Context(), appstore.ListOptions{
			Collection: appstore.Collection(listCollection),
			Category:   appstore.Category(listCategory),
			Num:        listNum,
			Country:    country,
			Lang:       lang,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		renderApps(apps)
	},
}
