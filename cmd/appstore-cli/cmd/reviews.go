package cmd

import (
	"fmt"
	"os"

	"appstore-scraper/lib/appstore"
	"appstore-scraper/lib/htmlutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var reviewsPage int
var reviewsSort string

func init() {
	reviewsCmd.Flags().IntVar(&reviewsPage, "page", 1, "page number, 1 through 10")
	reviewsCmd.Flags().StringVar(&reviewsSort, "sort", string(appstore.SortRecent), "sort order: mostRecent or mostHelpful")
	rootCmd.AddCommand(reviewsCmd)
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews <track id or bundle id>",
	Short: "Prints one page of user reviews for an app.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "incorrect number of arguments")
			os.Exit(1)
		}

		id, appID := splitIdentifier(args[0])
		reviews, err := client.Reviews(cmd.Context(), appstore.ReviewsOptions{
			ID:      id,
			AppID:   appID,
			Page:    reviewsPage,
			Sort:    appstore.Sort(reviewsSort),
			Country: country,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Score", "Version", "User", "Title", "Text"})

		for _, review := range reviews {
			t.AppendRow(table.Row{
				review.Score,
				review.Version,
				review.UserName,
				htmlutil.CleanText(review.Title),
				htmlutil.CleanText(review.Text),
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
