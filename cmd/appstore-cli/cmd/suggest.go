package cmd

import (
	"fmt"
	"os"
	"strings"

	"appstore-scraper/lib/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <term...>",
	Short: "Prints search term completions for a partial term.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "incorrect number of arguments")
			os.Exit(1)
		}

		suggestions, err := client.Suggest(cmd.Context(), appstore.SuggestOptions{
			Term: strings.Join(args, " "),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Term"})

		for _, suggestion := range suggestions {
			t.AppendRow(table.Row{suggestion.Term})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
