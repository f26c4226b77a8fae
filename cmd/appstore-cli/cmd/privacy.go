package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"appstore-scraper/lib/appstore"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(privacyCmd)
}

var privacyCmd = &cobra.Command{
	Use:   "privacy <track id>",
	Short: "Prints an app's privacy disclosures.",
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

		details, err := client.Privacy(cmd.Context(), appstore.PrivacyOptions{
			ID:      id,
			Country: country,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Disclosure", "Data Categories"})

		for _, privacyType := range details.PrivacyTypes {
			t.AppendRow(table.Row{
				privacyType.Name,
				strings.Join(privacyType.DataCategories, ", "),
			})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()

		if details.PrivacyPolicyURL != "" {
			fmt.Println("Privacy policy:", details.PrivacyPolicyURL)
		}
	},
}
