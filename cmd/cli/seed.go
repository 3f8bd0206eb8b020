package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:               "seed",
	Short:             "Populate demo listings (development backends only)",
	PersistentPreRunE: preAuthenticateE,
	RunE: func(cmd *cobra.Command, _ []string) error {
		result, err := client.SeedListings(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(result.Message))
		for _, listing := range result.Listings {
			printListing(listing)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
