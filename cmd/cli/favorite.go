package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favoriteCmd = &cobra.Command{
	Use:               "favorite <listing-id>",
	Short:             "Toggle a listing favorite",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: preAuthenticateE,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := client.ToggleFavorite(cmd.Context(), args[0])
		if err != nil {
			bridge.Haptics().Notification("error")
			return err
		}

		bridge.Haptics().Impact("light")
		if result.Favorited {
			fmt.Println(successStyle.Render("Added to favorites."))
		} else {
			fmt.Println("Removed from favorites.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoriteCmd)
}
