package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session credential",
	RunE: func(cmd *cobra.Command, _ []string) error {
		confirmed, err := bridge.ShowConfirm(cmd.Context(), "Log out and clear the stored session?")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}

		flow.Logout()

		fmt.Println(successStyle.Render("Logged out."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
