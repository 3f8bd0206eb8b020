package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gebeya-io/miniapp/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the marketplace backend",
	Long: `Runs the startup authentication sequence: a stored session credential is
validated first, then the host's signed payload is exchanged, and without a
host a local development identity is used.`,
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if err := flow.Startup(cmd.Context()); err != nil {
		bridge.Haptics().Notification("error")
		return fmt.Errorf("login failed: %s", flow.Err())
	}

	if flow.State() != auth.StateAuthenticated {
		return fmt.Errorf("login failed: %s", flow.Err())
	}

	user := flow.CurrentUser()

	bridge.Haptics().Notification("success")

	fmt.Println(successStyle.Render("Login successful!"))
	fmt.Printf("Signed in as %s", user.DisplayName())
	if len(user.Username) > 0 {
		fmt.Printf(" (@%s)", user.Username)
	}
	fmt.Println()

	if !bridge.IsEmbedded() {
		fmt.Println(warningStyle.Render("Standalone mode: using local development identity"))
	}

	return nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
