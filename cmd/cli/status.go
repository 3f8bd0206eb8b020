package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gebeya-io/miniapp/internal/auth"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connection and session state",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	fmt.Println(titleStyle.Render("Gebeya Client"))

	fmt.Printf("Backend:  %s%s\n", cfg.GetAPIBaseURL(), cfg.GetAPIPrefix())

	if bridge.IsEmbedded() {
		fmt.Printf("Host:     %s (%s)\n", bridge.Platform(), bridge.ColorScheme())
	} else {
		fmt.Println("Host:     " + warningStyle.Render("standalone"))
	}

	if token := sessions.Get(); len(token) > 0 {
		fmt.Println("Session:  " + activeStyle.Render("credential stored"))
	} else {
		fmt.Println("Session:  none")
	}

	if err := flow.Startup(cmd.Context()); err != nil {
		fmt.Println("State:    " + errorStyle.Render(string(flow.State())))
		fmt.Println(errorStyle.Render(flow.Err()))
		return nil
	}

	fmt.Println("State:    " + successStyle.Render(string(flow.State())))

	if flow.State() == auth.StateAuthenticated {
		user := flow.CurrentUser()
		fmt.Println()
		fmt.Println(headerStyle.Render("Signed in as"))
		fmt.Printf("  %s", user.DisplayName())
		if len(user.Username) > 0 {
			fmt.Printf(" (@%s)", user.Username)
		}
		fmt.Println()
		if user.IsVerifiedSeller {
			fmt.Println("  " + infoStyle.Render("Verified seller"))
		}
		if user.Rating > 0 {
			fmt.Printf("  Rating: %.1f (%d ratings)\n", user.Rating, user.TotalRatings)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
