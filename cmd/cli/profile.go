package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gebeya-io/miniapp/internal/models"
)

var profileCmd = &cobra.Command{
	Use:               "profile",
	Short:             "Show and update your profile",
	PersistentPreRunE: preAuthenticateE,
	RunE:              runProfileShow,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE:  runProfileShow,
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	flow.Refresh(cmd.Context())
	user := flow.CurrentUser()

	fmt.Println(titleStyle.Render("Profile"))
	fmt.Printf("Name:      %s\n", user.DisplayName())
	if len(user.Username) > 0 {
		fmt.Printf("Username:  @%s\n", user.Username)
	}
	fmt.Printf("City:      %s", user.City)
	if len(user.Area) > 0 {
		fmt.Printf(" / %s", user.Area)
	}
	fmt.Println()

	if len(user.Phone) > 0 {
		verified := warningStyle.Render("unverified")
		if user.IsPhoneVerified {
			verified = successStyle.Render("verified")
		}
		fmt.Printf("Phone:     %s (%s)\n", user.Phone, verified)
	}

	fmt.Printf("Listings:  %d active, %d sold\n", user.TotalListings, user.TotalSales)

	if len(user.Settings) > 0 {
		raw, err := json.MarshalIndent(user.Settings, "", "  ")
		if err == nil {
			fmt.Println(headerStyle.Render("Settings"))
			fmt.Println(string(raw))
		}
	}

	return nil
}

var (
	updateFirstName string
	updateLastName  string
	updateCity      string
	updateArea      string
)

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		patch := models.UserPatch{}

		if cmd.Flags().Changed("first-name") {
			patch.FirstName = &updateFirstName
		}
		if cmd.Flags().Changed("last-name") {
			patch.LastName = &updateLastName
		}
		if cmd.Flags().Changed("city") {
			patch.City = &updateCity
		}
		if cmd.Flags().Changed("area") {
			patch.Area = &updateArea
		}

		user, err := client.UpdateMe(cmd.Context(), patch)
		if err != nil {
			bridge.Haptics().Notification("error")
			return err
		}

		bridge.Haptics().Notification("success")
		fmt.Println(successStyle.Render("Profile updated."))
		fmt.Printf("Name: %s, City: %s\n", user.DisplayName(), user.City)
		return nil
	},
}

var profileSettingsCmd = &cobra.Command{
	Use:   "settings <json>",
	Short: "Replace the settings blob",
	Long: `Replaces the opaque settings blob stored on the profile. The client does
not interpret the contents; pass any JSON object.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var settings map[string]any
		if err := json.Unmarshal([]byte(args[0]), &settings); err != nil {
			return fmt.Errorf("settings must be a JSON object: %w", err)
		}

		if _, err := client.UpdateSettings(cmd.Context(), settings); err != nil {
			bridge.Haptics().Notification("error")
			return err
		}

		bridge.Haptics().Notification("success")
		fmt.Println(successStyle.Render("Settings saved."))
		return nil
	},
}

var profileVerifyPhoneCmd = &cobra.Command{
	Use:   "verify-phone <number>",
	Short: "Submit a phone number for verification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := client.VerifyPhone(cmd.Context(), args[0])
		if err != nil {
			bridge.Haptics().Notification("error")
			return err
		}

		bridge.Haptics().Notification("success")
		if user.IsPhoneVerified {
			fmt.Println(successStyle.Render("Phone verified."))
		} else {
			fmt.Println(infoStyle.Render("Verification pending."))
		}
		return nil
	},
}

func init() {
	profileUpdateCmd.Flags().StringVar(&updateFirstName, "first-name", "", "First name")
	profileUpdateCmd.Flags().StringVar(&updateLastName, "last-name", "", "Last name")
	profileUpdateCmd.Flags().StringVar(&updateCity, "city", "", "City")
	profileUpdateCmd.Flags().StringVar(&updateArea, "area", "", "Area / neighborhood")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profileSettingsCmd)
	profileCmd.AddCommand(profileVerifyPhoneCmd)
	rootCmd.AddCommand(profileCmd)
}
