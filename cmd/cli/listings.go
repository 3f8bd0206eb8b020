package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gebeya-io/miniapp/internal/api"
	"github.com/gebeya-io/miniapp/internal/models"
)

var listingsCmd = &cobra.Command{
	Use:               "listings",
	Short:             "Browse and manage marketplace listings",
	PersistentPreRunE: preAuthenticateE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListingsList(cmd, args)
	},
}

var listQuery struct {
	page      int
	perPage   int
	category  string
	search    string
	minPrice  float64
	maxPrice  float64
	condition string
	city      string
}

var listingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List public listings",
	RunE:  runListingsList,
}

func runListingsList(cmd *cobra.Command, _ []string) error {
	page, err := client.Listings(cmd.Context(), api.ListingsQuery{
		Page:      listQuery.page,
		PerPage:   listQuery.perPage,
		Category:  listQuery.category,
		Search:    listQuery.search,
		MinPrice:  listQuery.minPrice,
		MaxPrice:  listQuery.maxPrice,
		Condition: models.ListingCondition(listQuery.condition),
		City:      listQuery.city,
	})
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(fmt.Sprintf("Listings (%d total)", page.Total)))

	for _, listing := range page.Items {
		printListing(listing)
	}

	if page.HasMore {
		fmt.Printf("\nPage %d of more; rerun with --page %d\n", page.Page, page.Page+1)
	}

	return nil
}

func printListing(listing models.Listing) {
	title := listing.Title
	if listing.IsFeatured {
		title = featuredStyle.Render("FEATURED") + " " + title
	}

	switch listing.Status {
	case models.ListingSold:
		title = soldStyle.Render(title)
	case models.ListingActive:
		title = activeStyle.Render(title)
	}

	fmt.Printf("%s  %s\n", title, headerStyle.Render(fmt.Sprintf("%.0f %s", listing.Price, listing.Currency)))
	fmt.Printf("  %s · %s · %s", listing.ID, listing.Condition, listing.City)
	if listing.IsFavorited {
		fmt.Printf(" · %s", infoStyle.Render("favorited"))
	}
	fmt.Println()
}

var listingsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listing, err := client.Listing(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		printListing(*listing)
		if len(listing.Description) > 0 {
			fmt.Println()
			fmt.Println(listing.Description)
		}
		fmt.Printf("\nViews: %d, Favorites: %d\n", listing.ViewsCount, listing.FavoritesCount)
		if listing.Seller != nil {
			fmt.Printf("Seller: %s (rating %.1f)\n", listing.Seller.DisplayName(), listing.Seller.Rating)
		}
		return nil
	},
}

var draftFlags struct {
	category    string
	title       string
	description string
	price       float64
	currency    string
	negotiable  bool
	condition   string
	city        string
	area        string
	images      []string
	status      string
}

// draftFromFlags collects only the flags the user actually set, keeping
// updates partial.
func draftFromFlags(cmd *cobra.Command) models.ListingDraftFields {
	fields := models.ListingDraftFields{}

	if cmd.Flags().Changed("category") {
		fields.CategoryID = &draftFlags.category
	}
	if cmd.Flags().Changed("title") {
		fields.Title = &draftFlags.title
	}
	if cmd.Flags().Changed("description") {
		fields.Description = &draftFlags.description
	}
	if cmd.Flags().Changed("price") {
		fields.Price = &draftFlags.price
	}
	if cmd.Flags().Changed("currency") {
		fields.Currency = &draftFlags.currency
	}
	if cmd.Flags().Changed("negotiable") {
		fields.IsNegotiable = &draftFlags.negotiable
	}
	if cmd.Flags().Changed("condition") {
		condition := models.ListingCondition(draftFlags.condition)
		fields.Condition = &condition
	}
	if cmd.Flags().Changed("city") {
		fields.City = &draftFlags.city
	}
	if cmd.Flags().Changed("area") {
		fields.Area = &draftFlags.area
	}
	if cmd.Flags().Changed("image") {
		fields.Images = draftFlags.images
	}
	if cmd.Flags().Changed("status") {
		status := models.ListingStatus(draftFlags.status)
		fields.Status = &status
	}

	return fields
}

var listingsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Publish a new listing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		listing, err := client.CreateListing(cmd.Context(), draftFromFlags(cmd))
		if err != nil {
			bridge.Haptics().Notification("error")
			return err
		}

		bridge.Haptics().Notification("success")
		fmt.Println(successStyle.Render("Listing published."))
		printListing(*listing)
		return nil
	},
}

var listingsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an owned listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listing, err := client.UpdateListing(cmd.Context(), args[0], draftFromFlags(cmd))
		if err != nil {
			bridge.Haptics().Notification("error")
			return err
		}

		bridge.Haptics().Notification("success")
		fmt.Println(successStyle.Render("Listing updated."))
		printListing(*listing)
		return nil
	},
}

var listingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an owned listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, err := bridge.ShowConfirm(cmd.Context(), "Delete this listing? This cannot be undone.")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := client.DeleteListing(cmd.Context(), args[0]); err != nil {
			bridge.Haptics().Notification("error")
			return err
		}

		bridge.Haptics().Notification("success")
		fmt.Println(successStyle.Render("Listing deleted."))
		return nil
	},
}

var myListingsStatus string

var listingsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List your own listings",
	RunE: func(cmd *cobra.Command, _ []string) error {
		listings, err := client.MyListings(cmd.Context(), models.ListingStatus(myListingsStatus))
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("My listings (%d)", len(listings))))
		for _, listing := range listings {
			printListing(listing)
		}
		return nil
	},
}

func addDraftFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&draftFlags.category, "category", "", "Category ID")
	cmd.Flags().StringVar(&draftFlags.title, "title", "", "Listing title")
	cmd.Flags().StringVar(&draftFlags.description, "description", "", "Description")
	cmd.Flags().Float64Var(&draftFlags.price, "price", 0, "Price")
	cmd.Flags().StringVar(&draftFlags.currency, "currency", "", "Currency code (default ETB)")
	cmd.Flags().BoolVar(&draftFlags.negotiable, "negotiable", true, "Price is negotiable")
	cmd.Flags().StringVar(&draftFlags.condition, "condition", "", "Condition: new, like_new, used, for_parts")
	cmd.Flags().StringVar(&draftFlags.city, "city", "", "City")
	cmd.Flags().StringVar(&draftFlags.area, "area", "", "Area / neighborhood")
	cmd.Flags().StringArrayVar(&draftFlags.images, "image", nil, "Image URL (repeatable)")
	cmd.Flags().StringVar(&draftFlags.status, "status", "", "Status: draft, active, sold")
}

func init() {
	listingsListCmd.Flags().IntVar(&listQuery.page, "page", 0, "Page number")
	listingsListCmd.Flags().IntVar(&listQuery.perPage, "per-page", 0, "Items per page")
	listingsListCmd.Flags().StringVar(&listQuery.category, "category", "", "Filter by category ID")
	listingsListCmd.Flags().StringVar(&listQuery.search, "search", "", "Search term")
	listingsListCmd.Flags().Float64Var(&listQuery.minPrice, "min-price", 0, "Minimum price")
	listingsListCmd.Flags().Float64Var(&listQuery.maxPrice, "max-price", 0, "Maximum price")
	listingsListCmd.Flags().StringVar(&listQuery.condition, "condition", "", "Filter by condition")
	listingsListCmd.Flags().StringVar(&listQuery.city, "city", "", "Filter by city")

	addDraftFlags(listingsCreateCmd)
	addDraftFlags(listingsUpdateCmd)

	listingsMineCmd.Flags().StringVar(&myListingsStatus, "status", "", "Filter by status")

	listingsCmd.AddCommand(listingsListCmd)
	listingsCmd.AddCommand(listingsGetCmd)
	listingsCmd.AddCommand(listingsCreateCmd)
	listingsCmd.AddCommand(listingsUpdateCmd)
	listingsCmd.AddCommand(listingsDeleteCmd)
	listingsCmd.AddCommand(listingsMineCmd)
	rootCmd.AddCommand(listingsCmd)
}
