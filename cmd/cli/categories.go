package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List marketplace categories",
	RunE: func(cmd *cobra.Command, _ []string) error {
		categories, err := client.Categories(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(titleStyle.Render("Categories"))
		for _, category := range categories {
			if len(category.Icon) > 0 {
				fmt.Printf("%s  ", category.Icon)
			}
			fmt.Printf("%s (%s)\n", category.Name, category.Slug)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
