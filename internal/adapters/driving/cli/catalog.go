package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/benefits-portal/internal/core/domain"
)

var (
	catalogCategory string
	catalogJSON     bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the service catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List services",
	Long: `List every service in the catalog, optionally restricted to one category.

Categories: all, benefits, family, employment, education, transport.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCatalogBrowse(cmd, "")
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search services by title or description",
	Long: `Search matches the term case-insensitively against service titles and
descriptions. Combine with --category to narrow the results.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalogBrowse(cmd, args[0])
	},
}

func init() {
	for _, c := range []*cobra.Command{catalogListCmd, catalogSearchCmd} {
		c.Flags().StringVarP(&catalogCategory, "category", "c", "all", "category filter")
		c.Flags().BoolVar(&catalogJSON, "json", false, "output services as JSON")
	}
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogBrowse(cmd *cobra.Command, term string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	category, err := domain.ParseCategory(catalogCategory)
	if err != nil {
		return fmt.Errorf("category %q: %w", catalogCategory, err)
	}

	page, err := catalogService.Browse(term, category)
	if err != nil {
		return fmt.Errorf("browse catalog: %w", err)
	}

	if catalogJSON {
		data, err := json.MarshalIndent(page.Results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal services: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	return outputCatalogTable(cmd, page)
}

func outputCatalogTable(cmd *cobra.Command, page *domain.CatalogPage) error {
	cmd.Println(page.Heading)
	cmd.Println()

	if page.Empty {
		cmd.Println(domain.EmptyCatalogMessage)
		return nil
	}

	for i, svc := range page.Results {
		badge := ""
		if svc.Popular {
			badge = " [Popular]"
		}
		cmd.Printf("  [%d] %s%s\n", i+1, svc.Title, badge)
		cmd.Printf("      %s\n", svc.Description)
		cmd.Printf("      id: %s · takes %s · %s\n", svc.ID, svc.EstimatedTime, svc.ActionLabel(false))
		cmd.Println()
	}
	return nil
}
