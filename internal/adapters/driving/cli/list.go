package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

var (
	listPrinciple string
	listGuideline string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List framework entities",
	Long: `List entities of one kind. Guideline and consideration listings can
be scoped with --principle and --guideline; level and area listings
enumerate the tags observed across examples and activities.`,
}

var listPrinciplesCmd = &cobra.Command{
	Use:   "principles",
	Short: "List the principles",
	RunE:  runListPrinciples,
}

var listGuidelinesCmd = &cobra.Command{
	Use:   "guidelines",
	Short: "List guidelines, optionally scoped to a principle",
	RunE:  runListGuidelines,
}

var listConsiderationsCmd = &cobra.Command{
	Use:   "considerations",
	Short: "List considerations, optionally scoped",
	RunE:  runListConsiderations,
}

var listLevelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the educational levels",
	RunE:  runListLevels,
}

var listAreasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List the curricular areas",
	RunE:  runListAreas,
}

func init() {
	listGuidelinesCmd.Flags().StringVar(&listPrinciple, "principle", domain.SelectionAll, "principle id")
	listConsiderationsCmd.Flags().StringVar(&listPrinciple, "principle", domain.SelectionAll, "principle id")
	listConsiderationsCmd.Flags().StringVar(&listGuideline, "guideline", domain.SelectionAll, "guideline id")

	listCmd.AddCommand(listPrinciplesCmd)
	listCmd.AddCommand(listGuidelinesCmd)
	listCmd.AddCommand(listConsiderationsCmd)
	listCmd.AddCommand(listLevelsCmd)
	listCmd.AddCommand(listAreasCmd)
	rootCmd.AddCommand(listCmd)
}

func runListPrinciples(cmd *cobra.Command, _ []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}

	items, err := browseService.Items(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing principles: %w", err)
	}

	lang := browseService.Language()
	for _, item := range items {
		if item.Type != domain.ItemTypePrinciple {
			continue
		}
		cmd.Printf("  %-20s %s\n", item.ID, firstLine(item.DisplayName(lang)))
	}
	return nil
}

func runListGuidelines(cmd *cobra.Command, _ []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}

	browseService.Reset()
	browseService.SetPrinciple(listPrinciple)
	guidelines, err := browseService.AvailableGuidelines(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing guidelines: %w", err)
	}

	lang := browseService.Language()
	for _, g := range guidelines {
		cmd.Printf("  %-4s %s\n", g.Code, firstLine(g.Name.T(lang)))
	}
	return nil
}

func runListConsiderations(cmd *cobra.Command, _ []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}

	browseService.Reset()
	browseService.SetPrinciple(listPrinciple)
	browseService.SetGuideline(listGuideline)
	considerations, err := browseService.AvailableConsiderations(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing considerations: %w", err)
	}

	lang := browseService.Language()
	for _, c := range considerations {
		cmd.Printf("  %-6s %s\n", c.Code, firstLine(c.Description.T(lang)))
	}
	return nil
}

func runListLevels(cmd *cobra.Command, _ []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}

	levels, err := browseService.AvailableEducationalLevels(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing levels: %w", err)
	}
	printTags(cmd, levels)
	return nil
}

func runListAreas(cmd *cobra.Command, _ []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}

	areas, err := browseService.AvailableCurricularAreas(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing areas: %w", err)
	}
	printTags(cmd, areas)
	return nil
}

func printTags(cmd *cobra.Command, tags []domain.MultilingualText) {
	lang := browseService.Language()
	for _, tag := range tags {
		cmd.Printf("  %s\n", tag.T(lang))
	}
}
