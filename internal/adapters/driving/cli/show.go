package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one entity with its place in the hierarchy",
	Long: `Show the full detail of a principle, guideline, consideration,
example, or activity, identified by its id (activities by their code).`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := requireCatalog(cmd); err != nil {
		return err
	}

	id := args[0]
	ctx := cmd.Context()
	lang := browseService.Language()

	if principle, ok := catalogService.PrincipleByID(ctx, id); ok {
		cmd.Printf("Principle %s\n", principle.ID)
		cmd.Printf("  Name: %s\n", principle.Name.T(lang))
		printParagraphs(cmd, "Description", principle.Description.TL(lang))
		cmd.Printf("  Guidelines: %d\n", len(principle.Guidelines))
		return nil
	}

	if guideline, ok := catalogService.GuidelineByID(ctx, id); ok {
		cmd.Printf("Guideline %s (%s)\n", guideline.Code, guideline.ID)
		cmd.Printf("  Name: %s\n", guideline.Name.T(lang))
		if principle, ok := catalogService.PrincipleForGuideline(ctx, id); ok {
			cmd.Printf("  Principle: %s\n", principle.Name.T(lang))
		}
		cmd.Printf("  Considerations: %d\n", len(guideline.Considerations))
		return nil
	}

	if consideration, ok := catalogService.ConsiderationByID(ctx, id); ok {
		cmd.Printf("Consideration %s (%s)\n", consideration.Code, consideration.ID)
		printParagraphs(cmd, "Description", consideration.Description.TL(lang))
		if guideline, ok := catalogService.GuidelineForConsideration(ctx, id); ok {
			cmd.Printf("  Guideline: %s\n", guideline.Name.T(lang))
		}
		if principle, ok := catalogService.PrincipleForConsideration(ctx, id); ok {
			cmd.Printf("  Principle: %s\n", principle.Name.T(lang))
		}
		return nil
	}

	if example, ok := catalogService.ExampleByID(ctx, id); ok {
		cmd.Printf("Example %s (%s)\n", example.Code, example.ID)
		cmd.Printf("  Activity: %s\n", example.Activity.T(lang))
		printParagraphs(cmd, "Description", example.Description.TL(lang))
		printParagraphs(cmd, "Design options", example.DesignOptions.TL(lang))
		printTag(cmd, "Level", example.EducationalLevel, lang)
		printTag(cmd, "Area", example.CurricularArea, lang)
		if consideration, ok := catalogService.ConsiderationForExample(ctx, id); ok {
			cmd.Printf("  Consideration: %s %s\n", consideration.Code, firstLine(consideration.Description.T(lang)))
		}
		return nil
	}

	if activity, ok := catalogService.ActivityByCode(ctx, id); ok {
		cmd.Printf("Activity %s\n", activity.Code)
		cmd.Printf("  Title: %s\n", activity.Title.T(lang))
		printParagraphs(cmd, "Description", activity.Description.TL(lang))
		printTag(cmd, "Level", activity.GradeLevel, lang)
		printTag(cmd, "Area", activity.Subject, lang)
		for _, tool := range activity.WebTools {
			cmd.Printf("  Tool: %s (%s)\n", tool.Name, tool.URL)
		}
		return nil
	}

	return fmt.Errorf("%w: no entity with id %q", domain.ErrNotFound, id)
}

func printParagraphs(cmd *cobra.Command, label string, paragraphs []string) {
	if len(paragraphs) == 0 {
		return
	}
	cmd.Printf("  %s:\n", label)
	for _, p := range paragraphs {
		cmd.Printf("    %s\n", p)
	}
}

func printTag(cmd *cobra.Command, label string, tag domain.MultilingualText, lang domain.Language) {
	if tag.IsZero() {
		return
	}
	cmd.Printf("  %s: %s\n", label, tag.T(lang))
}
