package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

var (
	searchLimit         int
	searchJSON          bool
	searchPrinciple     string
	searchGuideline     string
	searchConsideration string
	searchLevel         string
	searchArea          string
	searchType          string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the framework content",
	Long: `Performs fuzzy search across principles, guidelines, considerations,
examples, and activities. Matches are weighted by field: codes and ids
rank highest, names and titles next, descriptions and tags lower.

Facet flags narrow the results and compose with the query; with no
query, they browse the full catalogue in hierarchy order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchPrinciple, "principle", domain.SelectionAll, "filter by principle id")
	searchCmd.Flags().StringVar(&searchGuideline, "guideline", domain.SelectionAll, "filter by guideline id")
	searchCmd.Flags().StringVar(&searchConsideration, "consideration", domain.SelectionAll, "filter by consideration id")
	searchCmd.Flags().StringVar(&searchLevel, "level", domain.SelectionAll, "filter by educational level")
	searchCmd.Flags().StringVar(&searchArea, "area", domain.SelectionAll, "filter by curricular area")
	searchCmd.Flags().StringVar(&searchType, "type", domain.SelectionAll, "filter by item type (principle, guideline, consideration, example, activity)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}

	if searchType != domain.SelectionAll && !domain.ItemType(searchType).IsValid() {
		return fmt.Errorf("%w: unknown item type %q", domain.ErrInvalidInput, searchType)
	}

	browseService.Reset()
	if len(args) == 1 {
		browseService.SetQuery(args[0])
	}
	browseService.SetPrinciple(searchPrinciple)
	browseService.SetGuideline(searchGuideline)
	browseService.SetConsideration(searchConsideration)
	browseService.SetEducationalLevel(searchLevel)
	browseService.SetCurricularArea(searchArea)
	browseService.SetType(searchType)

	results, err := browseService.Results(cmd.Context())
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if searchJSON {
		return outputResultsJSON(cmd, results)
	}
	return outputResultsTable(cmd, results)
}

// resultView is the JSON projection of one result.
type resultView struct {
	ID    string  `json:"id"`
	Code  string  `json:"code,omitempty"`
	Type  string  `json:"type"`
	Name  string  `json:"name"`
	Score float64 `json:"score,omitempty"`
}

func outputResultsJSON(cmd *cobra.Command, results []domain.Result) error {
	lang := browseService.Language()
	views := make([]resultView, 0, len(results))
	for _, r := range results {
		views = append(views, resultView{
			ID:    r.Item.ID,
			Code:  r.Item.Code,
			Type:  r.Item.Type.String(),
			Name:  r.Item.DisplayName(lang),
			Score: r.Score,
		})
	}

	data, err := json.MarshalIndent(views, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResultsTable(cmd *cobra.Command, results []domain.Result) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	lang := browseService.Language()
	cmd.Println("Results:")
	cmd.Println()
	for i, r := range results {
		name := firstLine(r.Item.DisplayName(lang))
		label := r.Item.Code
		if label == "" {
			label = r.Item.ID
		}

		if r.Score > 0 {
			cmd.Printf("  [%d] %-14s %s  %s (%.3f)\n", i+1, r.Item.Type, label, name, r.Score)
		} else {
			cmd.Printf("  [%d] %-14s %s  %s\n", i+1, r.Item.Type, label, name)
		}
	}
	cmd.Println()

	return nil
}

// firstLine keeps table rows single-line for multi-paragraph fields.
func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}
