package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

var langCmd = &cobra.Command{
	Use:   "lang [es|en]",
	Short: "Show or set the display language",
	Long: `With no argument, prints the active display language. With an
argument, switches to it for this run and persists the choice.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLang(cmd *cobra.Command, args []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}

	if len(args) == 0 {
		cmd.Printf("Display language: %s\n", browseService.Language())
		return nil
	}

	lang := domain.Language(args[0])
	if !lang.IsValid() {
		return fmt.Errorf("%w: unknown language %q (supported: es, en)", domain.ErrInvalidInput, args[0])
	}

	if err := browseService.SetLanguage(cmd.Context(), lang); err != nil {
		return fmt.Errorf("switching language: %w", err)
	}

	if configStore != nil {
		if err := configStore.Set("language", lang.String()); err != nil {
			return fmt.Errorf("persisting language: %w", err)
		}
	}

	cmd.Printf("Display language set to %s\n", lang)
	return nil
}
