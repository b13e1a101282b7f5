package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/udl-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

var activitiesCmd = &cobra.Command{
	Use:   "activities",
	Short: "Manage the local activities collection",
	Long: `Activities imported here are kept in a local SQLite database and
merged into the browsable catalogue alongside the shipped content.`,
}

var activitiesImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import activities from a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runActivitiesImport,
}

var activitiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported activities",
	RunE:  runActivitiesList,
}

func init() {
	activitiesCmd.AddCommand(activitiesImportCmd)
	activitiesCmd.AddCommand(activitiesListCmd)
	rootCmd.AddCommand(activitiesCmd)
}

// activitiesDocument is the import file shape, the same one the content
// directory uses for its activities.json.
type activitiesDocument struct {
	Activities []domain.Activity `json:"activities"`
}

func runActivitiesImport(cmd *cobra.Command, args []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}
	if err := ensureActivityStore(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	var doc activitiesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}
	if len(doc.Activities) == 0 {
		return fmt.Errorf("%w: no activities in %s", domain.ErrInvalidInput, args[0])
	}

	for _, activity := range doc.Activities {
		if err := activityStore.Put(cmd.Context(), activity); err != nil {
			return fmt.Errorf("importing activity %q: %w", activity.Code, err)
		}
		logger.Debug("Imported activity %s", activity.Code)
	}

	cmd.Printf("Imported %d activities\n", len(doc.Activities))
	return nil
}

func runActivitiesList(cmd *cobra.Command, _ []string) error {
	if err := requireBrowse(cmd); err != nil {
		return err
	}
	if err := ensureActivityStore(); err != nil {
		return err
	}

	activities, err := activityStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing activities: %w", err)
	}
	if len(activities) == 0 {
		cmd.Println("No imported activities.")
		return nil
	}

	lang := browseService.Language()
	for _, a := range activities {
		cmd.Printf("  %-12s %s\n", a.Code, firstLine(a.Title.T(lang)))
	}
	return nil
}

// ensureActivityStore opens the SQLite store on demand for commands
// that write to it even when browsing never needed it.
func ensureActivityStore() error {
	if activityStore != nil {
		return nil
	}
	if configStore == nil {
		return errors.New("config store not configured")
	}
	store, err := sqlite.NewStore(configStore.GetString("activities.dir"))
	if err != nil {
		return fmt.Errorf("opening activities store: %w", err)
	}
	activityStore = store.ActivityStore()
	return nil
}
