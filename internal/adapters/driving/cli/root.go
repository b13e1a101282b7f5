// Package cli implements the command-line interface for the UDL
// reference browser.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/udl-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/udl-cli/internal/adapters/driven/content/embedded"
	contentfile "github.com/custodia-labs/udl-cli/internal/adapters/driven/content/file"
	"github.com/custodia-labs/udl-cli/internal/adapters/driven/search/bleve"
	"github.com/custodia-labs/udl-cli/internal/adapters/driven/search/lite"
	"github.com/custodia-labs/udl-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/udl-cli/internal/core/domain"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driven"
	"github.com/custodia-labs/udl-cli/internal/core/ports/driving"
	"github.com/custodia-labs/udl-cli/internal/core/services"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	contentDir string
	engineName string
)

// Services consumed by the commands. Populated lazily by
// ensureServices; tests assign them directly.
var (
	configStore    driven.ConfigStore
	browseService  driving.BrowseService
	catalogService driving.CatalogService
	activityStore  driven.ActivityStore
)

var rootCmd = &cobra.Command{
	Use:   "udl",
	Short: "Browse and search the UDL framework",
	Long: `udl is a terminal reference browser for the Universal Design for
Learning framework: its principles, guidelines, considerations, worked
examples, and teaching activities.

Content is bilingual (Spanish and English) and searchable with fuzzy
matching and faceted filters.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content directory (defaults to the embedded dataset)")
	rootCmd.PersistentFlags().StringVar(&engineName, "engine", "", "search engine: bleve or lite (defaults to config, then bleve)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureServices wires the default adapters on first use. Commands
// whose services were already set (by tests or by main) skip this.
func ensureServices(cmd *cobra.Command) error {
	if browseService != nil {
		return nil
	}

	if configStore == nil {
		store, err := configfile.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		configStore = store
	}

	contentStore, err := resolveContentStore()
	if err != nil {
		return err
	}

	factory, err := resolveEngineFactory()
	if err != nil {
		return err
	}

	svc, err := services.NewBrowseService(contentStore, factory)
	if err != nil {
		return fmt.Errorf("creating browse service: %w", err)
	}

	if dir, ok := activitiesLocation(); ok {
		store, err := sqlite.NewStore(dir)
		if err != nil {
			return fmt.Errorf("opening activities store: %w", err)
		}
		activityStore = store.ActivityStore()
		svc.SetActivityStore(activityStore)
	}

	if lang := configuredLanguage(); lang != domain.DefaultLanguage {
		if err := svc.SetLanguage(cmd.Context(), lang); err != nil {
			return err
		}
	}

	browseService = svc
	catalogService = svc
	return nil
}

// resolveContentStore picks the content source: the --content flag,
// then the content.dir config key, then the embedded dataset.
func resolveContentStore() (driven.ContentStore, error) {
	dir := contentDir
	if dir == "" {
		dir = configStore.GetString("content.dir")
	}
	if dir == "" {
		logger.Debug("Using embedded content dataset")
		return contentfile.NewStoreFS(embedded.Documents()), nil
	}
	logger.Debug("Using content directory %s", dir)
	return contentfile.NewStore(dir)
}

// resolveEngineFactory picks the search engine: the --engine flag,
// then the search.engine config key, then bleve.
func resolveEngineFactory() (driven.EngineFactory, error) {
	name := engineName
	if name == "" {
		name = configStore.GetString("search.engine")
	}
	switch name {
	case "", "bleve":
		return bleve.Factory, nil
	case "lite":
		return lite.Factory, nil
	default:
		return nil, fmt.Errorf("%w: unknown search engine %q", domain.ErrInvalidInput, name)
	}
}

// activitiesLocation reports where the activities database lives, if
// anywhere: an explicit activities.dir config, or the default location
// when a previous import created it there.
func activitiesLocation() (string, bool) {
	if dir := configStore.GetString("activities.dir"); dir != "" {
		return dir, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(filepath.Join(home, ".udl", "data", "activities.db")); err != nil {
		return "", false
	}
	return "", true
}

// configuredLanguage reads the persisted language, defaulting when the
// value is absent or unrecognised.
func configuredLanguage() domain.Language {
	lang := domain.Language(configStore.GetString("language"))
	if !lang.IsValid() {
		return domain.DefaultLanguage
	}
	return lang
}

func requireBrowse(cmd *cobra.Command) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if browseService == nil {
		return errors.New("browse service not configured")
	}
	return nil
}

func requireCatalog(cmd *cobra.Command) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	return nil
}
