package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	contentfile "github.com/custodia-labs/udl-cli/internal/adapters/driven/content/file"
	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/udl-cli/internal/logger"
)

var browseWatch bool

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive reference browser",
	Long: `Opens a full-screen terminal browser over the framework content.
Type to search, tab to cycle the item-type facet, ctrl+l to switch
language, enter to open the selected entry.

With --watch, edits to the content directory are picked up while the
browser is running.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().BoolVar(&browseWatch, "watch", false, "reload when content files change")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) (err error) {
	if err := requireBrowse(cmd); err != nil {
		return err
	}
	if err := requireCatalog(cmd); err != nil {
		return err
	}

	// The TUI takes over the terminal; make sure a panic restores it
	// to a usable state with a readable error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("browser crashed: %v", r)
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(browseService, catalogService))
	if err != nil {
		return fmt.Errorf("starting browser: %w", err)
	}
	app = app.WithContext(cmd.Context())

	program := tea.NewProgram(app, tea.WithAltScreen())

	if browseWatch {
		watcher, werr := contentWatcher(program)
		if werr != nil {
			return werr
		}
		if watcher != nil {
			defer watcher.Close()
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}

// contentWatcher starts a filesystem watcher over the configured
// content directory, if there is one; the embedded dataset cannot
// change and needs no watching.
func contentWatcher(program *tea.Program) (*contentfile.Watcher, error) {
	dir := contentDir
	if dir == "" {
		dir = configStore.GetString("content.dir")
	}
	if dir == "" {
		logger.Warn("--watch ignored: no content directory configured")
		return nil, nil
	}

	watcher := contentfile.NewWatcher(dir)
	if err := watcher.Watch(func() {
		program.Send(messages.ContentChanged{})
	}); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching content directory: %w", err)
	}

	logger.Debug("Watching %s for content changes", dir)
	return watcher, nil
}
