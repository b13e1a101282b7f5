package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/udl-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/udl-cli/internal/core/domain"
)

// App is the browse TUI following the Elm architecture. A single view
// combines the query input, the result list, a detail overlay, and a
// status bar; facet changes recompute results immediately.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SearchInput
	list      *list.ResultList
	statusbar *status.Bar

	// typeFacets holds the cycling order of the item-type facet,
	// starting with the all selection.
	typeFacets []string
	typeIndex  int

	// detail holds the rendered detail overlay, "" when hidden.
	detail string

	// focusInput is true in input mode, false in results mode.
	focusInput bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	typeFacets := []string{domain.SelectionAll}
	for _, t := range domain.AllItemTypes() {
		typeFacets = append(typeFacets, t.String())
	}

	resultList := list.NewResultList(s)
	resultList.SetLanguage(ports.Browse.Language())

	bar := status.NewBar(s, km)
	bar.SetLanguage(ports.Browse.Language())

	return &App{
		ports:      ports,
		ctx:        context.Background(),
		styles:     s,
		keymap:     km,
		input:      input.NewSearchInput(s),
		list:       resultList,
		statusbar:  bar,
		typeFacets: typeFacets,
		focusInput: true,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("udl - UDL Reference Browser"),
		a.input.Init(),
		a.refreshResults(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.ResultsUpdated:
		a.handleResultsUpdated(msg)
		return a, nil

	case messages.LanguageChanged:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusbar.SetState(status.StateError)
			a.statusbar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.list.SetLanguage(msg.Language)
		a.statusbar.SetLanguage(msg.Language)
		return a, a.refreshResults()

	case messages.ContentChanged:
		a.ports.Browse.MarkStale()
		return a, a.refreshResults()

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKeyMsg processes keyboard input.
//
//nolint:gocognit,gocyclo // central key dispatch
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keymap.Matches(keyStr, a.keymap.Quit) {
		return a, tea.Quit
	}

	// Detail overlay swallows everything; esc or enter closes it.
	if a.detail != "" {
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter || keyStr == "q" {
			a.detail = ""
		}
		return a, nil
	}

	if keymap.Matches(keyStr, a.keymap.ToggleLanguage) {
		return a, a.toggleLanguage()
	}

	if keymap.Matches(keyStr, a.keymap.CycleType) {
		a.typeIndex = (a.typeIndex + 1) % len(a.typeFacets)
		typ := a.typeFacets[a.typeIndex]
		a.ports.Browse.SetType(typ)
		a.statusbar.SetTypeFacet(typ)
		return a, a.refreshResults()
	}

	if msg.Type == tea.KeyEnter && a.focusInput {
		a.ports.Browse.SetQuery(a.input.Value())
		a.statusbar.SetState(status.StateSearching)
		a.focusInput = false
		a.input.Blur()
		return a, a.refreshResults()
	}

	if a.focusInput {
		if msg.Type == tea.KeyEsc {
			return a, tea.Quit
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	// Results mode.
	switch {
	case msg.Type == tea.KeyEnter:
		if result := a.list.SelectedResult(); result != nil {
			a.detail = a.renderDetail(result.Item)
		}
		return a, nil
	case msg.Type == tea.KeyEsc:
		a.focusInput = true
		return a, a.input.Focus()
	case msg.Type == tea.KeyUp || keyStr == "k":
		a.list.MoveUp()
		return a, nil
	case msg.Type == tea.KeyDown || keyStr == "j":
		a.list.MoveDown()
		return a, nil
	case keymap.Matches(keyStr, a.keymap.NewSearch):
		a.focusInput = true
		a.input.SetValue("")
		a.ports.Browse.SetQuery("")
		return a, tea.Batch(a.input.Focus(), a.refreshResults())
	}

	return a, nil
}

// refreshResults recomputes results for the current browse state.
func (a *App) refreshResults() tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Browse.Results(a.ctx)
		return messages.ResultsUpdated{Results: results, Err: err}
	}
}

// toggleLanguage flips between the two supported languages.
func (a *App) toggleLanguage() tea.Cmd {
	return func() tea.Msg {
		next := domain.LanguageSpanish
		if a.ports.Browse.Language() == domain.LanguageSpanish {
			next = domain.LanguageEnglish
		}
		err := a.ports.Browse.SetLanguage(a.ctx, next)
		return messages.LanguageChanged{Language: next, Err: err}
	}
}

// handleResultsUpdated processes a recomputed result sequence.
func (a *App) handleResultsUpdated(msg messages.ResultsUpdated) {
	if msg.Err != nil {
		a.err = msg.Err
		a.statusbar.SetState(status.StateError)
		a.statusbar.SetMessage(msg.Err.Error())
		return
	}

	a.err = nil
	a.list.SetResults(msg.Results)
	a.statusbar.SetState(status.StateResults)
	a.statusbar.SetMessage("")
	a.statusbar.SetResultCount(len(msg.Results))
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	if a.detail != "" {
		return a.styles.Border.Padding(0, 1).Render(a.detail)
	}

	sections := make([]string, 0, 8)

	header := a.styles.Title.Render("UDL Reference Browser")
	sections = append(sections, header, "")

	sections = append(sections, a.input.View(), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.list.View(), "")
	sections = append(sections, a.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderDetail builds the detail overlay for one item, including its
// place in the hierarchy.
func (a *App) renderDetail(item domain.SearchableItem) string {
	lang := a.ports.Browse.Language()
	lines := make([]string, 0, 12)

	title := item.Type.String()
	if item.Code != "" {
		title += " " + item.Code
	}
	lines = append(lines, a.styles.Title.Render(title), "")
	lines = append(lines, a.styles.Normal.Render(item.DisplayName(lang)))

	if !item.PrincipleName.IsZero() {
		lines = append(lines, a.styles.Muted.Render("Principle: "+item.PrincipleName.T(lang)))
	}
	if !item.GuidelineName.IsZero() {
		lines = append(lines, a.styles.Muted.Render("Guideline: "+item.GuidelineName.T(lang)))
	}

	switch item.Type {
	case domain.ItemTypePrinciple:
		if item.Principle != nil {
			lines = appendParagraphs(lines, item.Principle.Description.TL(lang))
		}
	case domain.ItemTypeConsideration:
		if item.Consideration != nil {
			lines = appendParagraphs(lines, item.Consideration.Description.TL(lang))
		}
	case domain.ItemTypeExample:
		if item.Example != nil {
			lines = appendParagraphs(lines, item.Example.Description.TL(lang))
			lines = appendParagraphs(lines, item.Example.DesignOptions.TL(lang))
			if c, ok := a.ports.Catalog.ConsiderationForExample(a.ctx, item.ID); ok {
				lines = append(lines, a.styles.Muted.Render("Consideration: "+c.Code))
			}
		}
	case domain.ItemTypeActivity:
		if item.Activity != nil {
			lines = appendParagraphs(lines, item.Activity.Description.TL(lang))
			for _, tool := range item.Activity.WebTools {
				lines = append(lines, a.styles.Muted.Render(fmt.Sprintf("Tool: %s (%s)", tool.Name, tool.URL)))
			}
		}
	case domain.ItemTypeGuideline:
		// Name already shown; guidelines carry no long description.
	}

	if !item.EducationalLevel.IsZero() {
		lines = append(lines, a.styles.Muted.Render("Level: "+item.EducationalLevel.T(lang)))
	}
	if !item.CurricularArea.IsZero() {
		lines = append(lines, a.styles.Muted.Render("Area: "+item.CurricularArea.T(lang)))
	}

	lines = append(lines, "", a.styles.Muted.Render("[esc] close"))
	return strings.Join(lines, "\n")
}

// appendParagraphs adds non-empty paragraphs separated by a blank line.
func appendParagraphs(lines, paragraphs []string) []string {
	for _, p := range paragraphs {
		if p == "" {
			continue
		}
		lines = append(lines, "", p)
	}
	return lines
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Query returns the current query input value.
func (a *App) Query() string {
	return a.input.Value()
}

// Results returns the current results.
func (a *App) Results() []domain.Result {
	return a.list.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.list.Selected()
}

// InputFocused returns whether the query input has focus.
func (a *App) InputFocused() bool {
	return a.focusInput
}

// DetailVisible returns whether the detail overlay is showing.
func (a *App) DetailVisible() bool {
	return a.detail != ""
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.input.SetWidth(width)
	a.list.SetDimensions(width, height-10)
	a.statusbar.SetWidth(width)
}
