package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"autocomplete/internal/autocomplete"
	"autocomplete/internal/config"
	"autocomplete/internal/eventbus"
	"autocomplete/internal/input"
	"autocomplete/internal/ui/views"
)

// InputName is the name the query input is registered under
const InputName = "query"

const title = "autocomplete"

// Options configures the host model
type Options struct {
	Config   *config.Config
	Provider autocomplete.ResultProvider
	ID       string   // dropdown identifier
	Classes  []string // dropdown style classes, looked up in Config.Classes
	Value    string   // text the input starts with
}

// Model hosts a single text input with a dropdown linked to it
type Model struct {
	config *config.Config
	bus    eventbus.EventBus

	input    *input.Linked
	registry *input.Registry
	dropdown *autocomplete.AutoComplete
	screen   *views.Screen
	styles   *views.Styles
	pager    *Pager

	// UI-specific state
	width       int
	height      int
	status      string
	statusErr   bool
	inPagerMode bool // tracks if we're currently in pager mode
	fatal       error

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. The dropdown is linked to the input by
// selector and mounted when the program starts.
func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	styles := views.NewStylesFor(lipgloss.DefaultRenderer(), PaletteFor(cfg, opts.Classes))

	in := input.New(InputName, cfg.Dropdown.Prompt)
	in.Model().Placeholder = cfg.Dropdown.Placeholder
	if opts.Value != "" {
		if err := in.SetValue(opts.Value); err != nil {
			return nil, err
		}
	}

	registry := input.NewRegistry()
	registry.Register(in)

	m := &Model{
		config:   cfg,
		bus:      eventbus.New(),
		input:    in,
		registry: registry,
		screen:   views.NewScreen(cfg.Dropdown.Layer),
		styles:   styles,
		pager:    NewPager(),
	}

	dropdown, err := autocomplete.New(autocomplete.Options{
		Selector: "#" + InputName,
		Provider: opts.Provider,
		ID:       opts.ID,
		Classes:  opts.Classes,
		Renderer: views.NewDropdownRenderer(styles),
		Events:   m.bus,
	})
	if err != nil {
		return nil, err
	}
	m.dropdown = dropdown

	m.bus.Subscribe(eventbus.EventDropdownSynced, m.onSynced)
	m.bus.Subscribe(eventbus.EventDropdownTornDown, m.onTornDown)

	return m, nil
}

// PaletteFor returns the default palette with the configured styles applied,
// then the overrides of each class in order
func PaletteFor(cfg *config.Config, classes []string) views.Palette {
	p := views.DefaultPalette().Merge(paletteFrom(cfg.Styles))
	for _, class := range classes {
		s, ok := cfg.Classes[class]
		if !ok {
			log.Printf("Styles: no overrides for class %q", class)
			continue
		}
		p = p.Merge(paletteFrom(s))
	}
	return p
}

func paletteFrom(s config.StyleSettings) views.Palette {
	return views.Palette{
		Foreground:  s.Foreground,
		Background:  s.Background,
		Highlight:   s.Highlight,
		HighlightFg: s.HighlightFg,
		Meta:        s.Meta,
		Selected:    s.Selected,
		Error:       s.Error,
		Accent:      s.Accent,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Err returns the error that stopped the program, if any
func (m *Model) Err() error {
	return m.fatal
}

// Dropdown returns the hosted dropdown
func (m *Model) Dropdown() *autocomplete.AutoComplete {
	return m.dropdown
}

// Input returns the hosted input
func (m *Model) Input() *input.Linked {
	return m.input
}

// Mount attaches the dropdown to the screen and input
func (m *Model) Mount() error {
	return m.dropdown.Mount(m.screen, m.registry.Lookup)
}

// Init mounts the dropdown and focuses the input. A dropdown that cannot be
// mounted is a configuration error and stops the program.
func (m *Model) Init() tea.Cmd {
	if err := m.Mount(); err != nil {
		log.Printf("Failed to mount dropdown: %v", err)
		m.fatal = err
		return tea.Quit
	}
	return m.input.Focus()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, m.quit()
		case "ctrl+o":
			return m, m.showMatches()
		}
		return m, m.updateInput(msg)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.setError(fmt.Sprintf("pager: %v", msg.err))
		}
		// Pager succeeded, RestoreTerminal() should have restored the screen
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusErr = false
		return m, nil
	}

	// Cursor blink and other textinput messages
	return m, m.updateInput(msg)
}

// updateInput feeds msg to the input; the dropdown syncs from the input's
// notifications and any provider error comes back here
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	cmd, err := m.input.Update(msg)
	if err == nil {
		return cmd
	}

	log.Printf("Input update failed: %v", err)
	text := err.Error()
	var perr *autocomplete.ProviderError
	if errors.As(err, &perr) {
		// The first failure is enough for a one-line status
		text = fmt.Sprintf("completion failed: %v", perr.Err)
	}
	return tea.Batch(cmd, m.setError(text))
}

// onSynced shows the match count after every successful sync
func (m *Model) onSynced(e eventbus.DomainEvent) error {
	event, ok := e.(eventbus.DropdownSyncedEvent)
	if !ok {
		return nil
	}
	m.statusErr = false
	switch {
	case !event.Visible:
		m.status = ""
	case event.MatchCount == 1:
		m.status = "1 match"
	default:
		m.status = fmt.Sprintf("%d matches", event.MatchCount)
	}
	return nil
}

func (m *Model) onTornDown(e eventbus.DomainEvent) error {
	if event, ok := e.(eventbus.DropdownTornDownEvent); ok {
		m.status = "completions off: " + event.Reason
		m.statusErr = false
	}
	return nil
}

func (m *Model) setError(text string) tea.Cmd {
	m.status = text
	m.statusErr = true
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *Model) quit() tea.Cmd {
	// Closing the input detaches the dropdown
	if err := m.input.Close(); err != nil {
		log.Printf("Failed to close input: %v", err)
	}
	return tea.Quit
}

// showMatches returns a command that pages the full match list
func (m *Model) showMatches() tea.Cmd {
	content := MatchList(m.styles, m.dropdown)
	if content == "" {
		return m.setError("no matches to show")
	}
	if !m.pager.Available() {
		return m.setError("pager unavailable")
	}

	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.Show(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerMsg{err: err}
	}
}

// View renders the input with the dropdown on its overlay layer below it
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	lines := strings.Split(m.styles.Title.Render(title), "\n")
	inputRow := len(lines)
	lines = append(lines, m.input.View())

	// Status line at the bottom of the window
	status := m.styles.Help.Render("ctrl+o all matches • esc quit")
	if m.status != "" {
		if m.statusErr {
			status = m.styles.StatusError.Render(m.status)
		} else {
			status = m.styles.Dim.Render(m.status)
		}
	}
	for m.height > 0 && len(lines) < m.height-1 {
		lines = append(lines, "")
	}
	lines = append(lines, status)

	m.screen.Clear()
	if m.dropdown.Visible() {
		x := lipgloss.Width(m.config.Dropdown.Prompt)
		y := inputRow + 1 + m.config.Dropdown.MarginTop
		m.screen.Place(autocomplete.OverlayLayer, x, y, m.dropdownBlock())
	}

	return m.screen.Render(strings.Join(lines, "\n"), m.height)
}

// dropdownBlock renders the dropdown on its panel, clipped to max_rows
func (m *Model) dropdownBlock() string {
	rows := strings.Split(strings.TrimSuffix(m.dropdown.View(), "\n"), "\n")
	if limit := m.config.Dropdown.MaxRows; limit > 0 && len(rows) > limit {
		hidden := len(rows) - limit
		rows = append(rows[:limit], m.styles.Dim.Render(fmt.Sprintf("+%d more", hidden)))
	}
	return m.styles.Panel.Width(m.dropdown.Measure().Maximum).Render(strings.Join(rows, "\n"))
}
