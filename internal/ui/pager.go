package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"autocomplete/internal/autocomplete"
	"autocomplete/internal/ui/views"
)

// Pager shows long content full screen in ov, handing the terminal over
// while it runs
type Pager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPager creates a new pager
func NewPager() *Pager {
	return &Pager{}
}

// SetProgram sets the program reference for terminal management
func (p *Pager) SetProgram(program *tea.Program) {
	p.program = program
}

// Available reports whether the pager can take over the terminal
func (p *Pager) Available() bool {
	return p.program != nil
}

// Show pages content with ov
func (p *Pager) Show(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write the document back to our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	log.Printf("Pager: showing %d lines", strings.Count(content, "\n"))
	return root.Run()
}

// MatchList renders every current match, unclipped, with a title line. It
// returns "" when there is nothing to show.
func MatchList(styles *views.Styles, dropdown *autocomplete.AutoComplete) string {
	state := dropdown.State()
	if len(state.Matches) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("%d matches for %q", len(state.Matches), state.Filter)))
	b.WriteString("\n")
	b.WriteString(dropdown.View())
	return b.String()
}
