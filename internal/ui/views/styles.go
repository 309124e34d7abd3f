package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the colors the dropdown is drawn with. Empty fields mean
// "keep what you have" when palettes are merged.
type Palette struct {
	Foreground  string
	Background  string
	Highlight   string // background of matched text
	HighlightFg string
	Meta        string // left and right columns
	Selected    string // background of the active row
	Error       string
	Accent      string
}

// DefaultPalette mirrors the classic look: matches on yellow, panel gray
func DefaultPalette() Palette {
	return Palette{
		Foreground:  "252",
		Background:  "236",
		Highlight:   "3", // yellow
		HighlightFg: "0",
		Meta:        "245",
		Selected:    "238",
		Error:       "203", // red
		Accent:      "99",
	}
}

// Merge returns p with every non-empty field of o applied on top
func (p Palette) Merge(o Palette) Palette {
	pick := func(base, override string) string {
		if override != "" {
			return override
		}
		return base
	}
	return Palette{
		Foreground:  pick(p.Foreground, o.Foreground),
		Background:  pick(p.Background, o.Background),
		Highlight:   pick(p.Highlight, o.Highlight),
		HighlightFg: pick(p.HighlightFg, o.HighlightFg),
		Meta:        pick(p.Meta, o.Meta),
		Selected:    pick(p.Selected, o.Selected),
		Error:       pick(p.Error, o.Error),
		Accent:      pick(p.Accent, o.Accent),
	}
}

// Styles contains all the style definitions for the UI
type Styles struct {
	Main        lipgloss.Style
	Highlight   lipgloss.Style
	LeftMeta    lipgloss.Style
	RightMeta   lipgloss.Style
	Selected    lipgloss.Style
	Panel       lipgloss.Style
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Help        lipgloss.Style
	StatusError lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return NewStylesFor(lipgloss.DefaultRenderer(), DefaultPalette())
}

// NewStylesFor builds styles bound to renderer r using palette p
func NewStylesFor(r *lipgloss.Renderer, p Palette) *Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Styles{
		Main: r.NewStyle().Foreground(lipgloss.Color(p.Foreground)),
		Highlight: r.NewStyle().
			Background(lipgloss.Color(p.Highlight)).
			Foreground(lipgloss.Color(p.HighlightFg)),
		LeftMeta:  r.NewStyle().Foreground(lipgloss.Color(p.Meta)),
		RightMeta: r.NewStyle().Foreground(lipgloss.Color(p.Meta)).Italic(true),
		Selected:  r.NewStyle().Background(lipgloss.Color(p.Selected)),
		Panel:     r.NewStyle().Background(lipgloss.Color(p.Background)),
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Accent)).
			MarginBottom(1),
		Dim:         r.NewStyle().Faint(true),
		Help:        r.NewStyle().Faint(true),
		StatusError: r.NewStyle().Foreground(lipgloss.Color(p.Error)),
	}
}
