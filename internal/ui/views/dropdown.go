package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"autocomplete/internal/domain"
)

const (
	// MinDropdownWidth is the narrowest a dropdown ever measures
	MinDropdownWidth = 10
	// NoRow marks the absence of a selected row
	NoRow = -1
)

// Measurement is the intrinsic width range of a rendered block
type Measurement struct {
	Minimum int
	Maximum int
}

// DropdownRenderer turns candidates into the dropdown block
type DropdownRenderer struct {
	styles *Styles
}

// NewDropdownRenderer creates a new dropdown renderer
func NewDropdownRenderer(styles *Styles) *DropdownRenderer {
	if styles == nil {
		styles = NewStyles()
	}
	return &DropdownRenderer{
		styles: styles,
	}
}

// Styles returns the styles the renderer draws with
func (d *DropdownRenderer) Styles() *Styles {
	return d.styles
}

// Render draws one line per match: left column, main column with filter
// highlighting, right column. Every line, including the last, ends in a
// newline. No matches yields an empty block. Columns are joined without
// padding, so they do not line up across rows when meta widths differ.
func (d *DropdownRenderer) Render(filter string, matches []domain.Candidate, highlightIndex int) string {
	if len(matches) == 0 {
		return ""
	}

	var b strings.Builder
	for i, match := range matches {
		b.WriteString(d.RenderLine(match, filter, i == highlightIndex))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderLine draws a single candidate
func (d *DropdownRenderer) RenderLine(c domain.Candidate, filter string, selected bool) string {
	style := func(s lipgloss.Style) lipgloss.Style {
		if selected {
			return s.Inherit(d.styles.Selected)
		}
		return s
	}

	var parts []string
	if c.LeftMeta != "" {
		parts = append(parts, style(d.styles.LeftMeta).Render(c.LeftMeta))
	}
	for _, seg := range Segments(c.Main, Highlights(c.Main, filter, c.HighlightRanges)) {
		if seg.Highlighted {
			parts = append(parts, style(d.styles.Highlight).Render(seg.Text))
		} else {
			parts = append(parts, style(d.styles.Main).Render(seg.Text))
		}
	}
	if c.RightMeta != "" {
		parts = append(parts, style(d.styles.RightMeta).Render(c.RightMeta))
	}
	return strings.Join(parts, "")
}

// Measure reports the block's width range. The minimum is fixed; the maximum
// is the widest candidate's combined column width, never below the minimum.
func (d *DropdownRenderer) Measure(matches []domain.Candidate) Measurement {
	widest := 0
	for _, match := range matches {
		w := lipgloss.Width(match.LeftMeta) + lipgloss.Width(match.Main) + lipgloss.Width(match.RightMeta)
		if w > widest {
			widest = w
		}
	}
	if widest < MinDropdownWidth {
		widest = MinDropdownWidth
	}
	return Measurement{Minimum: MinDropdownWidth, Maximum: widest}
}
