package views

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// BaseLayer is the layer ordinary content is drawn on
const BaseLayer = "default"

// placement is a block positioned on a layer
type placement struct {
	x, y  int
	block string
}

// Screen composes base content with named overlay layers drawn on top of it
// in declaration order. Widgets that must paint above other content check
// for their layer before attaching.
type Screen struct {
	layers     []string
	placements map[string][]placement
}

// NewScreen creates a screen with the given layers. The base layer is always
// present and always first.
func NewScreen(layers ...string) *Screen {
	s := &Screen{
		layers:     []string{BaseLayer},
		placements: make(map[string][]placement),
	}
	for _, name := range layers {
		if name != "" && !s.HasLayer(name) {
			s.layers = append(s.layers, name)
		}
	}
	return s
}

// Layers returns the layer names in drawing order
func (s *Screen) Layers() []string {
	out := make([]string, len(s.layers))
	copy(out, s.layers)
	return out
}

// HasLayer reports whether a layer with the given name exists
func (s *Screen) HasLayer(name string) bool {
	for _, l := range s.layers {
		if l == name {
			return true
		}
	}
	return false
}

// Place puts block on layer with its top-left corner at column x, row y.
// Unknown layers are ignored.
func (s *Screen) Place(layer string, x, y int, block string) {
	if !s.HasLayer(layer) {
		return
	}
	s.placements[layer] = append(s.placements[layer], placement{x: x, y: y, block: block})
}

// Clear removes everything placed on every layer
func (s *Screen) Clear() {
	s.placements = make(map[string][]placement)
}

// Render draws base and then every layer's placements over it. A positive
// height clips the result.
func (s *Screen) Render(base string, height int) string {
	lines := strings.Split(base, "\n")
	for _, layer := range s.layers {
		for _, p := range s.placements[layer] {
			lines = overlay(lines, p)
		}
	}
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

// overlay replaces the cells covered by p in lines, keeping whatever is to
// the left and right of the block on each row
func overlay(lines []string, p placement) []string {
	block := strings.TrimSuffix(p.block, "\n")
	if block == "" {
		return lines
	}
	x := p.x
	if x < 0 {
		x = 0
	}
	for i, row := range strings.Split(block, "\n") {
		y := p.y + i
		if y < 0 {
			continue
		}
		for len(lines) <= y {
			lines = append(lines, "")
		}
		under := lines[y]

		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ""
		if end := x + ansi.StringWidth(row); end < ansi.StringWidth(under) {
			right = ansi.TruncateLeft(under, end, "")
		}
		lines[y] = left + ansi.ResetStyle + row + ansi.ResetStyle + right
	}
	return lines
}
