package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestScreenLayers(t *testing.T) {
	s := NewScreen("autocomplete", "", "autocomplete", "tooltips")

	assert.Equal(t, []string{BaseLayer, "autocomplete", "tooltips"}, s.Layers())
	assert.True(t, s.HasLayer("autocomplete"))
	assert.True(t, s.HasLayer(BaseLayer))
	assert.False(t, s.HasLayer("modal"))
}

func TestScreenOverlaysBlockOnBase(t *testing.T) {
	s := NewScreen("autocomplete")
	base := "title\n> hel\nstatus line here"

	s.Place("autocomplete", 2, 2, "hello\nhelp\n")
	out := ansi.Strip(s.Render(base, 0))

	assert.Equal(t, []string{
		"title",
		"> hel",
		"sthelloline here",
		"  help",
	}, strings.Split(out, "\n"))
}

func TestScreenIgnoresUnknownLayer(t *testing.T) {
	s := NewScreen()
	s.Place("autocomplete", 0, 0, "hidden")
	assert.Equal(t, "base", s.Render("base", 0))
}

func TestScreenLaterLayersDrawOnTop(t *testing.T) {
	s := NewScreen("autocomplete", "tooltips")
	s.Place("tooltips", 0, 0, "TT")
	s.Place("autocomplete", 0, 0, "ac")

	assert.Equal(t, "TT", ansi.Strip(s.Render("", 0)))
}

func TestScreenClearAndClip(t *testing.T) {
	s := NewScreen("autocomplete")
	s.Place("autocomplete", 0, 1, "one\ntwo\nthree")

	assert.Equal(t, []string{"base", "one"}, strings.Split(ansi.Strip(s.Render("base", 2)), "\n"))

	s.Clear()
	assert.Equal(t, "base", s.Render("base", 0))
}
