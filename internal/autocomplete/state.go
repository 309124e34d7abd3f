package autocomplete

import (
	"autocomplete/internal/domain"
	"autocomplete/internal/ui/views"
)

// NoHighlight is the HighlightIndex of a state without matches
const NoHighlight = views.NoRow

// State is what the dropdown currently shows. Only the SyncController
// mutates it.
type State struct {
	Filter         string             // the input's full text at the last sync
	Matches        []domain.Candidate // exactly what the provider last returned
	HighlightIndex int                // active row, NoHighlight when Matches is empty
}

// NewState returns the empty state a dropdown starts with
func NewState() State {
	return State{HighlightIndex: NoHighlight}
}

// Visible reports whether a dropdown in state s should be painted: there is
// something to show and the user has typed something
func Visible(s State) bool {
	return len(s.Matches) > 0 && s.Filter != ""
}

// Highlighted returns the active candidate, if any
func (s State) Highlighted() (domain.Candidate, bool) {
	if s.HighlightIndex < 0 || s.HighlightIndex >= len(s.Matches) {
		return domain.Candidate{}, false
	}
	return s.Matches[s.HighlightIndex], true
}
