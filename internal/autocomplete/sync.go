package autocomplete

import (
	"log"
)

// SyncController keeps a State consistent with the linked input
type SyncController struct {
	provider  ResultProvider
	state     State
	onRefresh func(State)
}

// NewSyncController creates a controller with an empty state. onRefresh, if
// not nil, is called after every successful sync.
func NewSyncController(provider ResultProvider, onRefresh func(State)) *SyncController {
	return &SyncController{
		provider:  provider,
		state:     NewState(),
		onRefresh: onRefresh,
	}
}

// State returns the current state
func (c *SyncController) State() State {
	return c.state
}

// Sync asks the provider for candidates matching text and cursor and replaces
// the state with the result. A provider failure is returned as a
// *ProviderError and leaves the state as it was.
func (c *SyncController) Sync(text string, cursor int) error {
	matches, err := c.provider.Results(text, cursor)
	if err != nil {
		log.Printf("Autocomplete: provider failed for %q: %v", text, err)
		return &ProviderError{Text: text, Cursor: cursor, Err: err}
	}

	highlight := NoHighlight
	if len(matches) > 0 {
		highlight = 0
	}
	c.state = State{
		Filter:         text,
		Matches:        matches,
		HighlightIndex: highlight,
	}

	if c.onRefresh != nil {
		c.onRefresh(c.state)
	}
	return nil
}
