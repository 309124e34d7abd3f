package autocomplete

import (
	"errors"
	"fmt"
)

// Configuration errors. They are fatal: a dropdown that fails to attach never
// subscribes to its input and never renders.
var (
	ErrNoProvider    = errors.New("autocomplete: result provider is required")
	ErrNoInput       = errors.New("autocomplete: a linked input or selector is required")
	ErrAmbiguousLink = errors.New("autocomplete: set either a linked input or a selector, not both")
	ErrInputNotFound = errors.New("autocomplete: linked input not found")
	ErrLayerMissing  = errors.New("autocomplete: surface has no overlay layer")
	ErrTornDown      = errors.New("autocomplete: dropdown already torn down")
	ErrAttached      = errors.New("autocomplete: dropdown already attached")
)

// AttachError describes why Mount failed
type AttachError struct {
	ID  string // dropdown identifier, may be empty
	Err error
}

func (e *AttachError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("attach %q: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("attach: %v", e.Err)
}

func (e *AttachError) Unwrap() error { return e.Err }

// ProviderError wraps a failure raised by the result provider during a sync.
// The dropdown state is unchanged when it is returned.
type ProviderError struct {
	Text   string
	Cursor int
	Err    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("result provider failed for %q at %d: %v", e.Text, e.Cursor, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
