package autocomplete

import (
	"fmt"
	"log"

	"autocomplete/internal/domain"
	"autocomplete/internal/eventbus"
	"autocomplete/internal/input"
	"autocomplete/internal/ui/views"
)

// OverlayLayer is the layer a surface must provide for dropdowns to draw on
const OverlayLayer = "autocomplete"

// Phase is where a dropdown is in its lifecycle
type Phase int

const (
	Unattached Phase = iota
	Attached
	TornDown
)

func (p Phase) String() string {
	switch p {
	case Unattached:
		return "unattached"
	case Attached:
		return "attached"
	case TornDown:
		return "torn down"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Surface is the host screen a dropdown is mounted on
type Surface interface {
	HasLayer(name string) bool
}

// Lookup resolves an input selector to an input
type Lookup func(selector string) (input.Handle, error)

// Options configures a dropdown
type Options struct {
	Input    input.Handle   // the input to follow, or
	Selector string         // a selector resolved against the Lookup at mount time
	Provider ResultProvider // required

	ID      string   // optional stable name
	Classes []string // optional style classes for the host styling system

	Renderer  *views.DropdownRenderer // defaults to NewDropdownRenderer(nil)
	OnRefresh func(State)             // called after each successful sync
	Events    eventbus.EventBus       // optional; told about syncs, mounts and teardowns
}

// AutoComplete is a dropdown of completions linked to a text input. It follows
// the input's value and cursor, asks its provider for candidates on every
// change and renders them under the input.
type AutoComplete struct {
	opts     Options
	renderer *views.DropdownRenderer
	sync     *SyncController

	phase         Phase
	input         input.Handle
	subscriptions []func()
}

// New creates an unattached dropdown
func New(opts Options) (*AutoComplete, error) {
	if opts.Provider == nil {
		return nil, ErrNoProvider
	}
	if opts.Input == nil && opts.Selector == "" {
		return nil, ErrNoInput
	}
	if opts.Input != nil && opts.Selector != "" {
		return nil, ErrAmbiguousLink
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = views.NewDropdownRenderer(nil)
	}

	a := &AutoComplete{
		opts:     opts,
		renderer: renderer,
		phase:    Unattached,
	}
	a.sync = NewSyncController(opts.Provider, a.refresh)
	return a, nil
}

// ID returns the dropdown's identifier
func (a *AutoComplete) ID() string {
	return a.opts.ID
}

// Classes returns the dropdown's style classes
func (a *AutoComplete) Classes() []string {
	out := make([]string, len(a.opts.Classes))
	copy(out, a.opts.Classes)
	return out
}

// HasClass reports whether the dropdown carries style class name
func (a *AutoComplete) HasClass(name string) bool {
	for _, c := range a.opts.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Phase returns the lifecycle phase
func (a *AutoComplete) Phase() Phase {
	return a.phase
}

// Input returns the linked input once attached
func (a *AutoComplete) Input() (input.Handle, bool) {
	return a.input, a.input != nil
}

// Mount attaches the dropdown: it resolves the input, checks that surface has
// the overlay layer, subscribes to input changes and syncs once with the
// input's current value and cursor. Configuration failures are returned as
// *AttachError and leave the dropdown unattached with no subscriptions.
func (a *AutoComplete) Mount(surface Surface, lookup Lookup) error {
	switch a.phase {
	case Attached:
		return &AttachError{ID: a.opts.ID, Err: ErrAttached}
	case TornDown:
		return &AttachError{ID: a.opts.ID, Err: ErrTornDown}
	}

	handle, err := a.resolve(lookup)
	if err != nil {
		return &AttachError{ID: a.opts.ID, Err: err}
	}

	if surface == nil || !surface.HasLayer(OverlayLayer) {
		return &AttachError{
			ID:  a.opts.ID,
			Err: fmt.Errorf("%w: need a layer called %q", ErrLayerMissing, OverlayLayer),
		}
	}

	a.input = handle
	a.phase = Attached
	a.subscriptions = []func(){
		handle.OnValueChanged(func(value string) error {
			return a.Sync(value, handle.Position())
		}),
		handle.OnCursorChanged(func(position int) error {
			return a.Sync(handle.Value(), position)
		}),
		handle.OnClosed(func() error {
			a.teardown("input closed")
			return nil
		}),
	}

	if err := a.Sync(handle.Value(), handle.Position()); err != nil {
		a.release()
		a.input = nil
		a.phase = Unattached
		return err
	}

	log.Printf("Autocomplete: mounted %q", a.opts.ID)
	a.publish(domain.DropdownMountedEvent{ID: a.opts.ID})
	return nil
}

// Unmount releases the input. No syncs happen afterwards. Calling it more
// than once is harmless.
func (a *AutoComplete) Unmount() {
	a.teardown("unmounted")
}

// Sync refreshes the dropdown for the given input text and cursor offset.
// Provider errors are returned unchanged in a *ProviderError. Calling Sync on
// a dropdown that is not attached is a programming error and panics.
func (a *AutoComplete) Sync(text string, cursor int) error {
	if a.phase != Attached {
		panic(fmt.Sprintf("autocomplete: Sync called while %s", a.phase))
	}
	return a.sync.Sync(text, cursor)
}

// State returns the current dropdown state
func (a *AutoComplete) State() State {
	return a.sync.State()
}

// Visible reports whether the host should paint the dropdown
func (a *AutoComplete) Visible() bool {
	return Visible(a.sync.State())
}

// View renders the dropdown block
func (a *AutoComplete) View() string {
	s := a.sync.State()
	return a.renderer.Render(s.Filter, s.Matches, s.HighlightIndex)
}

// Measure reports the dropdown's intrinsic width range
func (a *AutoComplete) Measure() views.Measurement {
	return a.renderer.Measure(a.sync.State().Matches)
}

// Highlighted returns the active candidate, if any
func (a *AutoComplete) Highlighted() (domain.Candidate, bool) {
	return a.sync.State().Highlighted()
}

func (a *AutoComplete) resolve(lookup Lookup) (input.Handle, error) {
	if a.opts.Input != nil {
		return a.opts.Input, nil
	}
	if lookup == nil {
		return nil, fmt.Errorf("%w: no lookup for selector %q", ErrInputNotFound, a.opts.Selector)
	}
	handle, err := lookup(a.opts.Selector)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputNotFound, err)
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: selector %q", ErrInputNotFound, a.opts.Selector)
	}
	return handle, nil
}

func (a *AutoComplete) refresh(s State) {
	if a.opts.OnRefresh != nil {
		a.opts.OnRefresh(s)
	}
	a.publish(domain.DropdownSyncedEvent{
		Filter:     s.Filter,
		MatchCount: len(s.Matches),
		Visible:    Visible(s),
	})
}

// publish sends a lifecycle event. Handler failures are logged; they never
// undo the change being reported.
func (a *AutoComplete) publish(event domain.DomainEvent) {
	if a.opts.Events == nil {
		return
	}
	if err := a.opts.Events.Publish(event); err != nil {
		log.Printf("Autocomplete: %s handler failed: %v", event.Type(), err)
	}
}

func (a *AutoComplete) teardown(reason string) {
	if a.phase == TornDown {
		return
	}
	a.release()
	a.input = nil
	a.phase = TornDown
	log.Printf("Autocomplete: %q torn down (%s)", a.opts.ID, reason)
	a.publish(domain.DropdownTornDownEvent{ID: a.opts.ID, Reason: reason})
}

func (a *AutoComplete) release() {
	for _, unsubscribe := range a.subscriptions {
		unsubscribe()
	}
	a.subscriptions = nil
}
