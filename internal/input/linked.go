package input

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hashicorp/go-multierror"

	"autocomplete/internal/domain"
	"autocomplete/internal/eventbus"
)

// ErrClosed is returned when a closed input is asked to change
var ErrClosed = errors.New("input closed")

// Handle is what a dropdown needs from the input it is linked to: the live
// value and cursor, and registration points for change notifications.
// Registration functions return an unsubscribe function.
type Handle interface {
	Value() string
	Position() int
	OnValueChanged(fn func(value string) error) func()
	OnCursorChanged(fn func(position int) error) func()
	OnClosed(fn func() error) func()
}

// Linked is a single-line text input that reports its own changes. Editing
// is done by the wrapped bubbles textinput; Linked compares value and cursor
// around each update and publishes what changed.
type Linked struct {
	name   string
	model  textinput.Model
	bus    eventbus.EventBus
	closed bool
}

// New creates a linked input with the given name and prompt
func New(name, prompt string) *Linked {
	ti := textinput.New()
	ti.Prompt = prompt
	return &Linked{
		name:  name,
		model: ti,
		bus:   eventbus.New(),
	}
}

// Name returns the name the input is registered under
func (l *Linked) Name() string {
	return l.name
}

// Value returns the current text
func (l *Linked) Value() string {
	return l.model.Value()
}

// Position returns the cursor offset in runes
func (l *Linked) Position() int {
	return l.model.Position()
}

// Model exposes the wrapped textinput for styling
func (l *Linked) Model() *textinput.Model {
	return &l.model
}

// Focus focuses the input and returns the cursor blink command
func (l *Linked) Focus() tea.Cmd {
	return l.model.Focus()
}

// Blur removes focus from the input
func (l *Linked) Blur() {
	l.model.Blur()
}

// View renders the input
func (l *Linked) View() string {
	return l.model.View()
}

// Closed reports whether Close has been called
func (l *Linked) Closed() bool {
	return l.closed
}

// Update passes msg to the textinput and notifies subscribers of any value or
// cursor change. The value notification is published before the cursor one.
// Subscriber errors are returned alongside the textinput command.
func (l *Linked) Update(msg tea.Msg) (tea.Cmd, error) {
	if l.closed {
		return nil, nil
	}
	oldValue, oldPos := l.model.Value(), l.model.Position()

	var cmd tea.Cmd
	l.model, cmd = l.model.Update(msg)

	return cmd, l.notify(oldValue, oldPos)
}

// SetValue replaces the text. An empty input's cursor moves to the end of the
// new text; otherwise it is only clamped.
func (l *Linked) SetValue(value string) error {
	if l.closed {
		return ErrClosed
	}
	oldValue, oldPos := l.model.Value(), l.model.Position()
	l.model.SetValue(value)
	return l.notify(oldValue, oldPos)
}

// SetCursor moves the cursor
func (l *Linked) SetCursor(pos int) error {
	if l.closed {
		return ErrClosed
	}
	oldValue, oldPos := l.model.Value(), l.model.Position()
	l.model.SetCursor(pos)
	return l.notify(oldValue, oldPos)
}

// Reset clears the text
func (l *Linked) Reset() error {
	if l.closed {
		return ErrClosed
	}
	oldValue, oldPos := l.model.Value(), l.model.Position()
	l.model.Reset()
	return l.notify(oldValue, oldPos)
}

// Close marks the input as destroyed and notifies close subscribers once
func (l *Linked) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.model.Blur()
	return l.bus.Publish(domain.InputClosedEvent{})
}

// OnValueChanged registers fn to run after every value change
func (l *Linked) OnValueChanged(fn func(value string) error) func() {
	return l.bus.Subscribe(domain.EventValueChanged, func(e eventbus.DomainEvent) error {
		return fn(e.(domain.ValueChangedEvent).Value)
	})
}

// OnCursorChanged registers fn to run after every cursor move
func (l *Linked) OnCursorChanged(fn func(position int) error) func() {
	return l.bus.Subscribe(domain.EventCursorChanged, func(e eventbus.DomainEvent) error {
		return fn(e.(domain.CursorChangedEvent).Position)
	})
}

// OnClosed registers fn to run when the input is closed
func (l *Linked) OnClosed(fn func() error) func() {
	return l.bus.Subscribe(domain.EventInputClosed, func(e eventbus.DomainEvent) error {
		return fn()
	})
}

// notify publishes the changes between the given old state and the current
// one. A failed value notification does not suppress the cursor one.
func (l *Linked) notify(oldValue string, oldPos int) error {
	var result *multierror.Error
	if value := l.model.Value(); value != oldValue {
		if err := l.bus.Publish(domain.ValueChangedEvent{Value: value}); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if pos := l.model.Position(); pos != oldPos {
		if err := l.bus.Publish(domain.CursorChangedEvent{Position: pos}); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if result != nil && len(result.Errors) == 1 {
		return result.Errors[0]
	}
	return result.ErrorOrNil()
}
