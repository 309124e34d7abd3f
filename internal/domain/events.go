package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventValueChanged     EventType = "ValueChanged"
	EventCursorChanged    EventType = "CursorChanged"
	EventInputClosed      EventType = "InputClosed"
	EventDropdownSynced   EventType = "DropdownSynced"
	EventDropdownMounted  EventType = "DropdownMounted"
	EventDropdownTornDown EventType = "DropdownTornDown"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ValueChangedEvent is emitted when the linked input's text changes
type ValueChangedEvent struct {
	Value string
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }

// CursorChangedEvent is emitted when the linked input's cursor moves
type CursorChangedEvent struct {
	Position int
}

func (e CursorChangedEvent) Type() EventType { return EventCursorChanged }

// InputClosedEvent is emitted once when the linked input is destroyed
type InputClosedEvent struct{}

func (e InputClosedEvent) Type() EventType { return EventInputClosed }

// DropdownSyncedEvent is emitted after a successful sync
type DropdownSyncedEvent struct {
	Filter     string
	MatchCount int
	Visible    bool
}

func (e DropdownSyncedEvent) Type() EventType { return EventDropdownSynced }

// DropdownMountedEvent is emitted when a dropdown attaches to its input
type DropdownMountedEvent struct {
	ID string
}

func (e DropdownMountedEvent) Type() EventType { return EventDropdownMounted }

// DropdownTornDownEvent is emitted when a dropdown releases its input
type DropdownTornDownEvent struct {
	ID     string
	Reason string
}

func (e DropdownTornDownEvent) Type() EventType { return EventDropdownTornDown }
