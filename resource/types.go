package resource

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// EventType distinguishes lifecycle notifications.
type EventType uint8

const (
	EventCreated EventType = iota
	EventRetained
	EventReleased
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventRetained:
		return "retained"
	case EventReleased:
		return "released"
	case EventDropped:
		return "dropped"
	}
	return "unknown"
}

// Event describes a lifecycle change. Refs is the reference count after
// the change.
type Event struct {
	Value  any
	Handle Handle
	Kind   Kind
	Refs   uint32
	Type   EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) OnResourceEvent(e Event) { f(e) }

// Backend provides the underlying storage.
type Backend interface {
	// Create stores a value with one reference and returns its handle.
	Create(kind Kind, value any) (Handle, error)

	// Get retrieves a value by handle.
	Get(handle Handle) (any, bool)

	// Kind reports the kind a value was created with.
	Kind(handle Handle) (Kind, bool)

	// Refs returns the reference count, 0 for an invalid handle.
	Refs(handle Handle) uint32

	// Retain adds a reference and returns the new count, or 0 if the
	// handle is invalid.
	Retain(handle Handle) uint32

	// Release removes a reference. When the count reaches zero the entry
	// is freed and its value returned with dropped set.
	Release(handle Handle) (refs uint32, value any, dropped bool)

	// Drop frees an entry regardless of its reference count.
	Drop(handle Handle) (any, bool)

	// Len returns the number of live values.
	Len() int

	// Each iterates over live values until fn returns false.
	Each(fn func(Handle, Kind, any) bool)

	// Close releases all values held by the backend.
	Close() error
}

// Dropper is optionally implemented by values that need cleanup once the
// native side no longer references them.
type Dropper interface {
	Drop()
}
