package resource

import (
	"sync"
)

// Table wraps a Backend with kind checks, Dropper support and observers.
type Table struct {
	backend   Backend
	observers map[int]Observer
	nextObs   int
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates an empty table backed by a LocalBackend.
func NewTable() *Table {
	return NewTableWithBackend(NewLocalBackend())
}

// NewTableWithBackend creates a table over b.
func NewTableWithBackend(b Backend) *Table {
	return &Table{backend: b}
}

// Insert adds a value with one reference and returns its handle, or 0 if
// the table is closed.
func (t *Table) Insert(kind Kind, value any) Handle {
	t.closeMu.RLock()
	if t.closed {
		t.closeMu.RUnlock()
		return 0
	}
	t.closeMu.RUnlock()

	handle, err := t.backend.Create(kind, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: handle,
		Kind:   kind,
		Refs:   1,
		Value:  value,
	})
	return handle
}

// Get retrieves a value by handle.
func (t *Table) Get(handle Handle) (any, bool) {
	return t.backend.Get(handle)
}

// GetTyped retrieves a value only if it was inserted with kind.
func (t *Table) GetTyped(handle Handle, kind Kind) (any, bool) {
	actual, ok := t.backend.Kind(handle)
	if !ok || actual != kind {
		return nil, false
	}
	return t.backend.Get(handle)
}

// Refs returns the current reference count of handle.
func (t *Table) Refs(handle Handle) uint32 {
	return t.backend.Refs(handle)
}

// Retain adds a reference and returns the new count, 0 for an invalid
// handle.
func (t *Table) Retain(handle Handle) uint32 {
	refs := t.backend.Retain(handle)
	if refs == 0 {
		return 0
	}
	kind, _ := t.backend.Kind(handle)
	t.notify(Event{Type: EventRetained, Handle: handle, Kind: kind, Refs: refs})
	return refs
}

// Release removes a reference and returns the remaining count. Releasing
// the last reference drops the value.
func (t *Table) Release(handle Handle) uint32 {
	kind, _ := t.backend.Kind(handle)
	refs, value, dropped := t.backend.Release(handle)
	if !dropped {
		if refs > 0 {
			t.notify(Event{Type: EventReleased, Handle: handle, Kind: kind, Refs: refs})
		}
		return refs
	}
	t.dropped(handle, kind, value)
	return 0
}

// Remove drops a value regardless of outstanding references.
func (t *Table) Remove(handle Handle) (any, bool) {
	kind, _ := t.backend.Kind(handle)
	value, ok := t.backend.Drop(handle)
	if !ok {
		return nil, false
	}
	t.dropped(handle, kind, value)
	return value, true
}

func (t *Table) dropped(handle Handle, kind Kind, value any) {
	if d, ok := value.(Dropper); ok {
		d.Drop()
	}
	t.notify(Event{
		Type:   EventDropped,
		Handle: handle,
		Kind:   kind,
		Value:  value,
	})
}

// Subscribe adds an observer and returns a function that removes it.
func (t *Table) Subscribe(o Observer) (unsubscribe func()) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	if t.observers == nil {
		t.observers = map[int]Observer{}
	}
	id := t.nextObs
	t.nextObs++
	t.observers[id] = o
	return func() {
		t.obsMu.Lock()
		delete(t.observers, id)
		t.obsMu.Unlock()
	}
}

// Len returns the number of live values.
func (t *Table) Len() int {
	return t.backend.Len()
}

// Each iterates over live values until fn returns false.
func (t *Table) Each(fn func(Handle, Kind, any) bool) {
	t.backend.Each(fn)
}

// Clear drops all values.
func (t *Table) Clear() {
	var handles []Handle
	t.backend.Each(func(h Handle, _ Kind, _ any) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Close drops all values and rejects further inserts.
func (t *Table) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	return t.backend.Close()
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
