package ffitest

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
)

// Object is a fake COM object. Its memory starts with a pointer to a table
// of synthetic function addresses sized for the vtable type it was created
// with. The reference count starts at one.
type Object struct {
	h    *Harness
	mem  []unsafe.Pointer
	vtbl []uintptr
	iids []abi.GUID
	refs atomic.Int32

	mu   sync.Mutex
	hits map[int]int
}

// NewObject fakes an object whose vtable has the layout of V. It answers
// QueryInterface for IUnknown and iids and counts references.
func NewObject[V any](h *Harness, iids ...abi.GUID) *Object {
	var v V
	n := int(unsafe.Sizeof(v) / ptrSize)
	if n < 3 {
		n = 3
	}
	o := &Object{
		h:    h,
		mem:  make([]unsafe.Pointer, 2),
		vtbl: make([]uintptr, n),
		iids: append([]abi.GUID{abi.IIDUnknown}, iids...),
		hits: map[int]int{},
	}
	o.mem[0] = unsafe.Pointer(&o.vtbl[0])
	o.refs.Store(1)
	for i := range o.vtbl {
		slot := i
		o.vtbl[i] = h.Func(func(args ...uintptr) uintptr {
			o.hit(slot)
			panic("ffitest: unfaked vtable slot called")
		})
	}
	o.Set(0, o.queryInterface)
	o.Set(1, func(...uintptr) uintptr { return uintptr(o.refs.Add(1)) })
	o.Set(2, func(...uintptr) uintptr { return uintptr(o.refs.Add(-1)) })
	h.Keep(o)
	return o
}

func (o *Object) queryInterface(args ...uintptr) uintptr {
	iid := GUID(args[1])
	if o.Implements(iid) {
		o.refs.Add(1)
		Out(args[2], o.Ptr())
		return R(abi.ResultOK)
	}
	Out(args[2], nil)
	return R(abi.ResultNoInterface)
}

func (o *Object) hit(slot int) {
	o.mu.Lock()
	o.hits[slot]++
	o.mu.Unlock()
}

// Implements reports whether QueryInterface succeeds for iid.
func (o *Object) Implements(iid abi.GUID) bool {
	for _, g := range o.iids {
		if g == iid {
			return true
		}
	}
	return false
}

// Set fakes vtable slot i. The receiver pointer is args[0].
func (o *Object) Set(slot int, fn Func) *Object {
	o.vtbl[slot] = o.h.Func(func(args ...uintptr) uintptr {
		o.hit(slot)
		return fn(args...)
	})
	return o
}

// SetAt fakes the slot at the given vtable field offset, as obtained from
// unsafe.Offsetof.
func (o *Object) SetAt(offset uintptr, fn Func) *Object {
	return o.Set(Slot(offset), fn)
}

// Castable fakes castAs (slot 3): it returns the object itself, without a
// reference, for any interface it implements.
func (o *Object) Castable() *Object {
	return o.Set(3, func(args ...uintptr) uintptr {
		if o.Implements(GUID(args[1])) {
			return o.Addr()
		}
		return 0
	})
}

// Hits reports how often slot was called.
func (o *Object) Hits(slot int) int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.hits[slot]
}

// HitsAt is Hits by vtable field offset.
func (o *Object) HitsAt(offset uintptr) int {
	return o.Hits(Slot(offset))
}

// Ptr returns the interface pointer.
func (o *Object) Ptr() unsafe.Pointer { return unsafe.Pointer(&o.mem[0]) }

// Addr returns the interface pointer as a register value.
func (o *Object) Addr() uintptr { return uintptr(o.Ptr()) }

// Refs returns the current reference count.
func (o *Object) Refs() int { return int(o.refs.Load()) }

// NewBlob fakes a blob holding a copy of data.
func NewBlob(h *Harness, data []byte) *Object {
	buf := append([]byte(nil), data...)
	if len(buf) == 0 {
		buf = make([]byte, 1)[:0]
	}
	o := NewObject[abi.BlobVtbl](h, abi.IIDBlob)
	o.SetAt(unsafe.Offsetof(abi.BlobVtbl{}.GetBufferPointer), func(...uintptr) uintptr {
		return uintptr(unsafe.Pointer(unsafe.SliceData(buf[:cap(buf)])))
	})
	o.SetAt(unsafe.Offsetof(abi.BlobVtbl{}.GetBufferSize), func(...uintptr) uintptr {
		return uintptr(len(buf))
	})
	return o
}

// NewStringBlob fakes a diagnostics blob holding s.
func NewStringBlob(h *Harness, s string) *Object {
	return NewBlob(h, []byte(s))
}
