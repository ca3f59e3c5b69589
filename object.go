package slang

import (
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Object is anything backed by a native interface pointer.
type Object interface {
	Ptr() unsafe.Pointer
}

// object holds one reference to a native interface pointer. The zero value
// is a released handle.
type object struct {
	ptr unsafe.Pointer
}

// Ptr returns the interface pointer, nil once released.
func (o *object) Ptr() unsafe.Pointer {
	if o == nil {
		return nil
	}
	return o.ptr
}

func (o *object) attach(p unsafe.Pointer) { o.ptr = p }

func (o *object) live() unsafe.Pointer {
	if o == nil || o.ptr == nil {
		panic("slang: use of released handle")
	}
	return o.ptr
}

func (o *object) unknown() *abi.UnknownVtbl {
	return ffi.Vtbl[abi.UnknownVtbl](o.live())
}

// AddRef adds a native reference and returns the new count. Every AddRef
// must be balanced by a Release of some handle to the same object.
func (o *object) AddRef() uint32 {
	return ffi.Uint32(ffi.Call(o.unknown().AddRef, uintptr(o.ptr)))
}

// Release drops the handle's reference and returns the remaining count as
// reported by the object. Releasing an already released handle returns 0.
func (o *object) Release() uint32 {
	if o == nil || o.ptr == nil {
		return 0
	}
	p := o.ptr
	o.ptr = nil
	n := ffi.Uint32(ffi.Call(ffi.Vtbl[abi.UnknownVtbl](p).Release, uintptr(p)))
	debugf("release %p -> %d", p, n)
	return n
}

// QueryInterface asks the object for iid. The returned pointer carries its
// own reference. A negative result or a null pointer reports false.
func (o *object) QueryInterface(iid abi.GUID) (unsafe.Pointer, bool) {
	return queryInterface(o.live(), iid)
}

func queryInterface(p unsafe.Pointer, iid abi.GUID) (unsafe.Pointer, bool) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(ffi.Vtbl[abi.UnknownVtbl](p).QueryInterface,
		uintptr(p), uintptr(unsafe.Pointer(&iid)), uintptr(unsafe.Pointer(&out))))
	if r.Failed() || out == nil {
		return nil, false
	}
	return out, true
}

// castable adds castAs to objects whose vtable derives from ICastable.
type castable struct {
	object
}

// CastAs returns the object's implementation of iid without adding a
// reference. The pointer is valid while this handle is.
func (c *castable) CastAs(iid abi.GUID) (unsafe.Pointer, bool) {
	p := ffi.Call(ffi.Vtbl[abi.CastableVtbl](c.live()).CastAs,
		uintptr(c.ptr), uintptr(unsafe.Pointer(&iid)))
	if p == 0 {
		return nil, false
	}
	return ffi.Ptr(p), true
}

// Castable is implemented by handles whose interface derives from ICastable.
type Castable interface {
	Object
	CastAs(iid abi.GUID) (unsafe.Pointer, bool)
}

// Handle is the constraint satisfied by every handle pointer type.
type Handle[T any] interface {
	*T
	Object
	iid() abi.GUID
	attach(unsafe.Pointer)
}

// Query asks o for the interface of handle type T. The result owns a new
// reference; an unsupported interface yields nil and false.
//
//	mod, ok := slang.Query[slang.Module](component)
func Query[T any, P Handle[T]](o Object) (P, bool) {
	var zero T
	h := P(&zero)
	p := o.Ptr()
	if p == nil {
		return nil, false
	}
	out, ok := queryInterface(p, h.iid())
	if !ok {
		return nil, false
	}
	h.attach(out)
	return h, true
}

// Cast is Query through ICastable::castAs. The borrowed result is
// add-ref'd so the returned handle owns its reference.
func Cast[T any, P Handle[T]](c Castable) (P, bool) {
	var zero T
	h := P(&zero)
	if c.Ptr() == nil {
		return nil, false
	}
	out, ok := c.CastAs(h.iid())
	if !ok {
		return nil, false
	}
	h.attach(out)
	ffi.Call(ffi.Vtbl[abi.UnknownVtbl](out).AddRef, uintptr(out))
	return h, true
}

// wrap takes ownership of p, returning nil for a null pointer.
func wrap[T any, P Handle[T]](p unsafe.Pointer) P {
	if p == nil {
		return nil
	}
	var zero T
	h := P(&zero)
	h.attach(p)
	return h
}

// borrow wraps a pointer returned without a reference and adds one.
func borrow[T any, P Handle[T]](p unsafe.Pointer) P {
	h := wrap[T, P](p)
	if p != nil {
		n := ffi.Uint32(ffi.Call(ffi.Vtbl[abi.UnknownVtbl](p).AddRef, uintptr(p)))
		debugf("acquire %p -> %d", p, n)
	}
	return h
}

// clone adds a reference to src and returns a second handle for it.
func clone[T any, P Handle[T]](src P) P {
	p := src.Ptr()
	if p == nil {
		return nil
	}
	return borrow[T, P](p)
}

// Unknown is a handle to a bare IUnknown.
type Unknown struct{ object }

func (*Unknown) iid() abi.GUID { return abi.IIDUnknown }

// WrapUnknown takes ownership of a reference to p.
func WrapUnknown(p unsafe.Pointer) *Unknown { return wrap[Unknown](p) }

// Clone adds a reference and returns a new handle.
func (u *Unknown) Clone() *Unknown { return clone(u) }

// CastableObject is a handle to an ICastable.
type CastableObject struct{ castable }

func (*CastableObject) iid() abi.GUID { return abi.IIDCastable }

// Clone adds a reference and returns a new handle.
func (c *CastableObject) Clone() *CastableObject { return clone(c) }

// Cloneable is a handle to an ICloneable.
type Cloneable struct{ castable }

func (*Cloneable) iid() abi.GUID { return abi.IIDCloneable }

// Clone adds a reference and returns a new handle.
func (c *Cloneable) Clone() *Cloneable { return clone(c) }

// CloneObject asks the object to produce a copy of itself implementing iid.
// The copy owns its reference.
func (c *Cloneable) CloneObject(iid abi.GUID) (*Unknown, bool) {
	p := ffi.Call(ffi.Vtbl[abi.CloneableVtbl](c.live()).Clone,
		uintptr(c.ptr), uintptr(unsafe.Pointer(&iid)))
	if p == 0 {
		return nil, false
	}
	return WrapUnknown(ffi.Ptr(p)), true
}
