package slang

import (
	"sync"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
	"github.com/wippyai/slang-go/resource"
)

// hostObject is the memory the compiler sees for a Go-implemented COM
// object: a vtable pointer followed by the handle of the Go value in the
// host table.
type hostObject struct {
	vtbl   unsafe.Pointer
	handle resource.Handle
}

// hostEntry is what the host table stores. It keeps the object memory and
// everything it points to reachable while the compiler holds references.
type hostEntry struct {
	obj   *hostObject
	iids  []abi.GUID
	value any
}

func (e *hostEntry) Drop() {
	if d, ok := e.value.(resource.Dropper); ok {
		d.Drop()
	}
}

var hosts = resource.NewTable()

// HostObjects returns the table of live Go-implemented objects. It is
// exposed for leak checks and lifecycle observers.
func HostObjects() *resource.Table { return hosts }

// newHost registers value behind a fresh object with one reference.
func newHost(kind resource.Kind, vtbl unsafe.Pointer, iids []abi.GUID, value any) unsafe.Pointer {
	obj := &hostObject{vtbl: vtbl}
	obj.handle = hosts.Insert(kind, &hostEntry{obj: obj, iids: iids, value: value})
	return unsafe.Pointer(obj)
}

func hostEntryOf(this uintptr) (*hostEntry, bool) {
	if this == 0 {
		return nil, false
	}
	obj := (*hostObject)(ffi.Ptr(this))
	v, ok := hosts.Get(obj.handle)
	if !ok {
		return nil, false
	}
	e, ok := v.(*hostEntry)
	return e, ok
}

func (e *hostEntry) implements(iid abi.GUID) bool {
	for _, g := range e.iids {
		if g == iid {
			return true
		}
	}
	return false
}

func resultReg(r abi.Result) uintptr { return uintptr(uint32(r)) }

// unknownCallbacks implement IUnknown and ICastable for every host object.
type unknownCallbacks struct {
	queryInterface uintptr
	addRef         uintptr
	release        uintptr
	castAs         uintptr
}

var (
	unknownOnce sync.Once
	unknownCB   unknownCallbacks
)

func hostUnknown() unknownCallbacks {
	unknownOnce.Do(func() {
		unknownCB = unknownCallbacks{
			queryInterface: ffi.NewCallback(hostQueryInterface),
			addRef:         ffi.NewCallback(hostAddRef),
			release:        ffi.NewCallback(hostRelease),
			castAs:         ffi.NewCallback(hostCastAs),
		}
	})
	return unknownCB
}

func (cb unknownCallbacks) vtbl() abi.UnknownVtbl {
	return abi.UnknownVtbl{QueryInterface: cb.queryInterface, AddRef: cb.addRef, Release: cb.release}
}

func (cb unknownCallbacks) castable() abi.CastableVtbl {
	return abi.CastableVtbl{UnknownVtbl: cb.vtbl(), CastAs: cb.castAs}
}

func hostQueryInterface(this, iid, out uintptr) uintptr {
	outp := (*unsafe.Pointer)(ffi.Ptr(out))
	e, ok := hostEntryOf(this)
	if !ok || iid == 0 {
		if outp != nil {
			*outp = nil
		}
		return resultReg(abi.ResultInvalidArg)
	}
	if !e.implements(*(*abi.GUID)(ffi.Ptr(iid))) {
		if outp != nil {
			*outp = nil
		}
		return resultReg(abi.ResultNoInterface)
	}
	hosts.Retain(e.obj.handle)
	if outp != nil {
		*outp = unsafe.Pointer(e.obj)
	}
	return resultReg(abi.ResultOK)
}

func hostAddRef(this uintptr) uintptr {
	e, ok := hostEntryOf(this)
	if !ok {
		return 0
	}
	return uintptr(hosts.Retain(e.obj.handle))
}

func hostRelease(this uintptr) uintptr {
	e, ok := hostEntryOf(this)
	if !ok {
		return 0
	}
	n := hosts.Release(e.obj.handle)
	if n == 0 {
		debugf("host object %d dropped", e.obj.handle)
	}
	return uintptr(n)
}

func hostCastAs(this, iid uintptr) uintptr {
	e, ok := hostEntryOf(this)
	if !ok || iid == 0 || !e.implements(*(*abi.GUID)(ffi.Ptr(iid))) {
		return 0
	}
	return this
}
