package ffi

import (
	"sync/atomic"

	"github.com/ebitengine/purego"
)

// CallbackFactory turns a Go function into a C-callable address.
type CallbackFactory func(fn any) uintptr

var callbacks atomic.Pointer[CallbackFactory]

// NewCallback returns a C function pointer that calls fn. fn must take and
// return only pointer-sized integer arguments. Callback slots are a finite
// process-wide resource, so create them once per vtable, not per object.
func NewCallback(fn any) uintptr {
	if f := callbacks.Load(); f != nil {
		return (*f)(fn)
	}
	return purego.NewCallback(fn)
}

// SetCallbackFactory replaces callback creation. Passing nil restores
// purego. It returns a function that reinstates the previous factory.
func SetCallbackFactory(f CallbackFactory) (restore func()) {
	var prev *CallbackFactory
	if f == nil {
		prev = callbacks.Swap(nil)
	} else {
		prev = callbacks.Swap(&f)
	}
	return func() { callbacks.Store(prev) }
}
