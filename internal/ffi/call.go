package ffi

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/wippyai/slang-go/abi"
)

// Invoker performs a native call. The default forwards to purego.
type Invoker func(fn uintptr, args ...uintptr) uintptr

var invoker atomic.Pointer[Invoker]

func purecall(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}

func invoke(fn uintptr, args ...uintptr) uintptr {
	if fn == 0 {
		panic(fmt.Sprintf("ffi: call through null function pointer (%d args)", len(args)))
	}
	if inv := invoker.Load(); inv != nil {
		return (*inv)(fn, args...)
	}
	return purecall(fn, args...)
}

// SetInvoker replaces the call trampoline. Passing nil restores purego. It
// returns a function that reinstates the previous invoker.
func SetInvoker(inv Invoker) (restore func()) {
	var prev *Invoker
	if inv == nil {
		prev = invoker.Swap(nil)
	} else {
		prev = invoker.Swap(&inv)
	}
	return func() { invoker.Store(prev) }
}

// Call invokes the native function at fn. Go memory passed as
// uintptr(unsafe.Pointer(...)) in args stays alive for the duration of the
// call; anything reachable only through that memory must be pinned.
//
//go:uintptrescapes
func Call(fn uintptr, args ...uintptr) uintptr {
	return invoke(fn, args...)
}

// Vtbl returns the vtable of the interface pointer obj viewed as T.
func Vtbl[T any](obj unsafe.Pointer) *T {
	return (*T)(*(*unsafe.Pointer)(obj))
}

// Result decodes a SlangResult return.
func Result(r uintptr) abi.Result {
	return abi.Result(int32(uint32(r)))
}

// Bool decodes a one-byte C bool return; upper register bits are garbage.
func Bool(r uintptr) bool {
	return r&0xff != 0
}

// BoolArg encodes a Go bool argument.
func BoolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// Int32 decodes a 32-bit signed return.
func Int32(r uintptr) int32 {
	return int32(uint32(r))
}

// Uint32 decodes a 32-bit unsigned return.
func Uint32(r uintptr) uint32 {
	return uint32(r)
}

// Ptr converts a pointer-sized return to unsafe.Pointer. Only use it for
// addresses of native memory.
func Ptr(r uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&r))
}
