// Package ffitest fakes the native library for tests.
//
// A Harness replaces the ffi trampoline, symbol resolver and callback
// factory. Fake functions live at synthetic addresses that are never
// dereferenced; every ffi.Call to such an address is dispatched to a Go
// closure instead. Fake COM objects are Go memory laid out like native
// ones: the first word points to a vtable of synthetic addresses.
package ffitest

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Func is the Go side of a fake native function. args are the raw
// argument registers, including the interface pointer for vtable slots.
type Func func(args ...uintptr) uintptr

const ptrSize = unsafe.Sizeof(uintptr(0))

var (
	nextAddr atomic.Uintptr

	callbackMu sync.RWMutex
	callbackFn = map[uintptr]Func{}
)

func init() {
	nextAddr.Store(0x10000)
}

func newAddr() uintptr {
	return nextAddr.Add(16)
}

// Harness owns a set of fake symbols, functions and objects.
type Harness struct {
	t testing.TB

	mu      sync.Mutex
	funcs   map[uintptr]Func
	symbols map[string]uintptr
	calls   map[string]int
	keep    []any
}

// New installs a harness for the duration of the test.
func New(t testing.TB) *Harness {
	t.Helper()
	h := &Harness{
		t:       t,
		funcs:   map[uintptr]Func{},
		symbols: map[string]uintptr{},
		calls:   map[string]int{},
	}
	restoreInvoker := ffi.SetInvoker(h.dispatch)
	restoreResolver := ffi.SetResolver(h.resolve)
	restoreCallbacks := ffi.SetCallbackFactory(NewCallback)
	t.Cleanup(func() {
		restoreCallbacks()
		restoreResolver()
		restoreInvoker()
	})
	return h
}

func (h *Harness) dispatch(fn uintptr, args ...uintptr) uintptr {
	h.mu.Lock()
	f, ok := h.funcs[fn]
	h.mu.Unlock()
	if !ok {
		callbackMu.RLock()
		f, ok = callbackFn[fn]
		callbackMu.RUnlock()
	}
	if !ok {
		panic(fmt.Sprintf("ffitest: call to unknown address %#x", fn))
	}
	return f(args...)
}

func (h *Harness) resolve(name string) (uintptr, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	addr, ok := h.symbols[name]
	if !ok {
		return 0, fmt.Errorf("ffitest: symbol %s not faked", name)
	}
	return addr, nil
}

// Func registers fn at a fresh synthetic address.
func (h *Harness) Func(fn Func) uintptr {
	addr := newAddr()
	h.mu.Lock()
	h.funcs[addr] = fn
	h.mu.Unlock()
	return addr
}

// Symbol fakes the export name. Calls are counted, see Calls.
func (h *Harness) Symbol(name string, fn Func) {
	addr := h.Func(func(args ...uintptr) uintptr {
		h.mu.Lock()
		h.calls[name]++
		h.mu.Unlock()
		return fn(args...)
	})
	h.mu.Lock()
	h.symbols[name] = addr
	h.mu.Unlock()
}

// Calls reports how often the faked export name was called.
func (h *Harness) Calls(name string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls[name]
}

// Keep pins v to the harness lifetime.
func (h *Harness) Keep(v any) {
	h.mu.Lock()
	h.keep = append(h.keep, v)
	h.mu.Unlock()
}

// CString returns the address of a NUL-terminated copy of s that stays
// valid for the harness lifetime.
func (h *Harness) CString(s string) uintptr {
	b := ffi.CString(s)
	h.Keep(b)
	return uintptr(unsafe.Pointer(b))
}

// R encodes a result code as a return register.
func R(code abi.Result) uintptr {
	return uintptr(uint32(code))
}

// Ptr converts an argument register back to a pointer.
func Ptr(arg uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&arg))
}

// Out stores v through the out-parameter register arg.
func Out(arg uintptr, v unsafe.Pointer) {
	if arg != 0 {
		*(*unsafe.Pointer)(Ptr(arg)) = v
	}
}

// GUID reads the interface identifier passed by pointer in arg.
func GUID(arg uintptr) abi.GUID {
	return *(*abi.GUID)(Ptr(arg))
}

// Str reads a NUL-terminated string argument.
func Str(arg uintptr) string {
	s, _ := ffi.GoString(Ptr(arg))
	return s
}

// Slot converts a vtable field offset to a slot index.
func Slot(offset uintptr) int {
	return int(offset / ptrSize)
}

// NewCallback is the callback factory installed by New. The returned
// addresses remain valid across harnesses.
func NewCallback(fn any) uintptr {
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func || t.NumOut() > 1 {
		panic("ffitest: callback must be a function with at most one result")
	}

	addr := newAddr()
	f := func(args ...uintptr) uintptr {
		in := make([]reflect.Value, t.NumIn())
		for i := range in {
			var a uintptr
			if i < len(args) {
				a = args[i]
			}
			in[i] = fromReg(t.In(i), a)
		}
		out := v.Call(in)
		if len(out) == 0 {
			return 0
		}
		return toReg(out[0])
	}

	callbackMu.Lock()
	callbackFn[addr] = f
	callbackMu.Unlock()
	return addr
}

func fromReg(t reflect.Type, a uintptr) reflect.Value {
	switch t.Kind() {
	case reflect.UnsafePointer:
		return reflect.ValueOf(Ptr(a)).Convert(t)
	case reflect.Pointer:
		return reflect.NewAt(t.Elem(), Ptr(a))
	case reflect.Bool:
		return reflect.ValueOf(a&0xff != 0).Convert(t)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		v := reflect.New(t).Elem()
		v.SetInt(int64(a))
		if t.Kind() == reflect.Int32 {
			v.SetInt(int64(int32(uint32(a))))
		}
		return v
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		v := reflect.New(t).Elem()
		v.SetUint(uint64(a))
		return v
	}
	panic("ffitest: unsupported callback argument type " + t.String())
}

func toReg(v reflect.Value) uintptr {
	switch v.Kind() {
	case reflect.UnsafePointer:
		return uintptr(v.UnsafePointer())
	case reflect.Pointer:
		return v.Pointer()
	case reflect.Bool:
		if v.Bool() {
			return 1
		}
		return 0
	case reflect.Int32:
		return uintptr(uint32(int32(v.Int())))
	case reflect.Int8, reflect.Int16, reflect.Int64, reflect.Int:
		return uintptr(v.Int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return uintptr(v.Uint())
	}
	panic("ffitest: unsupported callback result type " + v.Type().String())
}
