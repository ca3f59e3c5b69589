package slang

import (
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

// SharedLibrary is a library loaded by the compiler's loader.
type SharedLibrary struct{ castable }

func (*SharedLibrary) iid() abi.GUID { return abi.IIDSharedLibrary }

// Clone adds a reference and returns a new handle.
func (l *SharedLibrary) Clone() *SharedLibrary { return clone(l) }

// FindSymbol returns the address of an exported symbol.
func (l *SharedLibrary) FindSymbol(name string) (uintptr, bool) {
	p := ffi.Call(ffi.Vtbl[abi.SharedLibraryVtbl](l.live()).FindSymbolAddressByName,
		uintptr(l.ptr), uintptr(ffi.CStringArg(name)))
	return p, p != 0
}

// FindFunc returns a function calling the exported symbol with the C
// calling convention.
func (l *SharedLibrary) FindFunc(name string) (func(args ...uintptr) uintptr, bool) {
	fn, ok := l.FindSymbol(name)
	if !ok {
		return nil, false
	}
	return func(args ...uintptr) uintptr { return ffi.Call(fn, args...) }, true
}

// SharedLibraryLoader loads downstream compilers and other libraries on
// behalf of the compiler.
type SharedLibraryLoader struct{ object }

func (*SharedLibraryLoader) iid() abi.GUID { return abi.IIDSharedLibraryLoader }

// Clone adds a reference and returns a new handle.
func (l *SharedLibraryLoader) Clone() *SharedLibraryLoader { return clone(l) }

// LoadSharedLibrary loads the library at path.
func (l *SharedLibraryLoader) LoadSharedLibrary(path string) (*SharedLibrary, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(ffi.Vtbl[abi.SharedLibraryLoaderVtbl](l.live()).LoadSharedLibrary,
		uintptr(l.ptr), uintptr(ffi.CStringArg(path)), uintptr(unsafe.Pointer(&out))))
	if r.Failed() {
		return nil, errors.New(errors.PhaseLoad, errors.KindOf(r)).
			Op("load shared library").Path(path).Code(r).Build()
	}
	if out == nil {
		return nil, nullErr(errors.PhaseLoad, "load shared library", nil)
	}
	return wrap[SharedLibrary](out), nil
}
