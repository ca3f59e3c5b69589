package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Object is any handle backed by a native interface pointer, such as a
// global session.
type Object interface {
	Ptr() unsafe.Pointer
}

func ref[T any](r uintptr) *T {
	return (*T)(ffi.Ptr(r))
}

func opt[T any](r uintptr) (*T, bool) {
	p := ref[T](r)
	return p, p != nil
}

func str(r uintptr) string {
	s, _ := ffi.GoString(ffi.Ptr(r))
	return s
}

func optStr(r uintptr) (string, bool) {
	return ffi.GoString(ffi.Ptr(r))
}

func objPtr(o Object) unsafe.Pointer {
	if o == nil {
		return nil
	}
	return o.Ptr()
}

func check(op string, r uintptr) error {
	return errors.FromResult(errors.PhaseReflect, op, ffi.Result(r))
}

// indexed adapts an (index, count) accessor pair. The count is read each
// time the sequence starts.
func indexed[T any](count func() int, at func(int) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := count()
		for i := 0; i < n; i++ {
			if !yield(i, at(i)) {
				return
			}
		}
	}
}

// present drops absent children from an optional accessor.
func present[T any](count func() int, at func(int) (*T, bool)) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		n := count()
		for i := 0; i < n; i++ {
			v, ok := at(i)
			if !ok {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// takeBlob copies the contents of an owned blob and releases it.
func takeBlob(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}
	vt := ffi.Vtbl[abi.BlobVtbl](p)
	data := ffi.GoBytes(ffi.Ptr(ffi.Call(vt.GetBufferPointer, uintptr(p))),
		int(ffi.Call(vt.GetBufferSize, uintptr(p))))
	ffi.Call(vt.Release, uintptr(p))
	return data
}

func blobText(p unsafe.Pointer) string {
	b := takeBlob(p)
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b)
}
