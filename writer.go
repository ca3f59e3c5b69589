package slang

import (
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Writer is an ISlangWriter, a text or binary output stream owned by the
// compiler. It implements io.Writer.
type Writer struct{ object }

func (*Writer) iid() abi.GUID { return abi.IIDWriter }

func (w *Writer) vt() *abi.WriterVtbl { return ffi.Vtbl[abi.WriterVtbl](w.live()) }

// Clone adds a reference and returns a new handle.
func (w *Writer) Clone() *Writer { return clone(w) }

// BeginAppendBuffer reserves space for up to n bytes inside the writer and
// returns it. Commit what was filled with EndAppendBuffer.
func (w *Writer) BeginAppendBuffer(n int) []byte {
	p := ffi.Ptr(ffi.Call(w.vt().BeginAppendBuffer, uintptr(w.ptr), uintptr(n)))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

// EndAppendBuffer commits the first n bytes of buf, which must come from
// BeginAppendBuffer.
func (w *Writer) EndAppendBuffer(buf []byte, n int) error {
	r := ffi.Result(ffi.Call(w.vt().EndAppendBuffer,
		uintptr(w.ptr), uintptr(unsafe.Pointer(unsafe.SliceData(buf))), uintptr(n)))
	return check(errors.PhaseHost, "end append buffer", r, nil)
}

// Write writes p. It implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r := ffi.Result(ffi.Call(w.vt().Write,
		uintptr(w.ptr), uintptr(unsafe.Pointer(unsafe.SliceData(p))), uintptr(len(p))))
	if err := check(errors.PhaseHost, "write", r, nil); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString writes s.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Flush flushes buffered output.
func (w *Writer) Flush() {
	ffi.Call(w.vt().Flush, uintptr(w.ptr))
}

// IsConsole reports whether the writer targets a console.
func (w *Writer) IsConsole() bool {
	return ffi.Bool(ffi.Call(w.vt().IsConsole, uintptr(w.ptr)))
}

// SetMode switches between text and binary output.
func (w *Writer) SetMode(mode abi.WriterMode) error {
	r := ffi.Result(ffi.Call(w.vt().SetMode, uintptr(w.ptr), uintptr(mode)))
	return check(errors.PhaseHost, "set mode", r, nil)
}
