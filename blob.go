package slang

import (
	"strings"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Blob is a read-only byte buffer, usually produced by the compiler.
// Every method is safe on a nil *Blob, which is how absent diagnostics
// are represented.
type Blob struct{ object }

func (*Blob) iid() abi.GUID { return abi.IIDBlob }

func (b *Blob) vt() *abi.BlobVtbl { return ffi.Vtbl[abi.BlobVtbl](b.live()) }

// Clone adds a reference and returns a new handle.
func (b *Blob) Clone() *Blob {
	if b == nil {
		return nil
	}
	return clone(b)
}

// Release drops the reference. It is a no-op on nil.
func (b *Blob) Release() uint32 {
	if b == nil {
		return 0
	}
	return b.object.Release()
}

// Pointer returns the start of the buffer. The memory belongs to the blob.
func (b *Blob) Pointer() unsafe.Pointer {
	if b == nil || b.ptr == nil {
		return nil
	}
	return ffi.Ptr(ffi.Call(b.vt().GetBufferPointer, uintptr(b.ptr)))
}

// Size returns the buffer length in bytes.
func (b *Blob) Size() int {
	if b == nil || b.ptr == nil {
		return 0
	}
	return int(ffi.Call(b.vt().GetBufferSize, uintptr(b.ptr)))
}

// Bytes copies the buffer.
func (b *Blob) Bytes() []byte {
	if b == nil || b.ptr == nil {
		return nil
	}
	return ffi.GoBytes(b.Pointer(), b.Size())
}

// String returns the buffer as text without a trailing NUL.
func (b *Blob) String() string {
	if b == nil || b.ptr == nil {
		return ""
	}
	return strings.TrimRight(ffi.GoStringN(b.Pointer(), b.Size()), "\x00")
}

// outBlob wraps a blob returned through an out-parameter.
func outBlob(p unsafe.Pointer) *Blob {
	return wrap[Blob](p)
}
