package slang

import (
	"sync"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
	"github.com/wippyai/slang-go/resource"
)

type hostBlob struct {
	data []byte
}

var (
	blobVtblOnce sync.Once
	blobVtbl     *abi.BlobVtbl
	blobIIDs     = []abi.GUID{abi.IIDUnknown, abi.IIDBlob}
)

func hostBlobVtbl() *abi.BlobVtbl {
	blobVtblOnce.Do(func() {
		blobVtbl = &abi.BlobVtbl{
			UnknownVtbl:      hostUnknown().vtbl(),
			GetBufferPointer: ffi.NewCallback(hostBlobPointer),
			GetBufferSize:    ffi.NewCallback(hostBlobSize),
		}
	})
	return blobVtbl
}

// NewBlob returns a blob implemented in Go holding a copy of data. It can
// be passed wherever the compiler expects an ISlangBlob; the copy lives
// until the compiler and the returned handle have both released it.
func NewBlob(data []byte) *Blob {
	b := &hostBlob{data: append([]byte(nil), data...)}
	p := newHost(resource.KindBlob, unsafe.Pointer(hostBlobVtbl()), blobIIDs, b)
	return wrap[Blob](p)
}

// NewStringBlob is NewBlob for text. The stored bytes are NUL-terminated
// and the terminator is not counted in Size.
func NewStringBlob(s string) *Blob {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	b := &hostBlob{data: buf[:len(s)]}
	p := newHost(resource.KindBlob, unsafe.Pointer(hostBlobVtbl()), blobIIDs, b)
	return wrap[Blob](p)
}

func hostBlobOf(this uintptr) *hostBlob {
	e, ok := hostEntryOf(this)
	if !ok {
		return nil
	}
	b, _ := e.value.(*hostBlob)
	return b
}

func hostBlobPointer(this uintptr) uintptr {
	b := hostBlobOf(this)
	if b == nil || cap(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
}

func hostBlobSize(this uintptr) uintptr {
	b := hostBlobOf(this)
	if b == nil {
		return 0
	}
	return uintptr(len(b.data))
}
