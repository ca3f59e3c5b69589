package slang

import (
	stderrors "errors"
	"io/fs"
	"path"
	"strings"
	"sync"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
	"github.com/wippyai/slang-go/resource"
)

// FileSystem is an ISlangFileSystem, used by the compiler to read source
// and module files.
type FileSystem struct{ castable }

func (*FileSystem) iid() abi.GUID { return abi.IIDFileSystem }

// Clone adds a reference and returns a new handle.
func (f *FileSystem) Clone() *FileSystem { return clone(f) }

// LoadFile reads path through the file system.
func (f *FileSystem) LoadFile(path string) (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(ffi.Vtbl[abi.FileSystemVtbl](f.live()).LoadFile,
		uintptr(f.ptr), uintptr(ffi.CStringArg(path)), uintptr(unsafe.Pointer(&out))))
	if r.Failed() {
		return nil, errors.New(errors.PhaseHost, errors.KindOf(r)).
			Op("load file").Path(path).Code(r).Build()
	}
	if out == nil {
		return nil, errors.NullResult(errors.PhaseHost, "load file", "")
	}
	return outBlob(out), nil
}

var (
	fsVtblOnce sync.Once
	fsVtbl     *abi.FileSystemVtbl
	fsIIDs     = []abi.GUID{abi.IIDUnknown, abi.IIDCastable, abi.IIDFileSystem}
)

func hostFileSystemVtbl() *abi.FileSystemVtbl {
	fsVtblOnce.Do(func() {
		fsVtbl = &abi.FileSystemVtbl{
			CastableVtbl: hostUnknown().castable(),
			LoadFile:     ffi.NewCallback(hostLoadFile),
		}
	})
	return fsVtbl
}

// NewFileSystem exposes fsys to the compiler. Paths the compiler asks for
// are cleaned and made relative before fsys is consulted, so "/a/b.slang",
// "./a/b.slang" and "a/b.slang" name the same file.
func NewFileSystem(fsys fs.FS) *FileSystem {
	p := newHost(resource.KindFileSystem, unsafe.Pointer(hostFileSystemVtbl()), fsIIDs, fsys)
	return wrap[FileSystem](p)
}

// FSPath maps a compiler path onto an fs.FS name.
func FSPath(name string) (string, bool) {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean("/" + name)[1:]
	if name == "" {
		name = "."
	}
	return name, fs.ValidPath(name)
}

func hostLoadFile(this, pathArg, out uintptr) uintptr {
	outp := (*unsafe.Pointer)(ffi.Ptr(out))
	if outp == nil {
		return resultReg(abi.ResultInvalidArg)
	}
	*outp = nil

	e, ok := hostEntryOf(this)
	if !ok {
		return resultReg(abi.ResultInvalidHandle)
	}
	fsys, ok := e.value.(fs.FS)
	if !ok {
		return resultReg(abi.ResultFail)
	}
	raw, ok := ffi.GoString(ffi.Ptr(pathArg))
	if !ok {
		return resultReg(abi.ResultInvalidArg)
	}
	name, ok := FSPath(raw)
	if !ok {
		return resultReg(abi.ResultNotFound)
	}

	data, err := fs.ReadFile(fsys, name)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		debugf("file system: %s not found", name)
		return resultReg(abi.ResultNotFound)
	case err != nil:
		debugf("file system: %s: %v", name, err)
		return resultReg(abi.ResultCannotOpen)
	}

	blob := NewBlob(data)
	*outp = blob.ptr
	blob.ptr = nil
	return resultReg(abi.ResultOK)
}
