package slang

import (
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Metadata describes generated code.
type Metadata struct{ castable }

func (*Metadata) iid() abi.GUID { return abi.IIDMetadata }

func (m *Metadata) vt() *abi.MetadataVtbl { return ffi.Vtbl[abi.MetadataVtbl](m.live()) }

// Clone adds a reference and returns a new handle.
func (m *Metadata) Clone() *Metadata { return clone(m) }

// IsParameterLocationUsed reports whether the generated code touches the
// given register of category in space.
func (m *Metadata) IsParameterLocationUsed(category abi.ParameterCategory, space, register uint) (bool, error) {
	var used bool
	r := ffi.Result(ffi.Call(m.vt().IsParameterLocationUsed,
		uintptr(m.ptr), uintptr(category), uintptr(space), uintptr(register),
		uintptr(unsafe.Pointer(&used))))
	if err := check(errors.PhaseReflect, "is parameter location used", r, nil); err != nil {
		return false, err
	}
	return used, nil
}

// DebugBuildIdentifier returns the identifier linking the code to its
// separate debug information, or "".
func (m *Metadata) DebugBuildIdentifier() string {
	return goString(ffi.Call(m.vt().GetDebugBuildIdentifier, uintptr(m.ptr)))
}

// CompileResult holds the items produced by one compilation, for example
// one blob per generated file.
type CompileResult struct{ castable }

func (*CompileResult) iid() abi.GUID { return abi.IIDCompileResult }

func (c *CompileResult) vt() *abi.CompileResultVtbl {
	return ffi.Vtbl[abi.CompileResultVtbl](c.live())
}

// Clone adds a reference and returns a new handle.
func (c *CompileResult) Clone() *CompileResult { return clone(c) }

// ItemCount returns the number of items.
func (c *CompileResult) ItemCount() int {
	return int(ffi.Uint32(ffi.Call(c.vt().GetItemCount, uintptr(c.ptr))))
}

// ItemData returns item i.
func (c *CompileResult) ItemData(i int) (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetItemData,
		uintptr(c.ptr), uintptr(uint32(i)), uintptr(unsafe.Pointer(&out))))
	return blobResult(r, out, errors.PhaseCodegen, "compile result item")
}

// Metadata returns metadata for the whole result.
func (c *CompileResult) Metadata() (*Metadata, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetMetadata, uintptr(c.ptr), uintptr(unsafe.Pointer(&out))))
	m, _, err := metadataResult(r, out, nil, "compile result metadata")
	return m, err
}
