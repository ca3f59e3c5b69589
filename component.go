package slang

import (
	"runtime"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
	"github.com/wippyai/slang-go/reflection"
)

// Component is implemented by every handle whose interface derives from
// IComponentType: *ComponentType, *EntryPoint, *TypeConformance and
// *Module.
type Component interface {
	Object
	component() *componentType
}

// componentType carries the IComponentType methods shared by all
// component handles.
type componentType struct{ object }

func (c *componentType) component() *componentType { return c }

func (c *componentType) vt() *abi.ComponentTypeVtbl {
	return ffi.Vtbl[abi.ComponentTypeVtbl](c.live())
}

// Session returns the session the component belongs to.
func (c *componentType) Session() *Session {
	return borrow[Session](ffi.Ptr(ffi.Call(c.vt().GetSession, uintptr(c.ptr))))
}

// Layout returns the program layout for the target at targetIndex. The
// layout is owned by the component and valid while it is.
func (c *componentType) Layout(targetIndex int) (*reflection.Shader, *Blob, error) {
	var diag unsafe.Pointer
	p := ffi.Call(c.vt().GetLayout, uintptr(c.ptr), uintptr(targetIndex), uintptr(unsafe.Pointer(&diag)))
	d := outBlob(diag)
	if p == 0 {
		return nil, d, nullErr(errors.PhaseReflect, "get layout", d)
	}
	return (*reflection.Shader)(ffi.Ptr(p)), d, nil
}

// SpecializationParamCount returns the number of unspecialized generic
// parameters.
func (c *componentType) SpecializationParamCount() int {
	return int(ffi.Call(c.vt().GetSpecializationParamCount, uintptr(c.ptr)))
}

// EntryPointCode generates code for one entry point and target.
func (c *componentType) EntryPointCode(entryPoint, target int) (*Blob, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetEntryPointCode,
		uintptr(c.ptr), uintptr(entryPoint), uintptr(target),
		uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return codeResult(r, out, diag, "entry point code")
}

// TargetCode generates code for the whole component and one target.
func (c *componentType) TargetCode(target int) (*Blob, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetTargetCode,
		uintptr(c.ptr), uintptr(target), uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return codeResult(r, out, diag, "target code")
}

func codeResult(r abi.Result, out, diag unsafe.Pointer, op string) (*Blob, *Blob, error) {
	d := outBlob(diag)
	code := outBlob(out)
	if err := check(errors.PhaseCodegen, op, r, d); err != nil {
		code.Release()
		return nil, d, err
	}
	if code == nil {
		return nil, d, nullErr(errors.PhaseCodegen, op, d)
	}
	return code, d, nil
}

// ResultAsFileSystem exposes generated outputs as a file system.
func (c *componentType) ResultAsFileSystem(entryPoint, target int) (*FileSystem, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetResultAsFileSystem,
		uintptr(c.ptr), uintptr(entryPoint), uintptr(target), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseCodegen, "result as file system", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseCodegen, "result as file system", nil)
	}
	return wrap[FileSystem](out), nil
}

// EntryPointHash returns a hash of everything that affects the code of
// one entry point, or nil.
func (c *componentType) EntryPointHash(entryPoint, target int) *Blob {
	var out unsafe.Pointer
	ffi.Call(c.vt().GetEntryPointHash,
		uintptr(c.ptr), uintptr(entryPoint), uintptr(target), uintptr(unsafe.Pointer(&out)))
	return outBlob(out)
}

// Specialize binds the component's generic parameters.
func (c *componentType) Specialize(args ...SpecializationArg) (*ComponentType, *Blob, error) {
	var pin runtime.Pinner
	defer pin.Unpin()

	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().Specialize,
		uintptr(c.ptr), uintptr(unsafe.Pointer(marshalSpecializationArgs(&pin, args))), uintptr(len(args)),
		uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return componentResult(r, out, diag, errors.PhaseLink, "specialize")
}

// Link resolves all cross-module references.
func (c *componentType) Link() (*ComponentType, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().Link,
		uintptr(c.ptr), uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return componentResult(r, out, diag, errors.PhaseLink, "link")
}

// LinkWithOptions is Link with extra compiler options.
func (c *componentType) LinkWithOptions(opts ...CompilerOption) (*ComponentType, *Blob, error) {
	var pin runtime.Pinner
	defer pin.Unpin()

	entries, n := marshalOptions(&pin, opts)
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().LinkWithOptions,
		uintptr(c.ptr), uintptr(unsafe.Pointer(&out)), uintptr(n), uintptr(unsafe.Pointer(entries)),
		uintptr(unsafe.Pointer(&diag))))
	return componentResult(r, out, diag, errors.PhaseLink, "link with options")
}

func componentResult(r abi.Result, out, diag unsafe.Pointer, phase errors.Phase, op string) (*ComponentType, *Blob, error) {
	d := outBlob(diag)
	ct := wrap[ComponentType](out)
	if err := check(phase, op, r, d); err != nil {
		if ct != nil {
			ct.Release()
		}
		return nil, d, err
	}
	if ct == nil {
		return nil, d, nullErr(phase, op, d)
	}
	return ct, d, nil
}

// EntryPointHostCallable compiles an entry point for the host and loads
// it as a shared library.
func (c *componentType) EntryPointHostCallable(entryPoint, target int) (*SharedLibrary, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetEntryPointHostCallable,
		uintptr(c.ptr), uintptr(int32(entryPoint)), uintptr(int32(target)),
		uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	d := outBlob(diag)
	lib := wrap[SharedLibrary](out)
	if err := check(errors.PhaseCodegen, "entry point host callable", r, d); err != nil {
		if lib != nil {
			lib.Release()
		}
		return nil, d, err
	}
	if lib == nil {
		return nil, d, nullErr(errors.PhaseCodegen, "entry point host callable", d)
	}
	return lib, d, nil
}

// RenameEntryPoint returns a copy of the component whose entry point is
// exported as name.
func (c *componentType) RenameEntryPoint(name string) (*ComponentType, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().RenameEntryPoint,
		uintptr(c.ptr), uintptr(ffi.CStringArg(name)), uintptr(unsafe.Pointer(&out))))
	ct, _, err := componentResult(r, out, nil, errors.PhaseLink, "rename entry point")
	return ct, err
}

// TargetMetadata returns metadata about the code generated for target.
func (c *componentType) TargetMetadata(target int) (*Metadata, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetTargetMetadata,
		uintptr(c.ptr), uintptr(target), uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return metadataResult(r, out, diag, "target metadata")
}

// EntryPointMetadata returns metadata about one entry point's code.
func (c *componentType) EntryPointMetadata(entryPoint, target int) (*Metadata, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetEntryPointMetadata,
		uintptr(c.ptr), uintptr(entryPoint), uintptr(target),
		uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return metadataResult(r, out, diag, "entry point metadata")
}

func metadataResult(r abi.Result, out, diag unsafe.Pointer, op string) (*Metadata, *Blob, error) {
	d := outBlob(diag)
	m := wrap[Metadata](out)
	if err := check(errors.PhaseCodegen, op, r, d); err != nil {
		if m != nil {
			m.Release()
		}
		return nil, d, err
	}
	if m == nil {
		return nil, d, nullErr(errors.PhaseCodegen, op, d)
	}
	return m, d, nil
}

// ComponentType is a linkable unit: a module, an entry point, a
// composite of those or the result of linking.
type ComponentType struct{ componentType }

func (*ComponentType) iid() abi.GUID { return abi.IIDComponentType }

// Clone adds a reference and returns a new handle.
func (c *ComponentType) Clone() *ComponentType { return clone(c) }

// EntryPoint is a shader entry point of a module.
type EntryPoint struct{ componentType }

func (*EntryPoint) iid() abi.GUID { return abi.IIDEntryPoint }

// Clone adds a reference and returns a new handle.
func (e *EntryPoint) Clone() *EntryPoint { return clone(e) }

// FunctionReflection returns the entry point's function declaration.
func (e *EntryPoint) FunctionReflection() *reflection.Function {
	p := ffi.Call(ffi.Vtbl[abi.EntryPointVtbl](e.live()).GetFunctionReflection, uintptr(e.ptr))
	return (*reflection.Function)(ffi.Ptr(p))
}

// TypeConformance records that a type conforms to an interface, for
// dynamic dispatch.
type TypeConformance struct{ componentType }

func (*TypeConformance) iid() abi.GUID { return abi.IIDTypeConformance }

// Clone adds a reference and returns a new handle.
func (t *TypeConformance) Clone() *TypeConformance { return clone(t) }

// ComponentType2 is the extension interface giving access to compile
// results with several items. Obtain it with Query.
type ComponentType2 struct{ object }

func (*ComponentType2) iid() abi.GUID { return abi.IIDComponentType2 }

func (c *ComponentType2) vt() *abi.ComponentType2Vtbl {
	return ffi.Vtbl[abi.ComponentType2Vtbl](c.live())
}

// Clone adds a reference and returns a new handle.
func (c *ComponentType2) Clone() *ComponentType2 { return clone(c) }

// TargetCompileResult compiles the component for target.
func (c *ComponentType2) TargetCompileResult(target int) (*CompileResult, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetTargetCompileResult,
		uintptr(c.ptr), uintptr(target), uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return compileResult(r, out, diag, "target compile result")
}

// EntryPointCompileResult compiles one entry point for target.
func (c *ComponentType2) EntryPointCompileResult(entryPoint, target int) (*CompileResult, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(c.vt().GetEntryPointCompileResult,
		uintptr(c.ptr), uintptr(entryPoint), uintptr(target),
		uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return compileResult(r, out, diag, "entry point compile result")
}

func compileResult(r abi.Result, out, diag unsafe.Pointer, op string) (*CompileResult, *Blob, error) {
	d := outBlob(diag)
	res := wrap[CompileResult](out)
	if err := check(errors.PhaseCodegen, op, r, d); err != nil {
		if res != nil {
			res.Release()
		}
		return nil, d, err
	}
	if res == nil {
		return nil, d, nullErr(errors.PhaseCodegen, op, d)
	}
	return res, d, nil
}
