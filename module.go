package slang

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
	"github.com/wippyai/slang-go/reflection"
)

// Module is a compiled translation unit. Modules are owned by the session
// that loaded them; a handle keeps the module alive but not the session.
type Module struct{ componentType }

func (*Module) iid() abi.GUID { return abi.IIDModule }

func (m *Module) mvt() *abi.ModuleVtbl { return ffi.Vtbl[abi.ModuleVtbl](m.live()) }

// Clone adds a reference and returns a new handle.
func (m *Module) Clone() *Module { return clone(m) }

// FindEntryPointByName returns the entry point declared with the
// [shader(...)] attribute under name.
func (m *Module) FindEntryPointByName(name string) (*EntryPoint, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(m.mvt().FindEntryPointByName,
		uintptr(m.ptr), uintptr(ffi.CStringArg(name)), uintptr(unsafe.Pointer(&out))))
	ep, _, err := entryPointResult(r, out, nil, "find entry point "+name)
	return ep, err
}

// FindAndCheckEntryPoint returns the function name as an entry point for
// stage, whether or not it carries a [shader] attribute.
func (m *Module) FindAndCheckEntryPoint(name string, stage abi.Stage) (*EntryPoint, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(m.mvt().FindAndCheckEntryPoint,
		uintptr(m.ptr), uintptr(ffi.CStringArg(name)), uintptr(stage),
		uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	return entryPointResult(r, out, diag, "find and check entry point "+name)
}

func entryPointResult(r abi.Result, out, diag unsafe.Pointer, op string) (*EntryPoint, *Blob, error) {
	d := outBlob(diag)
	ep := wrap[EntryPoint](out)
	if err := check(errors.PhaseCompile, op, r, d); err != nil {
		if ep != nil {
			ep.Release()
		}
		return nil, d, err
	}
	if ep == nil {
		return nil, d, errors.New(errors.PhaseCompile, errors.KindNotFound).
			Op(op).Code(abi.ResultNotFound).Diagnostics(d.String()).Build()
	}
	return ep, d, nil
}

// DefinedEntryPointCount returns the number of entry points declared with
// a [shader] attribute.
func (m *Module) DefinedEntryPointCount() int {
	return int(ffi.Int32(ffi.Call(m.mvt().GetDefinedEntryPointCount, uintptr(m.ptr))))
}

// DefinedEntryPoint returns declared entry point i.
func (m *Module) DefinedEntryPoint(i int) (*EntryPoint, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(m.mvt().GetDefinedEntryPoint,
		uintptr(m.ptr), uintptr(int32(i)), uintptr(unsafe.Pointer(&out))))
	ep, _, err := entryPointResult(r, out, nil, "defined entry point")
	return ep, err
}

// DefinedEntryPoints iterates over the declared entry points. Each handle
// is owned by the loop body, which must release it.
func (m *Module) DefinedEntryPoints() iter.Seq2[*EntryPoint, error] {
	return func(yield func(*EntryPoint, error) bool) {
		n := m.DefinedEntryPointCount()
		for i := 0; i < n; i++ {
			if !yield(m.DefinedEntryPoint(i)) {
				return
			}
		}
	}
}

// Serialize returns the module in binary IR form, loadable with
// Session.LoadModuleFromIRBlob.
func (m *Module) Serialize() (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(m.mvt().Serialize, uintptr(m.ptr), uintptr(unsafe.Pointer(&out))))
	return blobResult(r, out, errors.PhaseCodegen, "serialize module")
}

// WriteToFile serializes the module to path.
func (m *Module) WriteToFile(path string) error {
	r := ffi.Result(ffi.Call(m.mvt().WriteToFile, uintptr(m.ptr), uintptr(ffi.CStringArg(path))))
	return check(errors.PhaseCodegen, "write module "+path, r, nil)
}

// Disassemble returns a textual dump of the module's IR.
func (m *Module) Disassemble() (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(m.mvt().Disassemble, uintptr(m.ptr), uintptr(unsafe.Pointer(&out))))
	return blobResult(r, out, errors.PhaseCodegen, "disassemble module")
}

func blobResult(r abi.Result, out unsafe.Pointer, phase errors.Phase, op string) (*Blob, error) {
	b := outBlob(out)
	if err := check(phase, op, r, nil); err != nil {
		b.Release()
		return nil, err
	}
	if b == nil {
		return nil, nullErr(phase, op, nil)
	}
	return b, nil
}

// Name returns the module name.
func (m *Module) Name() string {
	return goString(ffi.Call(m.mvt().GetName, uintptr(m.ptr)))
}

// FilePath returns the path the module was loaded from, if any.
func (m *Module) FilePath() (string, bool) {
	return optString(ffi.Call(m.mvt().GetFilePath, uintptr(m.ptr)))
}

// UniqueIdentity returns a string identifying the module within its
// session.
func (m *Module) UniqueIdentity() string {
	return goString(ffi.Call(m.mvt().GetUniqueIdentity, uintptr(m.ptr)))
}

// DependencyFileCount returns the number of source files the module was
// built from, including itself.
func (m *Module) DependencyFileCount() int {
	return int(ffi.Int32(ffi.Call(m.mvt().GetDependencyFileCount, uintptr(m.ptr))))
}

// DependencyFilePath returns dependency i.
func (m *Module) DependencyFilePath(i int) string {
	return goString(ffi.Call(m.mvt().GetDependencyFilePath, uintptr(m.ptr), uintptr(int32(i))))
}

// DependencyFiles iterates over dependency paths.
func (m *Module) DependencyFiles() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := m.DependencyFileCount()
		for i := 0; i < n; i++ {
			if !yield(i, m.DependencyFilePath(i)) {
				return
			}
		}
	}
}

// ModuleReflection returns the module's top-level declaration.
func (m *Module) ModuleReflection() *reflection.Decl {
	return (*reflection.Decl)(ffi.Ptr(ffi.Call(m.mvt().GetModuleReflection, uintptr(m.ptr))))
}
