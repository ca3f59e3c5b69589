package slang

import (
	"iter"
	"runtime"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
	"github.com/wippyai/slang-go/reflection"
)

// Session is a scope for loading modules and compiling them for a fixed
// set of targets.
type Session struct{ object }

func (*Session) iid() abi.GUID { return abi.IIDSession }

func (s *Session) vt() *abi.SessionVtbl { return ffi.Vtbl[abi.SessionVtbl](s.live()) }

// Clone adds a reference and returns a new handle.
func (s *Session) Clone() *Session { return clone(s) }

// SessionOf wraps the session a program layout belongs to.
func SessionOf(shader *reflection.Shader) *Session {
	if shader == nil {
		return nil
	}
	return borrow[Session](shader.Session())
}

// GlobalSession returns the global session that created s.
func (s *Session) GlobalSession() *GlobalSession {
	return borrow[GlobalSession](ffi.Ptr(ffi.Call(s.vt().GetGlobalSession, uintptr(s.ptr))))
}

// LoadModule loads a module by import name, as `import name;` would,
// searching the session's search paths.
func (s *Session) LoadModule(name string) (*Module, *Blob, error) {
	var diag unsafe.Pointer
	p := ffi.Call(s.vt().LoadModule,
		uintptr(s.ptr), uintptr(ffi.CStringArg(name)), uintptr(unsafe.Pointer(&diag)))
	return loadedModule(p, diag, "load module "+name)
}

// LoadModuleFromSource compiles source as a module named name. path is
// used in diagnostics and for relative includes.
func (s *Session) LoadModuleFromSource(name, path string, source *Blob) (*Module, *Blob, error) {
	var diag unsafe.Pointer
	p := ffi.Call(s.vt().LoadModuleFromSource,
		uintptr(s.ptr), uintptr(ffi.CStringArg(name)), uintptr(ffi.CStringArg(path)),
		uintptr(source.live()), uintptr(unsafe.Pointer(&diag)))
	return loadedModule(p, diag, "load module "+name)
}

// LoadModuleFromSourceString is LoadModuleFromSource for text.
func (s *Session) LoadModuleFromSourceString(name, path, source string) (*Module, *Blob, error) {
	var diag unsafe.Pointer
	p := ffi.Call(s.vt().LoadModuleFromSourceString,
		uintptr(s.ptr), uintptr(ffi.CStringArg(name)), uintptr(ffi.CStringArg(path)),
		uintptr(ffi.CStringArg(source)), uintptr(unsafe.Pointer(&diag)))
	return loadedModule(p, diag, "load module "+name)
}

// LoadModuleFromIRBlob loads a module serialized with Module.Serialize.
func (s *Session) LoadModuleFromIRBlob(name, path string, ir *Blob) (*Module, *Blob, error) {
	var diag unsafe.Pointer
	p := ffi.Call(s.vt().LoadModuleFromIRBlob,
		uintptr(s.ptr), uintptr(ffi.CStringArg(name)), uintptr(ffi.CStringArg(path)),
		uintptr(ir.live()), uintptr(unsafe.Pointer(&diag)))
	return loadedModule(p, diag, "load module "+name)
}

// loadedModule wraps a module owned by the session. Modules are returned
// without a reference, so one is added.
func loadedModule(p uintptr, diag unsafe.Pointer, op string) (*Module, *Blob, error) {
	d := outBlob(diag)
	if p == 0 {
		return nil, d, nullErr(errors.PhaseCompile, op, d)
	}
	return borrow[Module](ffi.Ptr(p)), d, nil
}

// CreateCompositeComponentType combines components into one, for example
// a module and the entry points to compile from it.
func (s *Session) CreateCompositeComponentType(components ...Component) (*ComponentType, *Blob, error) {
	ptrs := make([]unsafe.Pointer, len(components))
	for i, c := range components {
		ptrs[i] = c.Ptr()
	}
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(s.vt().CreateCompositeComponentType,
		uintptr(s.ptr), uintptr(unsafe.Pointer(unsafe.SliceData(ptrs))), uintptr(len(ptrs)),
		uintptr(unsafe.Pointer(&out)), uintptr(unsafe.Pointer(&diag))))
	runtime.KeepAlive(components)
	d := outBlob(diag)
	if err := check(errors.PhaseLink, "create composite component type", r, d); err != nil {
		return nil, d, err
	}
	if out == nil {
		return nil, d, nullErr(errors.PhaseLink, "create composite component type", d)
	}
	return wrap[ComponentType](out), d, nil
}

// SpecializationArg is a type or expression argument for a generic
// parameter. Exactly one field is set.
type SpecializationArg struct {
	Type *reflection.Type
	Expr string
}

// TypeArg builds a type argument.
func TypeArg(t *reflection.Type) SpecializationArg { return SpecializationArg{Type: t} }

// ExprArg builds an expression argument.
func ExprArg(expr string) SpecializationArg { return SpecializationArg{Expr: expr} }

func marshalSpecializationArgs(pin *runtime.Pinner, args []SpecializationArg) *abi.SpecializationArg {
	if len(args) == 0 {
		return nil
	}
	out := make([]abi.SpecializationArg, len(args))
	for i, a := range args {
		if a.Type != nil {
			out[i] = abi.TypeArg((*abi.ReflectionType)(unsafe.Pointer(a.Type)))
			continue
		}
		out[i] = abi.ExprArg(pinnedString(pin, a.Expr))
	}
	return pinnedSlice(pin, out)
}

// SpecializeType substitutes args for the generic parameters of t.
func (s *Session) SpecializeType(t *reflection.Type, args ...SpecializationArg) (*reflection.Type, *Blob, error) {
	var pin runtime.Pinner
	defer pin.Unpin()

	var diag unsafe.Pointer
	p := ffi.Call(s.vt().SpecializeType,
		uintptr(s.ptr), uintptr(unsafe.Pointer(t)),
		uintptr(unsafe.Pointer(marshalSpecializationArgs(&pin, args))), uintptr(len(args)),
		uintptr(unsafe.Pointer(&diag)))
	d := outBlob(diag)
	if p == 0 {
		return nil, d, nullErr(errors.PhaseReflect, "specialize type", d)
	}
	return (*reflection.Type)(ffi.Ptr(p)), d, nil
}

// TypeLayout lays out t for the target at targetIndex.
func (s *Session) TypeLayout(t *reflection.Type, targetIndex int, rules abi.LayoutRules) (*reflection.TypeLayout, *Blob, error) {
	var diag unsafe.Pointer
	p := ffi.Call(s.vt().GetTypeLayout,
		uintptr(s.ptr), uintptr(unsafe.Pointer(t)), uintptr(targetIndex), uintptr(rules),
		uintptr(unsafe.Pointer(&diag)))
	d := outBlob(diag)
	if p == 0 {
		return nil, d, nullErr(errors.PhaseReflect, "type layout", d)
	}
	return (*reflection.TypeLayout)(ffi.Ptr(p)), d, nil
}

// ContainerType wraps element in a container such as a structured buffer.
func (s *Session) ContainerType(element *reflection.Type, container abi.ContainerType) (*reflection.Type, *Blob, error) {
	var diag unsafe.Pointer
	p := ffi.Call(s.vt().GetContainerType,
		uintptr(s.ptr), uintptr(unsafe.Pointer(element)), uintptr(container),
		uintptr(unsafe.Pointer(&diag)))
	d := outBlob(diag)
	if p == 0 {
		return nil, d, nullErr(errors.PhaseReflect, "container type", d)
	}
	return (*reflection.Type)(ffi.Ptr(p)), d, nil
}

// DynamicType returns the type used for dynamic dispatch.
func (s *Session) DynamicType() *reflection.Type {
	return (*reflection.Type)(ffi.Ptr(ffi.Call(s.vt().GetDynamicType, uintptr(s.ptr))))
}

// TypeRTTIMangledName returns the mangled name of t's runtime type info.
func (s *Session) TypeRTTIMangledName(t *reflection.Type) (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(s.vt().GetTypeRTTIMangledName,
		uintptr(s.ptr), uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseReflect, "type rtti mangled name", r, nil); err != nil {
		return nil, err
	}
	return outBlob(out), nil
}

// TypeConformanceWitnessMangledName returns the mangled name of the
// witness table for t conforming to iface.
func (s *Session) TypeConformanceWitnessMangledName(t, iface *reflection.Type) (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(s.vt().GetTypeConformanceWitnessMangledName,
		uintptr(s.ptr), uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(iface)),
		uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseReflect, "witness mangled name", r, nil); err != nil {
		return nil, err
	}
	return outBlob(out), nil
}

// TypeConformanceWitnessSequentialID returns the sequential ID of the
// witness table for t conforming to iface.
func (s *Session) TypeConformanceWitnessSequentialID(t, iface *reflection.Type) (uint32, error) {
	var id uint32
	r := ffi.Result(ffi.Call(s.vt().GetTypeConformanceWitnessSequentialID,
		uintptr(s.ptr), uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(iface)),
		uintptr(unsafe.Pointer(&id))))
	if err := check(errors.PhaseReflect, "witness sequential id", r, nil); err != nil {
		return 0, err
	}
	return id, nil
}

// CreateCompileRequest creates a legacy compile request bound to s.
//
// Deprecated: use component types.
func (s *Session) CreateCompileRequest() (*Unknown, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(s.vt().CreateCompileRequest,
		uintptr(s.ptr), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseSession, "create compile request", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseSession, "create compile request", nil)
	}
	return WrapUnknown(out), nil
}

// CreateTypeConformanceComponentType creates a component recording that t
// conforms to iface. A negative idOverride lets the compiler pick the
// witness ID.
func (s *Session) CreateTypeConformanceComponentType(t, iface *reflection.Type, idOverride int) (*TypeConformance, *Blob, error) {
	var out, diag unsafe.Pointer
	r := ffi.Result(ffi.Call(s.vt().CreateTypeConformanceComponentType,
		uintptr(s.ptr), uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(iface)),
		uintptr(unsafe.Pointer(&out)), uintptr(idOverride), uintptr(unsafe.Pointer(&diag))))
	d := outBlob(diag)
	if err := check(errors.PhaseLink, "create type conformance", r, d); err != nil {
		return nil, d, err
	}
	if out == nil {
		return nil, d, nullErr(errors.PhaseLink, "create type conformance", d)
	}
	return wrap[TypeConformance](out), d, nil
}

// LoadedModuleCount returns the number of modules loaded into s.
func (s *Session) LoadedModuleCount() int {
	return int(ffi.Call(s.vt().GetLoadedModuleCount, uintptr(s.ptr)))
}

// LoadedModule returns module i, or nil if the index is out of range.
func (s *Session) LoadedModule(i int) *Module {
	return borrow[Module](ffi.Ptr(ffi.Call(s.vt().GetLoadedModule, uintptr(s.ptr), uintptr(i))))
}

// LoadedModules iterates over loaded modules. Each handle is released when
// the loop body returns; Clone it to keep it.
func (s *Session) LoadedModules() iter.Seq2[int, *Module] {
	return func(yield func(int, *Module) bool) {
		n := s.LoadedModuleCount()
		for i := 0; i < n; i++ {
			m := s.LoadedModule(i)
			if m == nil {
				continue
			}
			ok := yield(i, m)
			m.Release()
			if !ok {
				return
			}
		}
	}
}

// IsBinaryModuleUpToDate reports whether a serialized module still matches
// the sources it was built from.
func (s *Session) IsBinaryModuleUpToDate(path string, binary *Blob) bool {
	return ffi.Bool(ffi.Call(s.vt().IsBinaryModuleUpToDate,
		uintptr(s.ptr), uintptr(ffi.CStringArg(path)), uintptr(binary.live())))
}

// DynamicObjectRTTIBytes returns the RTTI header for a dynamic object of
// type t stored behind iface. size is the buffer size in bytes and is
// rounded up to whole 32-bit words.
func (s *Session) DynamicObjectRTTIBytes(t, iface *reflection.Type, size int) ([]uint32, error) {
	buf := make([]uint32, (size+3)/4)
	r := ffi.Result(ffi.Call(s.vt().GetDynamicObjectRTTIBytes,
		uintptr(s.ptr), uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(iface)),
		uintptr(unsafe.Pointer(unsafe.SliceData(buf))), uintptr(uint32(len(buf)*4))))
	if err := check(errors.PhaseReflect, "dynamic object rtti bytes", r, nil); err != nil {
		return nil, err
	}
	return buf, nil
}

// ModuleInfo describes a serialized module without loading it.
type ModuleInfo struct {
	Version         int
	CompilerVersion string
	Name            string
}

// LoadModuleInfoFromIRBlob reads the header of a serialized module.
func (s *Session) LoadModuleInfoFromIRBlob(ir *Blob) (ModuleInfo, error) {
	var (
		version         int
		compilerVersion unsafe.Pointer
		name            unsafe.Pointer
	)
	r := ffi.Result(ffi.Call(s.vt().LoadModuleInfoFromIRBlob,
		uintptr(s.ptr), uintptr(ir.live()), uintptr(unsafe.Pointer(&version)),
		uintptr(unsafe.Pointer(&compilerVersion)), uintptr(unsafe.Pointer(&name))))
	if err := check(errors.PhaseLoad, "load module info", r, nil); err != nil {
		return ModuleInfo{}, err
	}
	info := ModuleInfo{Version: version}
	info.CompilerVersion, _ = ffi.GoString(compilerVersion)
	info.Name, _ = ffi.GoString(name)
	return info, nil
}
