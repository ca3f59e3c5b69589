package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Shader is the layout of a whole program for one target, as returned
// by a component type's Layout.
type Shader abi.Reflection

// Session returns the session interface pointer without a reference.
// Wrap it with slang.SessionOf.
func (s *Shader) Session() unsafe.Pointer {
	return ffi.Ptr(procShaderGetSession.Call(uintptr(unsafe.Pointer(s))))
}

// ParameterCount returns the number of global shader parameters.
func (s *Shader) ParameterCount() int {
	return int(ffi.Uint32(procShaderGetParameterCount.Call(uintptr(unsafe.Pointer(s)))))
}

// Parameter returns the layout of global parameter i.
func (s *Shader) Parameter(i int) (*VariableLayout, bool) {
	return opt[VariableLayout](procShaderGetParameterByIndex.Call(uintptr(unsafe.Pointer(s)), uintptr(uint32(i))))
}

// Parameters iterates over global parameters.
func (s *Shader) Parameters() iter.Seq2[int, *VariableLayout] {
	return present(s.ParameterCount, s.Parameter)
}

// TypeParameterCount returns the number of global generic parameters.
func (s *Shader) TypeParameterCount() int {
	return int(ffi.Uint32(procShaderGetTypeParameterCount.Call(uintptr(unsafe.Pointer(s)))))
}

// TypeParameter returns global generic parameter i.
func (s *Shader) TypeParameter(i int) (*TypeParameter, bool) {
	return opt[TypeParameter](procShaderGetTypeParameterByIndex.Call(uintptr(unsafe.Pointer(s)), uintptr(uint32(i))))
}

// TypeParameters iterates over global generic parameters.
func (s *Shader) TypeParameters() iter.Seq2[int, *TypeParameter] {
	return present(s.TypeParameterCount, s.TypeParameter)
}

// FindTypeParameter looks up a global generic parameter by name.
func (s *Shader) FindTypeParameter(name string) (*TypeParameter, bool) {
	return opt[TypeParameter](procShaderFindTypeParameter.Call(uintptr(unsafe.Pointer(s)), uintptr(ffi.CStringArg(name))))
}

// EntryPointCount returns the number of entry points in the program.
func (s *Shader) EntryPointCount() int {
	return int(procShaderGetEntryPointCount.Call(uintptr(unsafe.Pointer(s))))
}

// EntryPoint returns entry point i.
func (s *Shader) EntryPoint(i int) (*EntryPoint, bool) {
	return opt[EntryPoint](procShaderGetEntryPointByIndex.Call(uintptr(unsafe.Pointer(s)), uintptr(i)))
}

// EntryPoints iterates over entry points.
func (s *Shader) EntryPoints() iter.Seq2[int, *EntryPoint] {
	return present(s.EntryPointCount, s.EntryPoint)
}

// FindEntryPointByName looks up an entry point.
func (s *Shader) FindEntryPointByName(name string) (*EntryPoint, bool) {
	return opt[EntryPoint](procShaderFindEntryPointByName.Call(uintptr(unsafe.Pointer(s)), uintptr(ffi.CStringArg(name))))
}

// GlobalConstantBufferBinding returns the binding of the implicit global
// constant buffer.
func (s *Shader) GlobalConstantBufferBinding() uint {
	return uint(procShaderGetGlobalCBufferBinding.Call(uintptr(unsafe.Pointer(s))))
}

// GlobalConstantBufferSize returns the size in bytes of the implicit
// global constant buffer.
func (s *Shader) GlobalConstantBufferSize() uint {
	return uint(procShaderGetGlobalCBufferSize.Call(uintptr(unsafe.Pointer(s))))
}

// FindTypeByName parses name as a type expression in the program's scope.
func (s *Shader) FindTypeByName(name string) (*Type, bool) {
	return opt[Type](procShaderFindTypeByName.Call(uintptr(unsafe.Pointer(s)), uintptr(ffi.CStringArg(name))))
}

// FindFunctionByName looks up a global function.
func (s *Shader) FindFunctionByName(name string) (*Function, bool) {
	return opt[Function](procShaderFindFunctionByName.Call(uintptr(unsafe.Pointer(s)), uintptr(ffi.CStringArg(name))))
}

// FindFunctionByNameInType looks up a member function of t.
func (s *Shader) FindFunctionByNameInType(t *Type, name string) (*Function, bool) {
	return opt[Function](procShaderFindFunctionByNameInType.Call(uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(t)), uintptr(ffi.CStringArg(name))))
}

// FindVarByNameInType looks up a member variable of t.
func (s *Shader) FindVarByNameInType(t *Type, name string) (*Variable, bool) {
	return opt[Variable](procShaderFindVarByNameInType.Call(uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(t)), uintptr(ffi.CStringArg(name))))
}

// TypeLayout lays out t with rules.
func (s *Shader) TypeLayout(t *Type, rules abi.LayoutRules) (*TypeLayout, bool) {
	return opt[TypeLayout](procShaderGetTypeLayout.Call(uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(t)), uintptr(rules)))
}

// SpecializeType applies type arguments to a generic type. On failure the
// diagnostics are returned instead.
func (s *Shader) SpecializeType(t *Type, args ...*Type) (*Type, string, bool) {
	var diag unsafe.Pointer
	r := procShaderSpecializeType.Call(uintptr(unsafe.Pointer(s)), uintptr(unsafe.Pointer(t)),
		uintptr(len(args)), uintptr(unsafe.Pointer(unsafe.SliceData(args))), uintptr(unsafe.Pointer(&diag)))
	out, ok := opt[Type](r)
	return out, blobText(diag), ok
}

// GenericArg is one argument of SpecializeGeneric.
type GenericArg struct {
	Kind  abi.GenericArgType
	Value abi.GenericArg
}

// TypeGenericArg binds a type parameter.
func TypeGenericArg(t *Type) GenericArg {
	return GenericArg{Kind: abi.GenericArgTypeType, Value: abi.GenericTypeArg((*abi.ReflectionType)(t))}
}

// IntGenericArg binds an integer value parameter.
func IntGenericArg(v int64) GenericArg {
	return GenericArg{Kind: abi.GenericArgTypeInt, Value: abi.GenericIntArg(v)}
}

// BoolGenericArg binds a bool value parameter.
func BoolGenericArg(v bool) GenericArg {
	return GenericArg{Kind: abi.GenericArgTypeBool, Value: abi.GenericBoolArg(v)}
}

// SpecializeGeneric applies args to g. On failure the diagnostics are
// returned instead.
func (s *Shader) SpecializeGeneric(g *Generic, args ...GenericArg) (*Generic, string, bool) {
	kinds := make([]abi.GenericArgType, len(args))
	vals := make([]abi.GenericArg, len(args))
	for i, a := range args {
		kinds[i], vals[i] = a.Kind, a.Value
	}
	var diag unsafe.Pointer
	r := procShaderSpecializeGeneric.Call(uintptr(unsafe.Pointer(s)), uintptr(unsafe.Pointer(g)),
		uintptr(len(args)), uintptr(unsafe.Pointer(unsafe.SliceData(kinds))),
		uintptr(unsafe.Pointer(unsafe.SliceData(vals))), uintptr(unsafe.Pointer(&diag)))
	out, ok := opt[Generic](r)
	return out, blobText(diag), ok
}

// IsSubType reports whether sub conforms to super.
func (s *Shader) IsSubType(sub, super *Type) bool {
	return ffi.Bool(procShaderIsSubType.Call(uintptr(unsafe.Pointer(s)),
		uintptr(unsafe.Pointer(sub)), uintptr(unsafe.Pointer(super))))
}

// HashedStringCount returns the number of strings the program hashes with
// getStringHash.
func (s *Shader) HashedStringCount() int {
	return int(procShaderGetHashedStringCount.Call(uintptr(unsafe.Pointer(s))))
}

// HashedString returns hashed string i.
func (s *Shader) HashedString(i int) (string, bool) {
	var n uint
	p := procShaderGetHashedString.Call(uintptr(unsafe.Pointer(s)), uintptr(i), uintptr(unsafe.Pointer(&n)))
	if p == 0 {
		return "", false
	}
	return ffi.GoStringN(ffi.Ptr(p), int(n)), true
}

// HashedStrings iterates over hashed strings, skipping missing entries.
func (s *Shader) HashedStrings() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		n := s.HashedStringCount()
		for i := 0; i < n; i++ {
			v, ok := s.HashedString(i)
			if !ok {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// GlobalParamsTypeLayout returns the layout of all global parameters
// as one struct.
func (s *Shader) GlobalParamsTypeLayout() (*TypeLayout, bool) {
	return opt[TypeLayout](procShaderGetGlobalParamsTypeLayout.Call(uintptr(unsafe.Pointer(s))))
}

// GlobalParamsVarLayout returns the variable layout wrapping
// GlobalParamsTypeLayout.
func (s *Shader) GlobalParamsVarLayout() (*VariableLayout, bool) {
	return opt[VariableLayout](procShaderGetGlobalParamsVarLayout.Call(uintptr(unsafe.Pointer(s))))
}

// JSON serializes the whole layout in the compiler's reflection JSON
// format.
func (s *Shader) JSON() ([]byte, error) {
	var out unsafe.Pointer
	r := procShaderToJSON.Call(uintptr(unsafe.Pointer(s)), 0, uintptr(unsafe.Pointer(&out)))
	if err := check("reflection json", r); err != nil {
		takeBlob(out)
		return nil, err
	}
	return takeBlob(out), nil
}
