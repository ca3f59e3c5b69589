package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Generic is a generic declaration, or a generic applied to arguments.
type Generic abi.ReflectionGeneric

// AsDecl returns g as a declaration.
func (g *Generic) AsDecl() *Decl {
	return ref[Decl](procGenericAsDecl.Call(uintptr(unsafe.Pointer(g))))
}

func (g *Generic) Name() string {
	return str(procGenericGetName.Call(uintptr(unsafe.Pointer(g))))
}

func (g *Generic) TypeParameterCount() int {
	return int(ffi.Uint32(procGenericGetTypeParameterCount.Call(uintptr(unsafe.Pointer(g)))))
}

func (g *Generic) TypeParameter(i int) (*Variable, bool) {
	return opt[Variable](procGenericGetTypeParameter.Call(uintptr(unsafe.Pointer(g)), uintptr(uint32(i))))
}

func (g *Generic) TypeParameters() iter.Seq2[int, *Variable] {
	return present(g.TypeParameterCount, g.TypeParameter)
}

func (g *Generic) ValueParameterCount() int {
	return int(ffi.Uint32(procGenericGetValueParameterCount.Call(uintptr(unsafe.Pointer(g)))))
}

func (g *Generic) ValueParameter(i int) (*Variable, bool) {
	return opt[Variable](procGenericGetValueParameter.Call(uintptr(unsafe.Pointer(g)), uintptr(uint32(i))))
}

func (g *Generic) ValueParameters() iter.Seq2[int, *Variable] {
	return present(g.ValueParameterCount, g.ValueParameter)
}

// TypeParameterConstraintCount returns the number of interfaces param
// is constrained to.
func (g *Generic) TypeParameterConstraintCount(param *Variable) int {
	return int(ffi.Uint32(procGenericGetConstraintCount.Call(uintptr(unsafe.Pointer(g)), uintptr(unsafe.Pointer(param)))))
}

// TypeParameterConstraintType returns constraint i of param.
func (g *Generic) TypeParameterConstraintType(param *Variable, i int) (*Type, bool) {
	return opt[Type](procGenericGetConstraintType.Call(uintptr(unsafe.Pointer(g)),
		uintptr(unsafe.Pointer(param)), uintptr(uint32(i))))
}

// TypeParameterConstraints iterates over the constraints of param.
func (g *Generic) TypeParameterConstraints(param *Variable) iter.Seq2[int, *Type] {
	return present(
		func() int { return g.TypeParameterConstraintCount(param) },
		func(i int) (*Type, bool) { return g.TypeParameterConstraintType(param, i) },
	)
}

// InnerDecl returns the declaration the generic parameterizes.
func (g *Generic) InnerDecl() (*Decl, bool) {
	return opt[Decl](procGenericGetInnerDecl.Call(uintptr(unsafe.Pointer(g))))
}

func (g *Generic) InnerKind() abi.DeclKind {
	return abi.DeclKind(ffi.Uint32(procGenericGetInnerKind.Call(uintptr(unsafe.Pointer(g)))))
}

func (g *Generic) OuterGenericContainer() (*Generic, bool) {
	return opt[Generic](procGenericGetOuterGenericContainer.Call(uintptr(unsafe.Pointer(g))))
}

// ConcreteType returns the type bound to param, if g is specialized.
func (g *Generic) ConcreteType(param *Variable) (*Type, bool) {
	return opt[Type](procGenericGetConcreteType.Call(uintptr(unsafe.Pointer(g)), uintptr(unsafe.Pointer(param))))
}

// ConcreteIntVal returns the value bound to a value parameter.
func (g *Generic) ConcreteIntVal(param *Variable) int64 {
	return int64(procGenericGetConcreteIntVal.Call(uintptr(unsafe.Pointer(g)), uintptr(unsafe.Pointer(param))))
}

func (g *Generic) ApplySpecializations(other *Generic) *Generic {
	return ref[Generic](procGenericApplySpecializations.Call(uintptr(unsafe.Pointer(g)), uintptr(unsafe.Pointer(other))))
}
