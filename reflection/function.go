package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Function is a declared function.
type Function abi.ReflectionFunction

func (f *Function) Name() string {
	return str(procFuncGetName.Call(uintptr(unsafe.Pointer(f))))
}

func (f *Function) ResultType() *Type {
	return ref[Type](procFuncGetResultType.Call(uintptr(unsafe.Pointer(f))))
}

func (f *Function) ParameterCount() int {
	return int(ffi.Uint32(procFuncGetParameterCount.Call(uintptr(unsafe.Pointer(f)))))
}

func (f *Function) Parameter(i int) (*Variable, bool) {
	return opt[Variable](procFuncGetParameter.Call(uintptr(unsafe.Pointer(f)), uintptr(uint32(i))))
}

func (f *Function) Parameters() iter.Seq2[int, *Variable] {
	return present(f.ParameterCount, f.Parameter)
}

func (f *Function) UserAttributeCount() int {
	return int(ffi.Uint32(procFuncGetUserAttributeCount.Call(uintptr(unsafe.Pointer(f)))))
}

func (f *Function) UserAttribute(i int) (*Attribute, bool) {
	return opt[Attribute](procFuncGetUserAttribute.Call(uintptr(unsafe.Pointer(f)), uintptr(uint32(i))))
}

func (f *Function) UserAttributes() iter.Seq2[int, *Attribute] {
	return present(f.UserAttributeCount, f.UserAttribute)
}

// FindUserAttributeByName looks up a user attribute using the global
// session that created the program.
func (f *Function) FindUserAttributeByName(global Object, name string) (*Attribute, bool) {
	return opt[Attribute](procFuncFindUserAttributeByName.Call(uintptr(unsafe.Pointer(f)),
		uintptr(objPtr(global)), uintptr(ffi.CStringArg(name))))
}

func (f *Function) FindModifier(id abi.ModifierID) (*Modifier, bool) {
	return opt[Modifier](procFuncFindModifier.Call(uintptr(unsafe.Pointer(f)), uintptr(id)))
}

func (f *Function) GenericContainer() (*Generic, bool) {
	return opt[Generic](procFuncGetGenericContainer.Call(uintptr(unsafe.Pointer(f))))
}

func (f *Function) ApplySpecializations(g *Generic) *Function {
	return ref[Function](procFuncApplySpecializations.Call(uintptr(unsafe.Pointer(f)), uintptr(unsafe.Pointer(g))))
}

// SpecializeWithArgTypes resolves a generic function for concrete
// argument types.
func (f *Function) SpecializeWithArgTypes(types ...*Type) *Function {
	return ref[Function](procFuncSpecializeWithArgTypes.Call(uintptr(unsafe.Pointer(f)),
		uintptr(uint32(len(types))), uintptr(unsafe.Pointer(unsafe.SliceData(types)))))
}

// IsOverloaded reports whether f stands for an overload set.
func (f *Function) IsOverloaded() bool {
	return ffi.Bool(procFuncIsOverloaded.Call(uintptr(unsafe.Pointer(f))))
}

func (f *Function) OverloadCount() int {
	return int(ffi.Uint32(procFuncGetOverloadCount.Call(uintptr(unsafe.Pointer(f)))))
}

func (f *Function) Overload(i int) (*Function, bool) {
	return opt[Function](procFuncGetOverload.Call(uintptr(unsafe.Pointer(f)), uintptr(uint32(i))))
}

func (f *Function) Overloads() iter.Seq2[int, *Function] {
	return present(f.OverloadCount, f.Overload)
}
