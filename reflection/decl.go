package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Decl is a node of the declaration tree of a module.
type Decl abi.ReflectionDecl

func (d *Decl) Name() string {
	return str(procDeclGetName.Call(uintptr(unsafe.Pointer(d))))
}

func (d *Decl) Kind() abi.DeclKind {
	return abi.DeclKind(ffi.Uint32(procDeclGetKind.Call(uintptr(unsafe.Pointer(d)))))
}

func (d *Decl) ChildCount() int {
	return int(ffi.Uint32(procDeclGetChildrenCount.Call(uintptr(unsafe.Pointer(d)))))
}

func (d *Decl) Child(i int) (*Decl, bool) {
	return opt[Decl](procDeclGetChild.Call(uintptr(unsafe.Pointer(d)), uintptr(uint32(i))))
}

// Children iterates over nested declarations.
func (d *Decl) Children() iter.Seq2[int, *Decl] {
	return present(d.ChildCount, d.Child)
}

// Type returns the type a struct declaration declares.
func (d *Decl) Type() (*Type, bool) {
	return opt[Type](procDeclGetType.Call(uintptr(unsafe.Pointer(d))))
}

// AsVariable returns d as a variable if it is one.
func (d *Decl) AsVariable() (*Variable, bool) {
	return opt[Variable](procDeclCastToVariable.Call(uintptr(unsafe.Pointer(d))))
}

// AsFunction returns d as a function if it is one.
func (d *Decl) AsFunction() (*Function, bool) {
	return opt[Function](procDeclCastToFunction.Call(uintptr(unsafe.Pointer(d))))
}

// AsGeneric returns d as a generic if it is one.
func (d *Decl) AsGeneric() (*Generic, bool) {
	return opt[Generic](procDeclCastToGeneric.Call(uintptr(unsafe.Pointer(d))))
}

// Parent returns the enclosing declaration; the module has none.
func (d *Decl) Parent() (*Decl, bool) {
	return opt[Decl](procDeclGetParent.Call(uintptr(unsafe.Pointer(d))))
}
