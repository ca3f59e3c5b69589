package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Modifier is a declaration modifier such as `static` or `const`. It only
// signals presence.
type Modifier abi.ReflectionModifier

// Variable is a declared variable, field or parameter.
type Variable abi.ReflectionVariable

// Name returns the declared name.
func (v *Variable) Name() string {
	return str(procVarGetName.Call(uintptr(unsafe.Pointer(v))))
}

// Type returns the declared type.
func (v *Variable) Type() *Type {
	return ref[Type](procVarGetType.Call(uintptr(unsafe.Pointer(v))))
}

// FindModifier reports whether the variable carries modifier id.
func (v *Variable) FindModifier(id abi.ModifierID) (*Modifier, bool) {
	return opt[Modifier](procVarFindModifier.Call(uintptr(unsafe.Pointer(v)), uintptr(id)))
}

// UserAttributeCount returns the number of user attributes.
func (v *Variable) UserAttributeCount() int {
	return int(ffi.Uint32(procVarGetUserAttributeCount.Call(uintptr(unsafe.Pointer(v)))))
}

// UserAttribute returns user attribute i.
func (v *Variable) UserAttribute(i int) (*Attribute, bool) {
	return opt[Attribute](procVarGetUserAttribute.Call(uintptr(unsafe.Pointer(v)), uintptr(uint32(i))))
}

// UserAttributes iterates over user attributes.
func (v *Variable) UserAttributes() iter.Seq2[int, *Attribute] {
	return present(v.UserAttributeCount, v.UserAttribute)
}

// FindUserAttributeByName looks up a user attribute. The lookup needs the
// global session that created the program.
func (v *Variable) FindUserAttributeByName(global Object, name string) (*Attribute, bool) {
	return opt[Attribute](procVarFindUserAttributeByName.Call(uintptr(unsafe.Pointer(v)),
		uintptr(objPtr(global)), uintptr(ffi.CStringArg(name))))
}

// HasDefaultValue reports whether the declaration has an initializer.
func (v *Variable) HasDefaultValue() bool {
	return ffi.Bool(procVarHasDefaultValue.Call(uintptr(unsafe.Pointer(v))))
}

// DefaultValueInt returns an integer initializer.
func (v *Variable) DefaultValueInt() (int64, error) {
	var out int64
	r := procVarGetDefaultValueInt.Call(uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(&out)))
	if err := check("variable default value", r); err != nil {
		return 0, err
	}
	return out, nil
}

// GenericContainer returns the generic declaration enclosing v.
func (v *Variable) GenericContainer() (*Generic, bool) {
	return opt[Generic](procVarGetGenericContainer.Call(uintptr(unsafe.Pointer(v))))
}

// ApplySpecializations substitutes the arguments recorded in g.
func (v *Variable) ApplySpecializations(g *Generic) *Variable {
	return ref[Variable](procVarApplySpecializations.Call(uintptr(unsafe.Pointer(v)), uintptr(unsafe.Pointer(g))))
}

// VariableLayout is a variable placed at concrete offsets and registers.
type VariableLayout abi.ReflectionVariableLayout

// Variable returns the laid out declaration.
func (v *VariableLayout) Variable() *Variable {
	return ref[Variable](procVarLayoutGetVariable.Call(uintptr(unsafe.Pointer(v))))
}

// Name returns the variable name, "" for anonymous layouts.
func (v *VariableLayout) Name() string {
	if d := v.Variable(); d != nil {
		return d.Name()
	}
	return ""
}

// Type returns the variable type.
func (v *VariableLayout) Type() *Type {
	if d := v.Variable(); d != nil {
		return d.Type()
	}
	return nil
}

// FindModifier is Variable().FindModifier.
func (v *VariableLayout) FindModifier(id abi.ModifierID) (*Modifier, bool) {
	if d := v.Variable(); d != nil {
		return d.FindModifier(id)
	}
	return nil, false
}

// TypeLayout returns the layout of the variable's type.
func (v *VariableLayout) TypeLayout() *TypeLayout {
	return ref[TypeLayout](procVarLayoutGetTypeLayout.Call(uintptr(unsafe.Pointer(v))))
}

// Category is TypeLayout().ParameterCategory.
func (v *VariableLayout) Category() abi.ParameterCategory {
	return v.TypeLayout().ParameterCategory()
}

// CategoryCount is TypeLayout().CategoryCount.
func (v *VariableLayout) CategoryCount() int {
	return v.TypeLayout().CategoryCount()
}

// CategoryByIndex is TypeLayout().Category.
func (v *VariableLayout) CategoryByIndex(i int) abi.ParameterCategory {
	return v.TypeLayout().Category(i)
}

// Categories iterates over the categories the variable consumes.
func (v *VariableLayout) Categories() iter.Seq2[int, abi.ParameterCategory] {
	return indexed(v.CategoryCount, v.CategoryByIndex)
}

// Offset returns the offset in units of category.
func (v *VariableLayout) Offset(category abi.ParameterCategory) uint {
	return uint(procVarLayoutGetOffset.Call(uintptr(unsafe.Pointer(v)), uintptr(category)))
}

// Space returns the register space for category.
func (v *VariableLayout) Space(category abi.ParameterCategory) uint {
	return uint(procVarLayoutGetSpace.Call(uintptr(unsafe.Pointer(v)), uintptr(category)))
}

// BindingIndex returns the register or binding of the variable's
// primary category.
func (v *VariableLayout) BindingIndex() uint32 {
	return ffi.Uint32(procVarLayoutGetBindingIndex.Call(uintptr(unsafe.Pointer(v))))
}

// BindingSpace returns the space or set of the variable's primary
// category.
func (v *VariableLayout) BindingSpace() uint32 {
	return ffi.Uint32(procVarLayoutGetBindingSpace.Call(uintptr(unsafe.Pointer(v))))
}

// ImageFormat returns the declared image format.
func (v *VariableLayout) ImageFormat() abi.ImageFormat {
	return abi.ImageFormat(ffi.Uint32(procVarLayoutGetImageFormat.Call(uintptr(unsafe.Pointer(v)))))
}

// SemanticName returns the varying semantic, if any.
func (v *VariableLayout) SemanticName() (string, bool) {
	return optStr(procVarLayoutGetSemanticName.Call(uintptr(unsafe.Pointer(v))))
}

// SemanticIndex returns the varying semantic index.
func (v *VariableLayout) SemanticIndex() uint {
	return uint(procVarLayoutGetSemanticIndex.Call(uintptr(unsafe.Pointer(v))))
}

// Stage returns the stage a varying parameter belongs to.
func (v *VariableLayout) Stage() abi.Stage {
	return abi.Stage(ffi.Uint32(procVarLayoutGetStage.Call(uintptr(unsafe.Pointer(v)))))
}

// PendingDataLayout returns the layout of existential data deferred to
// the end of the enclosing object.
func (v *VariableLayout) PendingDataLayout() (*VariableLayout, bool) {
	return opt[VariableLayout](procVarLayoutGetPendingDataLay.Call(uintptr(unsafe.Pointer(v))))
}
