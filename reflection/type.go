package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Type is a reflected type, independent of layout.
type Type abi.ReflectionType

// Kind classifies the type.
func (t *Type) Kind() abi.TypeKind {
	return abi.TypeKind(ffi.Uint32(procTypeGetKind.Call(uintptr(unsafe.Pointer(t)))))
}

// Name returns the short type name.
func (t *Type) Name() string {
	return str(procTypeGetName.Call(uintptr(unsafe.Pointer(t))))
}

// FullName returns the fully qualified name including generic arguments.
func (t *Type) FullName() (string, error) {
	var out unsafe.Pointer
	r := procTypeGetFullName.Call(uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(&out)))
	if err := check("type full name", r); err != nil {
		blobText(out)
		return "", err
	}
	return blobText(out), nil
}

// FieldCount returns the number of fields of a struct type.
func (t *Type) FieldCount() int {
	return int(ffi.Uint32(procTypeGetFieldCount.Call(uintptr(unsafe.Pointer(t)))))
}

// Field returns field i.
func (t *Type) Field(i int) (*Variable, bool) {
	return opt[Variable](procTypeGetFieldByIndex.Call(uintptr(unsafe.Pointer(t)), uintptr(uint32(i))))
}

// Fields iterates over struct fields.
func (t *Type) Fields() iter.Seq2[int, *Variable] {
	return present(t.FieldCount, t.Field)
}

// ElementCount returns the array length, resolving specialization
// constants against shader when it is non-nil. Unsized arrays report
// abi.UnorderedSize.
func (t *Type) ElementCount(shader *Shader) uint {
	return uint(procTypeGetElementCount.Call(uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(shader))))
}

// ElementType returns the element type of an array, vector or matrix.
func (t *Type) ElementType() (*Type, bool) {
	return opt[Type](procTypeGetElementType.Call(uintptr(unsafe.Pointer(t))))
}

// RowCount returns the number of matrix rows, 1 for vectors.
func (t *Type) RowCount() int {
	return int(ffi.Uint32(procTypeGetRowCount.Call(uintptr(unsafe.Pointer(t)))))
}

// ColumnCount returns the number of matrix columns or vector elements.
func (t *Type) ColumnCount() int {
	return int(ffi.Uint32(procTypeGetColumnCount.Call(uintptr(unsafe.Pointer(t)))))
}

// ScalarType returns the scalar element kind.
func (t *Type) ScalarType() abi.ScalarType {
	return abi.ScalarType(ffi.Uint32(procTypeGetScalarType.Call(uintptr(unsafe.Pointer(t)))))
}

// ResourceResultType returns the element type of a resource.
func (t *Type) ResourceResultType() (*Type, bool) {
	return opt[Type](procTypeGetResourceResultType.Call(uintptr(unsafe.Pointer(t))))
}

// ResourceShape returns the shape of a resource type.
func (t *Type) ResourceShape() abi.ResourceShape {
	return abi.ResourceShape(ffi.Uint32(procTypeGetResourceShape.Call(uintptr(unsafe.Pointer(t)))))
}

// ResourceAccess returns how a resource type may be accessed.
func (t *Type) ResourceAccess() abi.ResourceAccess {
	return abi.ResourceAccess(ffi.Uint32(procTypeGetResourceAccess.Call(uintptr(unsafe.Pointer(t)))))
}

// UserAttributeCount returns the number of user attributes.
func (t *Type) UserAttributeCount() int {
	return int(ffi.Uint32(procTypeGetUserAttributeCount.Call(uintptr(unsafe.Pointer(t)))))
}

// UserAttribute returns user attribute i.
func (t *Type) UserAttribute(i int) (*Attribute, bool) {
	return opt[Attribute](procTypeGetUserAttribute.Call(uintptr(unsafe.Pointer(t)), uintptr(uint32(i))))
}

// UserAttributes iterates over user attributes.
func (t *Type) UserAttributes() iter.Seq2[int, *Attribute] {
	return present(t.UserAttributeCount, t.UserAttribute)
}

// FindUserAttributeByName looks up a user attribute.
func (t *Type) FindUserAttributeByName(name string) (*Attribute, bool) {
	return opt[Attribute](procTypeFindUserAttributeByName.Call(uintptr(unsafe.Pointer(t)), uintptr(ffi.CStringArg(name))))
}

// ApplySpecializations substitutes the arguments recorded in g.
func (t *Type) ApplySpecializations(g *Generic) *Type {
	return ref[Type](procTypeApplySpecializations.Call(uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(g))))
}

// GenericContainer returns the generic declaration enclosing the type.
func (t *Type) GenericContainer() (*Generic, bool) {
	return opt[Generic](procTypeGetGenericContainer.Call(uintptr(unsafe.Pointer(t))))
}
