package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// TypeLayout is a type laid out for one target.
type TypeLayout abi.ReflectionTypeLayout

// Type returns the type that was laid out.
func (t *TypeLayout) Type() *Type {
	return ref[Type](procLayoutGetType.Call(uintptr(unsafe.Pointer(t))))
}

// Kind classifies the laid out type.
func (t *TypeLayout) Kind() abi.TypeKind {
	return abi.TypeKind(ffi.Uint32(procLayoutGetKind.Call(uintptr(unsafe.Pointer(t)))))
}

// Name returns the name of the laid out type.
func (t *TypeLayout) Name() string {
	if ty := t.Type(); ty != nil {
		return ty.Name()
	}
	return ""
}

// Size returns the number of units of category the type consumes.
// Unbounded resources report abi.UnorderedSize.
func (t *TypeLayout) Size(category abi.ParameterCategory) uint {
	return uint(procLayoutGetSize.Call(uintptr(unsafe.Pointer(t)), uintptr(category)))
}

// Stride returns the size rounded up to the alignment.
func (t *TypeLayout) Stride(category abi.ParameterCategory) uint {
	return uint(procLayoutGetStride.Call(uintptr(unsafe.Pointer(t)), uintptr(category)))
}

// Alignment returns the alignment in units of category.
func (t *TypeLayout) Alignment(category abi.ParameterCategory) int32 {
	return ffi.Int32(procLayoutGetAlignment.Call(uintptr(unsafe.Pointer(t)), uintptr(category)))
}

// FieldCount returns the number of field layouts.
func (t *TypeLayout) FieldCount() int {
	return int(ffi.Uint32(procLayoutGetFieldCount.Call(uintptr(unsafe.Pointer(t)))))
}

// Field returns the layout of field i.
func (t *TypeLayout) Field(i int) (*VariableLayout, bool) {
	return opt[VariableLayout](procLayoutGetFieldByIndex.Call(uintptr(unsafe.Pointer(t)), uintptr(uint32(i))))
}

// Fields iterates over field layouts.
func (t *TypeLayout) Fields() iter.Seq2[int, *VariableLayout] {
	return present(t.FieldCount, t.Field)
}

// FindFieldIndexByName returns the index of the named field.
func (t *TypeLayout) FindFieldIndexByName(name string) (int, bool) {
	b := ffi.CString(name)
	i := int(procLayoutFindFieldIndexByName.Call(uintptr(unsafe.Pointer(t)),
		uintptr(unsafe.Pointer(b)), uintptr(unsafe.Add(unsafe.Pointer(b), len(name)))))
	return i, i >= 0
}

// ExplicitCounter returns the layout of the hidden counter of an append
// or consume buffer.
func (t *TypeLayout) ExplicitCounter() (*VariableLayout, bool) {
	return opt[VariableLayout](procLayoutGetExplicitCounter.Call(uintptr(unsafe.Pointer(t))))
}

// ElementCount is Type().ElementCount.
func (t *TypeLayout) ElementCount(shader *Shader) uint {
	return t.Type().ElementCount(shader)
}

// ElementStride returns the distance between array elements.
func (t *TypeLayout) ElementStride(category abi.ParameterCategory) uint {
	return uint(procLayoutGetElementStride.Call(uintptr(unsafe.Pointer(t)), uintptr(category)))
}

// ElementTypeLayout returns the element layout of an array, buffer or
// parameter block.
func (t *TypeLayout) ElementTypeLayout() (*TypeLayout, bool) {
	return opt[TypeLayout](procLayoutGetElementTypeLayout.Call(uintptr(unsafe.Pointer(t))))
}

// ElementVarLayout returns the element variable layout of a container.
func (t *TypeLayout) ElementVarLayout() (*VariableLayout, bool) {
	return opt[VariableLayout](procLayoutGetElementVarLayout.Call(uintptr(unsafe.Pointer(t))))
}

// ContainerVarLayout returns the layout of the container itself, for
// example the constant buffer of a parameter block.
func (t *TypeLayout) ContainerVarLayout() (*VariableLayout, bool) {
	return opt[VariableLayout](procLayoutGetContainerVarLayout.Call(uintptr(unsafe.Pointer(t))))
}

// ParameterCategory returns the single category the type consumes, or
// abi.CategoryMixed.
func (t *TypeLayout) ParameterCategory() abi.ParameterCategory {
	return abi.ParameterCategory(ffi.Uint32(procLayoutGetParameterCategory.Call(uintptr(unsafe.Pointer(t)))))
}

// CategoryCount returns the number of categories the type consumes.
func (t *TypeLayout) CategoryCount() int {
	return int(ffi.Uint32(procLayoutGetCategoryCount.Call(uintptr(unsafe.Pointer(t)))))
}

// Category returns consumed category i.
func (t *TypeLayout) Category(i int) abi.ParameterCategory {
	return abi.ParameterCategory(ffi.Uint32(procLayoutGetCategoryByIndex.Call(uintptr(unsafe.Pointer(t)), uintptr(uint32(i)))))
}

// Categories iterates over consumed categories.
func (t *TypeLayout) Categories() iter.Seq2[int, abi.ParameterCategory] {
	return indexed(t.CategoryCount, t.Category)
}

// RowCount is Type().RowCount.
func (t *TypeLayout) RowCount() int { return t.Type().RowCount() }

// ColumnCount is Type().ColumnCount.
func (t *TypeLayout) ColumnCount() int { return t.Type().ColumnCount() }

// ScalarType is Type().ScalarType.
func (t *TypeLayout) ScalarType() abi.ScalarType { return t.Type().ScalarType() }

// ResourceResultType is Type().ResourceResultType.
func (t *TypeLayout) ResourceResultType() (*Type, bool) { return t.Type().ResourceResultType() }

// ResourceShape is Type().ResourceShape.
func (t *TypeLayout) ResourceShape() abi.ResourceShape { return t.Type().ResourceShape() }

// ResourceAccess is Type().ResourceAccess.
func (t *TypeLayout) ResourceAccess() abi.ResourceAccess { return t.Type().ResourceAccess() }

// MatrixLayoutMode returns the storage order of a matrix type.
func (t *TypeLayout) MatrixLayoutMode() abi.MatrixLayoutMode {
	return abi.MatrixLayoutMode(ffi.Uint32(procLayoutGetMatrixLayoutMode.Call(uintptr(unsafe.Pointer(t)))))
}

// GenericParamIndex returns the index of a generic type parameter, or -1.
func (t *TypeLayout) GenericParamIndex() int {
	return int(ffi.Int32(procLayoutGetGenericParamIndex.Call(uintptr(unsafe.Pointer(t)))))
}

// PendingDataTypeLayout returns the layout of data deferred by
// existential specialization.
func (t *TypeLayout) PendingDataTypeLayout() (*TypeLayout, bool) {
	return opt[TypeLayout](procLayoutGetPendingDataTypeLayout.Call(uintptr(unsafe.Pointer(t))))
}

// SpecializedTypePendingDataVarLayout returns the variable layout of the
// pending data of a specialized type.
func (t *TypeLayout) SpecializedTypePendingDataVarLayout() (*VariableLayout, bool) {
	return opt[VariableLayout](procLayoutGetSpecializedPendingVarLayout.Call(uintptr(unsafe.Pointer(t))))
}

// BindingRangeCount returns the number of binding ranges.
func (t *TypeLayout) BindingRangeCount() int {
	return int(procLayoutGetBindingRangeCount.Call(uintptr(unsafe.Pointer(t))))
}

// BindingRangeType returns the binding type of range i.
func (t *TypeLayout) BindingRangeType(i int) abi.BindingType {
	return abi.BindingType(ffi.Uint32(procLayoutGetBindingRangeType.Call(uintptr(unsafe.Pointer(t)), uintptr(i))))
}

// IsBindingRangeSpecializable reports whether range i holds an interface
// type that needs specialization.
func (t *TypeLayout) IsBindingRangeSpecializable(i int) bool {
	return int(procLayoutIsBindingRangeSpecializable.Call(uintptr(unsafe.Pointer(t)), uintptr(i))) != 0
}

// BindingRangeBindingCount returns the array size of range i.
func (t *TypeLayout) BindingRangeBindingCount(i int) int {
	return int(procLayoutGetBindingRangeBindingCount.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// FieldBindingRangeOffset returns the first binding range of field i.
func (t *TypeLayout) FieldBindingRangeOffset(field int) int {
	return int(procLayoutGetFieldBindingRangeOffset.Call(uintptr(unsafe.Pointer(t)), uintptr(field)))
}

// ExplicitCounterBindingRangeOffset returns the binding range of the
// explicit counter.
func (t *TypeLayout) ExplicitCounterBindingRangeOffset() int {
	return int(procLayoutGetExplicitCounterBindingRange.Call(uintptr(unsafe.Pointer(t))))
}

// BindingRangeLeafTypeLayout returns the type layout bound by range i.
func (t *TypeLayout) BindingRangeLeafTypeLayout(i int) (*TypeLayout, bool) {
	return opt[TypeLayout](procLayoutGetBindingRangeLeafTypeLayout.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// BindingRangeLeafVariable returns the variable bound by range i.
func (t *TypeLayout) BindingRangeLeafVariable(i int) (*Variable, bool) {
	return opt[Variable](procLayoutGetBindingRangeLeafVariable.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// BindingRangeImageFormat returns the declared image format of range i.
func (t *TypeLayout) BindingRangeImageFormat(i int) abi.ImageFormat {
	return abi.ImageFormat(ffi.Uint32(procLayoutGetBindingRangeImageFormat.Call(uintptr(unsafe.Pointer(t)), uintptr(i))))
}

// BindingRangeDescriptorSetIndex returns the descriptor set of range i.
func (t *TypeLayout) BindingRangeDescriptorSetIndex(i int) int {
	return int(procLayoutGetBindingRangeDescriptorSetIndex.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// BindingRangeFirstDescriptorRangeIndex returns the first descriptor
// range of binding range i within its set.
func (t *TypeLayout) BindingRangeFirstDescriptorRangeIndex(i int) int {
	return int(procLayoutGetBindingRangeFirstDescRange.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// BindingRangeDescriptorRangeCount returns how many descriptor ranges
// binding range i spans.
func (t *TypeLayout) BindingRangeDescriptorRangeCount(i int) int {
	return int(procLayoutGetBindingRangeDescRangeCount.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// BindingRange is a snapshot of one binding range.
type BindingRange struct {
	Type                      abi.BindingType
	BindingCount              int
	Specializable             bool
	LeafTypeLayout            *TypeLayout
	LeafVariable              *Variable
	ImageFormat               abi.ImageFormat
	DescriptorSetIndex        int
	FirstDescriptorRangeIndex int
	DescriptorRangeCount      int
}

// BindingRange collects the accessors for range i.
func (t *TypeLayout) BindingRange(i int) BindingRange {
	leafLayout, _ := t.BindingRangeLeafTypeLayout(i)
	leafVar, _ := t.BindingRangeLeafVariable(i)
	return BindingRange{
		Type:                      t.BindingRangeType(i),
		BindingCount:              t.BindingRangeBindingCount(i),
		Specializable:             t.IsBindingRangeSpecializable(i),
		LeafTypeLayout:            leafLayout,
		LeafVariable:              leafVar,
		ImageFormat:               t.BindingRangeImageFormat(i),
		DescriptorSetIndex:        t.BindingRangeDescriptorSetIndex(i),
		FirstDescriptorRangeIndex: t.BindingRangeFirstDescriptorRangeIndex(i),
		DescriptorRangeCount:      t.BindingRangeDescriptorRangeCount(i),
	}
}

// BindingRanges iterates over binding range snapshots.
func (t *TypeLayout) BindingRanges() iter.Seq2[int, BindingRange] {
	return indexed(t.BindingRangeCount, t.BindingRange)
}

// DescriptorSetCount returns the number of descriptor sets.
func (t *TypeLayout) DescriptorSetCount() int {
	return int(procLayoutGetDescriptorSetCount.Call(uintptr(unsafe.Pointer(t))))
}

// DescriptorSetSpaceOffset returns the register space offset of set.
func (t *TypeLayout) DescriptorSetSpaceOffset(set int) int {
	return int(procLayoutGetDescriptorSetSpaceOffset.Call(uintptr(unsafe.Pointer(t)), uintptr(set)))
}

// DescriptorSetDescriptorRangeCount returns the number of ranges in set.
func (t *TypeLayout) DescriptorSetDescriptorRangeCount(set int) int {
	return int(procLayoutGetDescriptorSetRangeCount.Call(uintptr(unsafe.Pointer(t)), uintptr(set)))
}

// DescriptorSetDescriptorRangeIndexOffset returns the register offset of
// range r in set.
func (t *TypeLayout) DescriptorSetDescriptorRangeIndexOffset(set, r int) int {
	return int(procLayoutGetDescriptorSetRangeOffset.Call(uintptr(unsafe.Pointer(t)), uintptr(set), uintptr(r)))
}

// DescriptorSetDescriptorRangeDescriptorCount returns the descriptor
// count of range r in set.
func (t *TypeLayout) DescriptorSetDescriptorRangeDescriptorCount(set, r int) int {
	return int(procLayoutGetDescriptorSetRangeDescCount.Call(uintptr(unsafe.Pointer(t)), uintptr(set), uintptr(r)))
}

// DescriptorSetDescriptorRangeType returns the binding type of range r in
// set.
func (t *TypeLayout) DescriptorSetDescriptorRangeType(set, r int) abi.BindingType {
	return abi.BindingType(ffi.Uint32(procLayoutGetDescriptorSetRangeType.Call(uintptr(unsafe.Pointer(t)), uintptr(set), uintptr(r))))
}

// DescriptorSetDescriptorRangeCategory returns the parameter category of
// range r in set.
func (t *TypeLayout) DescriptorSetDescriptorRangeCategory(set, r int) abi.ParameterCategory {
	return abi.ParameterCategory(ffi.Uint32(procLayoutGetDescriptorSetRangeCategory.Call(uintptr(unsafe.Pointer(t)), uintptr(set), uintptr(r))))
}

// DescriptorRange is a snapshot of one range within a descriptor set.
type DescriptorRange struct {
	IndexOffset     int
	DescriptorCount int
	Type            abi.BindingType
	Category        abi.ParameterCategory
}

// DescriptorSet is a snapshot of one descriptor set and its ranges.
type DescriptorSet struct {
	SpaceOffset int
	Ranges      []DescriptorRange
}

// DescriptorSet collects descriptor set i.
func (t *TypeLayout) DescriptorSet(i int) DescriptorSet {
	set := DescriptorSet{SpaceOffset: t.DescriptorSetSpaceOffset(i)}
	n := t.DescriptorSetDescriptorRangeCount(i)
	if n > 0 {
		set.Ranges = make([]DescriptorRange, n)
	}
	for r := range set.Ranges {
		set.Ranges[r] = DescriptorRange{
			IndexOffset:     t.DescriptorSetDescriptorRangeIndexOffset(i, r),
			DescriptorCount: t.DescriptorSetDescriptorRangeDescriptorCount(i, r),
			Type:            t.DescriptorSetDescriptorRangeType(i, r),
			Category:        t.DescriptorSetDescriptorRangeCategory(i, r),
		}
	}
	return set
}

// DescriptorSets iterates over descriptor set snapshots.
func (t *TypeLayout) DescriptorSets() iter.Seq2[int, DescriptorSet] {
	return indexed(t.DescriptorSetCount, t.DescriptorSet)
}

// SubObjectRangeCount returns the number of sub-object ranges.
func (t *TypeLayout) SubObjectRangeCount() int {
	return int(procLayoutGetSubObjectRangeCount.Call(uintptr(unsafe.Pointer(t))))
}

// SubObjectRangeBindingRangeIndex returns the binding range of sub-object
// range i.
func (t *TypeLayout) SubObjectRangeBindingRangeIndex(i int) int {
	return int(procLayoutGetSubObjectRangeBindingRange.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// SubObjectRangeSpaceOffset returns the register space offset of
// sub-object range i.
func (t *TypeLayout) SubObjectRangeSpaceOffset(i int) int {
	return int(procLayoutGetSubObjectRangeSpaceOffset.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// SubObjectRangeOffset returns the offset of sub-object range i.
func (t *TypeLayout) SubObjectRangeOffset(i int) (*VariableLayout, bool) {
	return opt[VariableLayout](procLayoutGetSubObjectRangeOffset.Call(uintptr(unsafe.Pointer(t)), uintptr(i)))
}

// SubObjectRange is a snapshot of one sub-object range.
type SubObjectRange struct {
	BindingRangeIndex int
	SpaceOffset       int
	Offset            *VariableLayout
}

// SubObjectRange collects sub-object range i.
func (t *TypeLayout) SubObjectRange(i int) SubObjectRange {
	off, _ := t.SubObjectRangeOffset(i)
	return SubObjectRange{
		BindingRangeIndex: t.SubObjectRangeBindingRangeIndex(i),
		SpaceOffset:       t.SubObjectRangeSpaceOffset(i),
		Offset:            off,
	}
}

// SubObjectRanges iterates over sub-object range snapshots.
func (t *TypeLayout) SubObjectRanges() iter.Seq2[int, SubObjectRange] {
	return indexed(t.SubObjectRangeCount, t.SubObjectRange)
}
