package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// EntryPoint is the layout of one entry point in a program.
type EntryPoint abi.ReflectionEntryPoint

// Name returns the entry point's function name.
func (e *EntryPoint) Name() string {
	return str(procEntryGetName.Call(uintptr(unsafe.Pointer(e))))
}

// NameOverride returns the name the entry point is exported under after
// a rename.
func (e *EntryPoint) NameOverride() (string, bool) {
	return optStr(procEntryGetNameOverride.Call(uintptr(unsafe.Pointer(e))))
}

// Function returns the entry point's function declaration.
func (e *EntryPoint) Function() *Function {
	return ref[Function](procEntryGetFunction.Call(uintptr(unsafe.Pointer(e))))
}

// ParameterCount returns the number of entry point parameters.
func (e *EntryPoint) ParameterCount() int {
	return int(ffi.Uint32(procEntryGetParameterCount.Call(uintptr(unsafe.Pointer(e)))))
}

// Parameter returns the layout of parameter i.
func (e *EntryPoint) Parameter(i int) (*VariableLayout, bool) {
	return opt[VariableLayout](procEntryGetParameterByIndex.Call(uintptr(unsafe.Pointer(e)), uintptr(uint32(i))))
}

// Parameters iterates over parameter layouts.
func (e *EntryPoint) Parameters() iter.Seq2[int, *VariableLayout] {
	return present(e.ParameterCount, e.Parameter)
}

// Stage returns the pipeline stage.
func (e *EntryPoint) Stage() abi.Stage {
	return abi.Stage(ffi.Uint32(procEntryGetStage.Call(uintptr(unsafe.Pointer(e)))))
}

// ComputeThreadGroupSize returns the [numthreads] of a compute entry
// point.
func (e *EntryPoint) ComputeThreadGroupSize() [3]uint {
	var size [3]uint
	procEntryGetComputeThreadGroupSize.Call(uintptr(unsafe.Pointer(e)), uintptr(len(size)), uintptr(unsafe.Pointer(&size[0])))
	return size
}

// ComputeWaveSize returns the [WaveSize] of a compute entry point, 0 if
// unspecified.
func (e *EntryPoint) ComputeWaveSize() uint {
	var size uint
	procEntryGetComputeWaveSize.Call(uintptr(unsafe.Pointer(e)), uintptr(unsafe.Pointer(&size)))
	return size
}

// UsesAnySampleRateInput reports whether a fragment shader runs per
// sample.
func (e *EntryPoint) UsesAnySampleRateInput() bool {
	return ffi.Int32(procEntryUsesAnySampleRateInput.Call(uintptr(unsafe.Pointer(e)))) != 0
}

// VarLayout returns the layout of the entry point's parameter block.
func (e *EntryPoint) VarLayout() *VariableLayout {
	return ref[VariableLayout](procEntryGetVarLayout.Call(uintptr(unsafe.Pointer(e))))
}

// TypeLayout is VarLayout().TypeLayout.
func (e *EntryPoint) TypeLayout() *TypeLayout {
	if v := e.VarLayout(); v != nil {
		return v.TypeLayout()
	}
	return nil
}

// ResultVarLayout returns the layout of the return value.
func (e *EntryPoint) ResultVarLayout() *VariableLayout {
	return ref[VariableLayout](procEntryGetResultVarLayout.Call(uintptr(unsafe.Pointer(e))))
}

// HasDefaultConstantBuffer reports whether uniform parameters were packed
// into an implicit constant buffer.
func (e *EntryPoint) HasDefaultConstantBuffer() bool {
	return ffi.Int32(procEntryHasDefaultConstantBuffer.Call(uintptr(unsafe.Pointer(e)))) != 0
}

// TypeParameter is a global generic type parameter of a program.
type TypeParameter abi.ReflectionTypeParameter

// Name returns the parameter's declared name.
func (p *TypeParameter) Name() string {
	return str(procTypeParamGetName.Call(uintptr(unsafe.Pointer(p))))
}

// Index returns the parameter's position among the program's type
// parameters.
func (p *TypeParameter) Index() int {
	return int(ffi.Uint32(procTypeParamGetIndex.Call(uintptr(unsafe.Pointer(p)))))
}

// ConstraintCount returns the number of interface constraints.
func (p *TypeParameter) ConstraintCount() int {
	return int(ffi.Uint32(procTypeParamGetConstraintCount.Call(uintptr(unsafe.Pointer(p)))))
}

// Constraint returns constraint i, false when absent.
func (p *TypeParameter) Constraint(i int) (*Type, bool) {
	return opt[Type](procTypeParamGetConstraintByIndex.Call(uintptr(unsafe.Pointer(p)), uintptr(uint32(i))))
}

// Constraints yields each present constraint with its index.
func (p *TypeParameter) Constraints() iter.Seq2[int, *Type] {
	return present(p.ConstraintCount, p.Constraint)
}
