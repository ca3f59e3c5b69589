package abi

import "unsafe"

// GlobalSessionDesc configures slang_createGlobalSession2.
type GlobalSessionDesc struct {
	StructureSize      uint32
	APIVersion         uint32
	MinLanguageVersion uint32
	EnableGLSL         Bool
	Reserved           [16]uint32
}

// DefaultGlobalSessionDesc returns the native defaults.
func DefaultGlobalSessionDesc() GlobalSessionDesc {
	return GlobalSessionDesc{
		StructureSize:      uint32(unsafe.Sizeof(GlobalSessionDesc{})),
		APIVersion:         APIVersion,
		MinLanguageVersion: LanguageVersion2025,
	}
}

// TargetDesc describes one code generation target of a session.
type TargetDesc struct {
	StructureSize               uintptr
	Format                      CompileTarget
	Profile                     ProfileID
	Flags                       TargetFlags
	FloatingPointMode           FloatingPointMode
	LineDirectiveMode           LineDirectiveMode
	ForceGLSLScalarBufferLayout Bool
	CompilerOptionEntries       *CompilerOptionEntry
	CompilerOptionEntryCount    uint32
}

// DefaultTargetDesc returns an unknown-format target that emits SPIR-V
// directly when asked for SPIR-V.
func DefaultTargetDesc() TargetDesc {
	return TargetDesc{
		StructureSize:     unsafe.Sizeof(TargetDesc{}),
		Format:            TargetUnknown,
		Profile:           ProfileUnknown,
		Flags:             TargetFlagGenerateSPIRVDirectly,
		FloatingPointMode: FloatingPointModeDefault,
		LineDirectiveMode: LineDirectiveModeDefault,
	}
}

// PreprocessorMacroDesc is a NUL-terminated name/value pair.
type PreprocessorMacroDesc struct {
	Name  *byte
	Value *byte
}

// SessionDesc configures IGlobalSession::createSession. Every pointer/count
// pair is either (nil, 0) or a pointer to count contiguous elements that
// outlive the call.
type SessionDesc struct {
	StructureSize            uint32
	Targets                  *TargetDesc
	TargetCount              Int
	Flags                    SessionFlags
	DefaultMatrixLayoutMode  MatrixLayoutMode
	SearchPaths              **byte
	SearchPathCount          Int
	PreprocessorMacros       *PreprocessorMacroDesc
	PreprocessorMacroCount   Int
	FileSystem               unsafe.Pointer
	EnableEffectAnnotations  Bool
	AllowGLSLSyntax          Bool
	CompilerOptionEntries    *CompilerOptionEntry
	CompilerOptionEntryCount uint32
	SkipSPIRVValidation      Bool
}

// DefaultSessionDesc returns an empty row-major session description.
func DefaultSessionDesc() SessionDesc {
	return SessionDesc{
		StructureSize:           uint32(unsafe.Sizeof(SessionDesc{})),
		Flags:                   SessionFlagsNone,
		DefaultMatrixLayoutMode: MatrixLayoutRowMajor,
	}
}

// CompilerOptionValue is a tagged pair of ints and strings; which members
// are read depends on the option name.
type CompilerOptionValue struct {
	Kind         CompilerOptionValueKind
	IntValue0    int32
	IntValue1    int32
	StringValue0 *byte
	StringValue1 *byte
}

// CompilerOptionEntry pairs an option name with its value.
type CompilerOptionEntry struct {
	Name  CompilerOptionName
	Value CompilerOptionValue
}

// SpecializationArg is a tagged union. Value holds a *ReflectionType for
// SpecializationArgType and a NUL-terminated expression for
// SpecializationArgExpr.
type SpecializationArg struct {
	Kind  SpecializationArgKind
	Value unsafe.Pointer
}

// TypeArg builds a type specialization argument.
func TypeArg(t *ReflectionType) SpecializationArg {
	return SpecializationArg{Kind: SpecializationArgType, Value: unsafe.Pointer(t)}
}

// ExprArg builds an expression specialization argument. expr must be
// NUL-terminated and outlive the call that consumes it.
func ExprArg(expr *byte) SpecializationArg {
	return SpecializationArg{Kind: SpecializationArgExpr, Value: unsafe.Pointer(expr)}
}

// GenericArg is the 8-byte union passed to spReflection_specializeGeneric;
// GenericArgType says which member is live. Type pointers stored here
// refer to compiler-owned memory, so hiding them from the collector is safe.
type GenericArg struct {
	bits uint64
}

// GenericTypeArg stores a type pointer.
func GenericTypeArg(t *ReflectionType) GenericArg {
	return GenericArg{bits: uint64(uintptr(unsafe.Pointer(t)))}
}

// GenericIntArg stores a 64-bit integer.
func GenericIntArg(v int64) GenericArg {
	return GenericArg{bits: uint64(v)}
}

// GenericBoolArg stores a C bool in the lowest-addressed byte.
func GenericBoolArg(v bool) GenericArg {
	var a GenericArg
	if v {
		*(*byte)(unsafe.Pointer(&a.bits)) = 1
	}
	return a
}
