package abi

// PathType tells a file system callback how to interpret a path.
type PathType uint32

const (
	PathTypeDirectory PathType = 0
	PathTypeFile      PathType = 1
)

// WriterChannel selects a diagnostic writer target.
type WriterChannel uint32

const (
	WriterChannelDiagnostic WriterChannel = iota
	WriterChannelStdOutput
	WriterChannelStdError
	WriterChannelCount
)

// WriterMode switches a writer between text and binary output.
type WriterMode uint32

const (
	WriterModeText   WriterMode = 0
	WriterModeBinary WriterMode = 1
)

// GenericArgType tags the active member of a GenericArg.
type GenericArgType int32

const (
	GenericArgTypeType GenericArgType = 0
	GenericArgTypeInt  GenericArgType = 1
	GenericArgTypeBool GenericArgType = 2
)

// TypeKind classifies a reflected type.
type TypeKind uint32

const (
	TypeKindNone TypeKind = iota
	TypeKindStruct
	TypeKindArray
	TypeKindMatrix
	TypeKindVector
	TypeKindScalar
	TypeKindConstantBuffer
	TypeKindResource
	TypeKindSamplerState
	TypeKindTextureBuffer
	TypeKindShaderStorageBuffer
	TypeKindParameterBlock
	TypeKindGenericTypeParameter
	TypeKindInterface
	TypeKindOutputStream
	TypeKindMeshOutput
	TypeKindSpecialized
	TypeKindFeedback
	TypeKindPointer
	TypeKindDynamicResource
	TypeKindCount
)

// ScalarType classifies a scalar element.
type ScalarType uint32

const (
	ScalarTypeNone ScalarType = iota
	ScalarTypeVoid
	ScalarTypeBool
	ScalarTypeInt32
	ScalarTypeUint32
	ScalarTypeInt64
	ScalarTypeUint64
	ScalarTypeFloat16
	ScalarTypeFloat32
	ScalarTypeFloat64
	ScalarTypeInt8
	ScalarTypeUint8
	ScalarTypeInt16
	ScalarTypeUint16
	ScalarTypeIntPtr
	ScalarTypeUintPtr
)

// DeclKind classifies a reflected declaration.
type DeclKind uint32

const (
	DeclKindUnsupported DeclKind = iota
	DeclKindStruct
	DeclKindFunc
	DeclKindModule
	DeclKindGeneric
	DeclKindVariable
	DeclKindNamespace
)

// ResourceShape describes a resource's base shape in the low bits and
// modifiers in the flag bits.
type ResourceShape uint32

const (
	ResourceShapeNone ResourceShape = iota
	ResourceShapeTexture1D
	ResourceShapeTexture2D
	ResourceShapeTexture3D
	ResourceShapeTextureCube
	ResourceShapeTextureBuffer
	ResourceShapeStructuredBuffer
	ResourceShapeByteAddressBuffer
	ResourceShapeUnknown
	ResourceShapeAccelerationStructure
	ResourceShapeTextureSubpass
)

const (
	ResourceShapeBaseMask    ResourceShape = 0x0f
	ResourceShapeFeedback    ResourceShape = 0x10
	ResourceShapeShadow      ResourceShape = 0x20
	ResourceShapeArray       ResourceShape = 0x40
	ResourceShapeMultisample ResourceShape = 0x80
	ResourceShapeCombined    ResourceShape = 0x100
	ResourceShapeExtMask     ResourceShape = 0x1f0
)

// Base strips the modifier flags.
func (s ResourceShape) Base() ResourceShape { return s & ResourceShapeBaseMask }

// Has reports whether all bits of flag are set.
func (s ResourceShape) Has(flag ResourceShape) bool { return s&flag == flag }

// ResourceAccess describes how a shader may access a resource.
type ResourceAccess uint32

const (
	ResourceAccessNone ResourceAccess = iota
	ResourceAccessRead
	ResourceAccessReadWrite
	ResourceAccessRasterOrdered
	ResourceAccessAppend
	ResourceAccessConsume
	ResourceAccessWrite
	ResourceAccessFeedback
	ResourceAccessUnknown ResourceAccess = 0x7fffffff
)

// ParameterCategory is the resource class a parameter consumes.
type ParameterCategory uint32

const (
	CategoryNone ParameterCategory = iota
	CategoryMixed
	CategoryConstantBuffer
	CategoryShaderResource
	CategoryUnorderedAccess
	CategoryVaryingInput
	CategoryVaryingOutput
	CategorySamplerState
	CategoryUniform
	CategoryDescriptorTableSlot
	CategorySpecializationConstant
	CategoryPushConstantBuffer
	CategoryRegisterSpace
	CategoryGeneric
	CategoryRayPayload
	CategoryHitAttributes
	CategoryCallablePayload
	CategoryShaderRecord
	CategoryExistentialTypeParam
	CategoryExistentialObjectParam
	CategorySubElementRegisterSpace
	CategorySubpass
	CategoryMetalArgumentBufferElement
	CategoryMetalAttribute
	CategoryMetalPayload
	CategoryCount
)

// BindingType is the kind of a binding range.
type BindingType uint32

const (
	BindingTypeUnknown BindingType = iota
	BindingTypeSampler
	BindingTypeTexture
	BindingTypeConstantBuffer
	BindingTypeParameterBlock
	BindingTypeTypedBuffer
	BindingTypeRawBuffer
	BindingTypeCombinedTextureSampler
	BindingTypeInputRenderTarget
	BindingTypeInlineUniformData
	BindingTypeRayTracingAccelerationStructure
	BindingTypeVaryingInput
	BindingTypeVaryingOutput
	BindingTypeExistentialValue
	BindingTypePushConstant
)

const (
	BindingTypeMutableFlag        BindingType = 0x100
	BindingTypeMutableTexture                 = BindingTypeTexture | BindingTypeMutableFlag
	BindingTypeMutableTypedBuffer             = BindingTypeTypedBuffer | BindingTypeMutableFlag
	BindingTypeMutableRawBuffer               = BindingTypeRawBuffer | BindingTypeMutableFlag
	BindingTypeBaseMask           BindingType = 0x00ff
	BindingTypeExtMask            BindingType = 0xff00
)

// Base strips the extension bits.
func (b BindingType) Base() BindingType { return b & BindingTypeBaseMask }

// Mutable reports whether the mutable flag is set.
func (b BindingType) Mutable() bool { return b&BindingTypeMutableFlag != 0 }

// LayoutRules selects the layout algorithm for a type layout query.
type LayoutRules uint32

const (
	LayoutRulesDefault                  LayoutRules = 0
	LayoutRulesMetalArgumentBufferTier2 LayoutRules = 1
)

// UnorderedSize is returned by size queries for unbounded resources.
const UnorderedSize = ^uint(0)

// ModifierID names a declaration modifier.
type ModifierID uint32

const (
	ModifierShared ModifierID = iota
	ModifierNoDiff
	ModifierStatic
	ModifierConst
	ModifierExport
	ModifierExtern
	ModifierDifferentiable
	ModifierMutating
	ModifierIn
	ModifierOut
	ModifierInOut
)

// ImageFormat is the storage format declared on an image binding.
type ImageFormat uint32

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatRGBA32F
	ImageFormatRGBA16F
	ImageFormatRG32F
	ImageFormatRG16F
	ImageFormatR11FG11FB10F
	ImageFormatR32F
	ImageFormatR16F
	ImageFormatRGBA16
	ImageFormatRGB10A2
	ImageFormatRGBA8
	ImageFormatRG16
	ImageFormatRG8
	ImageFormatR16
	ImageFormatR8
	ImageFormatRGBA16Snorm
	ImageFormatRGBA8Snorm
	ImageFormatRG16Snorm
	ImageFormatRG8Snorm
	ImageFormatR16Snorm
	ImageFormatR8Snorm
	ImageFormatRGBA32I
	ImageFormatRGBA16I
	ImageFormatRGBA8I
	ImageFormatRG32I
	ImageFormatRG16I
	ImageFormatRG8I
	ImageFormatR32I
	ImageFormatR16I
	ImageFormatR8I
	ImageFormatRGBA32UI
	ImageFormatRGBA16UI
	ImageFormatRGB10A2UI
	ImageFormatRGBA8UI
	ImageFormatRG32UI
	ImageFormatRG16UI
	ImageFormatRG8UI
	ImageFormatR32UI
	ImageFormatR16UI
	ImageFormatR8UI
	ImageFormatR64UI
	ImageFormatR64I
)

// PassThrough identifies a downstream compiler.
type PassThrough int32

const (
	PassThroughNone PassThrough = iota
	PassThroughFXC
	PassThroughDXC
	PassThroughGlslang
	PassThroughSPIRVDis
	PassThroughClang
	PassThroughVisualStudio
	PassThroughGCC
	PassThroughGenericCCPP
	PassThroughNVRTC
	PassThroughLLVM
	PassThroughSPIRVOpt
	PassThroughMetal
	PassThroughTint
	PassThroughSPIRVLink
)

// ArchiveType selects the container used when saving builtin modules.
type ArchiveType int32

const (
	ArchiveTypeUndefined ArchiveType = iota
	ArchiveTypeZip
	ArchiveTypeRIFF
	ArchiveTypeRIFFDeflate
	ArchiveTypeRIFFLZ4
)

// TargetFlags are per-target code generation switches.
type TargetFlags uint32

const (
	TargetFlagParameterBlocksUseRegisterSpaces TargetFlags = 1 << 4
	TargetFlagGenerateWholeProgram             TargetFlags = 1 << 8
	TargetFlagDumpIR                           TargetFlags = 1 << 9
	TargetFlagGenerateSPIRVDirectly            TargetFlags = 1 << 10
)

// FloatingPointMode controls floating point optimizations.
type FloatingPointMode uint32

const (
	FloatingPointModeDefault FloatingPointMode = iota
	FloatingPointModeFast
	FloatingPointModePrecise
)

// FpDenormalMode controls denormal handling.
type FpDenormalMode uint32

const (
	FpDenormalModeAny FpDenormalMode = iota
	FpDenormalModePreserve
	FpDenormalModeFTZ
)

// LineDirectiveMode controls #line emission in generated source.
type LineDirectiveMode uint32

const (
	LineDirectiveModeDefault LineDirectiveMode = iota
	LineDirectiveModeNone
	LineDirectiveModeStandard
	LineDirectiveModeGLSL
	LineDirectiveModeSourceMap
)

// SourceLanguage identifies an input language.
type SourceLanguage int32

const (
	SourceLanguageUnknown SourceLanguage = iota
	SourceLanguageSlang
	SourceLanguageHLSL
	SourceLanguageGLSL
	SourceLanguageC
	SourceLanguageCPP
	SourceLanguageCUDA
	SourceLanguageSPIRV
	SourceLanguageMetal
	SourceLanguageWGSL
)

// ProfileID is an opaque profile handle. Look profiles up by name at run
// time; the numeric values are not stable across compiler versions.
type ProfileID uint32

const ProfileUnknown ProfileID = 0

// CapabilityID is an opaque capability handle, looked up by name.
type CapabilityID int32

const CapabilityUnknown CapabilityID = 0

// MatrixLayoutMode selects default matrix storage order.
type MatrixLayoutMode uint32

const (
	MatrixLayoutUnknown MatrixLayoutMode = iota
	MatrixLayoutRowMajor
	MatrixLayoutColumnMajor
)

// Stage is a pipeline stage.
type Stage uint32

const (
	StageNone Stage = iota
	StageVertex
	StageHull
	StageDomain
	StageGeometry
	StageFragment
	StageCompute
	StageRayGeneration
	StageIntersection
	StageAnyHit
	StageClosestHit
	StageMiss
	StageCallable
	StageMesh
	StageAmplification
	StageDispatch

	StagePixel = StageFragment
)

// CompileTarget is an output code format.
type CompileTarget int32

const (
	TargetUnknown CompileTarget = iota
	TargetNone
	TargetGLSL
	_ // GLSL Vulkan, removed
	_ // GLSL Vulkan one-desc, removed
	TargetHLSL
	TargetSPIRV
	TargetSPIRVAsm
	TargetDXBC
	TargetDXBCAsm
	TargetDXIL
	TargetDXILAsm
	TargetCSource
	TargetCPPSource
	TargetHostExecutable
	TargetShaderSharedLibrary
	TargetShaderHostCallable
	TargetCUDASource
	TargetPTX
	TargetCUDAObjectCode
	TargetObjectCode
	TargetHostCPPSource
	TargetHostHostCallable
	TargetCPPPytorchBindings
	TargetMetal
	TargetMetalLib
	TargetMetalLibAsm
	TargetHostSharedLibrary
	TargetWGSL
	TargetWGSLSPIRVAsm
	TargetWGSLSPIRV
	TargetHostVM
)

// CompileCoreModuleFlags modify core module compilation.
type CompileCoreModuleFlags uint32

const CompileCoreModuleWriteDocumentation CompileCoreModuleFlags = 0x01

// BuiltinModuleName selects a builtin module.
type BuiltinModuleName int32

const (
	BuiltinModuleCore BuiltinModuleName = iota
	BuiltinModuleGLSL
)

// SessionFlags are session-wide switches.
type SessionFlags uint32

const SessionFlagsNone SessionFlags = 0

// APIVersion and LanguageVersion2025 seed GlobalSessionDesc.
const (
	APIVersion          uint32 = 0
	LanguageVersion2025 uint32 = 2025
)

// CompilerOptionName identifies a compiler option entry.
type CompilerOptionName int32

const (
	OptionMacroDefine CompilerOptionName = iota
	OptionDepFile
	OptionEntryPointName
	OptionSpecialize
	OptionHelp
	OptionHelpStyle
	OptionInclude
	OptionLanguage
	OptionMatrixLayoutColumn
	OptionMatrixLayoutRow
	OptionZeroInitialize
	OptionIgnoreCapabilities
	OptionRestrictiveCapabilityCheck
	OptionModuleName
	OptionOutput
	OptionProfile
	OptionStage
	OptionTarget
	OptionVersion
	OptionWarningsAsErrors
	OptionDisableWarnings
	OptionEnableWarning
	OptionDisableWarning
	OptionDumpWarningDiagnostics
	OptionInputFilesRemain
	OptionEmitIR
	OptionReportDownstreamTime
	OptionReportPerfBenchmark
	OptionReportCheckpointIntermediates
	OptionSkipSPIRVValidation
	OptionSourceEmbedStyle
	OptionSourceEmbedName
	OptionSourceEmbedLanguage
	OptionDisableShortCircuit
	OptionMinimumSlangOptimization
	OptionDisableNonEssentialValidations
	OptionDisableSourceMap
	OptionUnscopedEnum
	OptionPreserveParameters
	OptionCapability
	OptionDefaultImageFormatUnknown
	OptionDisableDynamicDispatch
	OptionDisableSpecialization
	OptionFloatingPointMode
	OptionDebugInformation
	OptionLineDirectiveMode
	OptionOptimization
	OptionObfuscate
	OptionVulkanBindShift
	OptionVulkanBindGlobals
	OptionVulkanInvertY
	OptionVulkanUseDxPositionW
	OptionVulkanUseEntryPointName
	OptionVulkanUseGLLayout
	OptionVulkanEmitReflection
	OptionGLSLForceScalarLayout
	OptionEnableEffectAnnotations
	OptionEmitSPIRVViaGLSL
	OptionEmitSPIRVDirectly
	OptionSPIRVCoreGrammarJSON
	OptionIncompleteLibrary
	OptionCompilerPath
	OptionDefaultDownstreamCompiler
	OptionDownstreamArgs
	OptionPassThrough
	OptionDumpRepro
	OptionDumpReproOnError
	OptionExtractRepro
	OptionLoadRepro
	OptionLoadReproDirectory
	OptionReproFallbackDirectory
	OptionDumpAST
	OptionDumpIntermediatePrefix
	OptionDumpIntermediates
	OptionDumpIR
	OptionDumpIRIDs
	OptionPreprocessorOutput
	OptionOutputIncludes
	OptionReproFileSystem
	OptionSerialIR // removed upstream, kept for numbering
	OptionSkipCodeGen
	OptionValidateIR
	OptionVerbosePaths
	OptionVerifyDebugSerialIR
	OptionNoCodeGen
	OptionFileSystem
	OptionHeterogeneous
	OptionNoMangle
	OptionNoHLSLBinding
	OptionNoHLSLPackConstantBufferElements
	OptionValidateUniformity
	OptionAllowGLSL
	OptionEnableExperimentalPasses
	OptionBindlessSpaceIndex
	OptionArchiveType
	OptionCompileCoreModule
	OptionDoc
	OptionIRCompression
	OptionLoadCoreModule
	OptionReferenceModule
	OptionSaveCoreModule
	OptionSaveCoreModuleBinSource
	OptionTrackLiveness
	OptionLoopInversion
	OptionParameterBlocksUseRegisterSpaces
	OptionLanguageVersion
	OptionTypeConformance
	OptionEnableExperimentalDynamicDispatch
	OptionEmitReflectionJSON
	OptionCountOfParsableOptions
	OptionDebugInformationFormat
	OptionVulkanBindShiftAll
	OptionGenerateWholeProgram
	OptionUseUpToDateBinaryModule
	OptionEmbedDownstreamIR
	OptionForceDXLayout
	OptionEmitSPIRVMethod
	OptionSaveGLSLModuleBinSource
	OptionSkipDownstreamLinking
	OptionDumpModule
	OptionGetModuleInfo
	OptionGetSupportedModuleVersions
	OptionEmitSeparateDebug
	OptionDenormalModeFp16
	OptionDenormalModeFp32
	OptionDenormalModeFp64
	OptionUseMSVCStyleBitfieldPacking
	OptionForceCLayout
	OptionCountOf
)

// CompilerOptionValueKind tags a CompilerOptionValue.
type CompilerOptionValueKind int32

const (
	CompilerOptionValueInt CompilerOptionValueKind = iota
	CompilerOptionValueString
)

// ContainerType wraps an element type for Session.ContainerType.
type ContainerType int32

const (
	ContainerTypeNone ContainerType = iota
	ContainerTypeUnsizedArray
	ContainerTypeStructuredBuffer
	ContainerTypeConstantBuffer
	ContainerTypeParameterBlock
)

// SpecializationArgKind tags a SpecializationArg.
type SpecializationArgKind int32

const (
	SpecializationArgUnknown SpecializationArgKind = iota
	SpecializationArgType
	SpecializationArgExpr
)
