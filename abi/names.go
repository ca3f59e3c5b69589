package abi

import (
	"fmt"
	"strings"
)

var targetNames = map[CompileTarget]string{
	TargetUnknown:             "unknown",
	TargetNone:                "none",
	TargetGLSL:                "glsl",
	TargetHLSL:                "hlsl",
	TargetSPIRV:               "spirv",
	TargetSPIRVAsm:            "spirv-asm",
	TargetDXBC:                "dxbc",
	TargetDXBCAsm:             "dxbc-asm",
	TargetDXIL:                "dxil",
	TargetDXILAsm:             "dxil-asm",
	TargetCSource:             "c",
	TargetCPPSource:           "cpp",
	TargetHostExecutable:      "exe",
	TargetShaderSharedLibrary: "shader-sharedlib",
	TargetShaderHostCallable:  "callable",
	TargetCUDASource:          "cuda",
	TargetPTX:                 "ptx",
	TargetCUDAObjectCode:      "cuobj",
	TargetObjectCode:          "object",
	TargetHostCPPSource:       "host-cpp",
	TargetHostHostCallable:    "host-callable",
	TargetCPPPytorchBindings:  "torch-binding",
	TargetMetal:               "metal",
	TargetMetalLib:            "metallib",
	TargetMetalLibAsm:         "metallib-asm",
	TargetHostSharedLibrary:   "sharedlib",
	TargetWGSL:                "wgsl",
	TargetWGSLSPIRVAsm:        "wgsl-spirv-asm",
	TargetWGSLSPIRV:           "wgsl-spirv",
	TargetHostVM:              "host-vm",
}

func (t CompileTarget) String() string {
	if s, ok := targetNames[t]; ok {
		return s
	}
	return fmt.Sprintf("CompileTarget(%d)", int32(t))
}

// ParseCompileTarget maps a command-line target name to its value.
func ParseCompileTarget(s string) (CompileTarget, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range targetNames {
		if name == s {
			return t, nil
		}
	}
	return TargetUnknown, fmt.Errorf("unknown compile target %q", s)
}

var stageNames = [...]string{
	StageNone:          "none",
	StageVertex:        "vertex",
	StageHull:          "hull",
	StageDomain:        "domain",
	StageGeometry:      "geometry",
	StageFragment:      "fragment",
	StageCompute:       "compute",
	StageRayGeneration: "raygeneration",
	StageIntersection:  "intersection",
	StageAnyHit:        "anyhit",
	StageClosestHit:    "closesthit",
	StageMiss:          "miss",
	StageCallable:      "callable",
	StageMesh:          "mesh",
	StageAmplification: "amplification",
	StageDispatch:      "dispatch",
}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return fmt.Sprintf("Stage(%d)", uint32(s))
}

// ParseStage maps a stage name to its value. "pixel" is accepted as an
// alias for fragment.
func ParseStage(s string) (Stage, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pixel" {
		return StageFragment, nil
	}
	for i, name := range stageNames {
		if name == s {
			return Stage(i), nil
		}
	}
	return StageNone, fmt.Errorf("unknown stage %q", s)
}

var typeKindNames = [...]string{
	TypeKindNone:                 "none",
	TypeKindStruct:               "struct",
	TypeKindArray:                "array",
	TypeKindMatrix:               "matrix",
	TypeKindVector:               "vector",
	TypeKindScalar:               "scalar",
	TypeKindConstantBuffer:       "constant-buffer",
	TypeKindResource:             "resource",
	TypeKindSamplerState:         "sampler-state",
	TypeKindTextureBuffer:        "texture-buffer",
	TypeKindShaderStorageBuffer:  "shader-storage-buffer",
	TypeKindParameterBlock:       "parameter-block",
	TypeKindGenericTypeParameter: "generic-type-parameter",
	TypeKindInterface:            "interface",
	TypeKindOutputStream:         "output-stream",
	TypeKindMeshOutput:           "mesh-output",
	TypeKindSpecialized:          "specialized",
	TypeKindFeedback:             "feedback",
	TypeKindPointer:              "pointer",
	TypeKindDynamicResource:      "dynamic-resource",
}

func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}
	return fmt.Sprintf("TypeKind(%d)", uint32(k))
}

var scalarTypeNames = [...]string{
	ScalarTypeNone:    "none",
	ScalarTypeVoid:    "void",
	ScalarTypeBool:    "bool",
	ScalarTypeInt32:   "int32",
	ScalarTypeUint32:  "uint32",
	ScalarTypeInt64:   "int64",
	ScalarTypeUint64:  "uint64",
	ScalarTypeFloat16: "float16",
	ScalarTypeFloat32: "float32",
	ScalarTypeFloat64: "float64",
	ScalarTypeInt8:    "int8",
	ScalarTypeUint8:   "uint8",
	ScalarTypeInt16:   "int16",
	ScalarTypeUint16:  "uint16",
	ScalarTypeIntPtr:  "intptr",
	ScalarTypeUintPtr: "uintptr",
}

func (s ScalarType) String() string {
	if int(s) < len(scalarTypeNames) {
		return scalarTypeNames[s]
	}
	return fmt.Sprintf("ScalarType(%d)", uint32(s))
}

var categoryNames = [...]string{
	CategoryNone:                       "none",
	CategoryMixed:                      "mixed",
	CategoryConstantBuffer:             "constant-buffer",
	CategoryShaderResource:             "shader-resource",
	CategoryUnorderedAccess:            "unordered-access",
	CategoryVaryingInput:               "varying-input",
	CategoryVaryingOutput:              "varying-output",
	CategorySamplerState:               "sampler-state",
	CategoryUniform:                    "uniform",
	CategoryDescriptorTableSlot:        "descriptor-table-slot",
	CategorySpecializationConstant:     "specialization-constant",
	CategoryPushConstantBuffer:         "push-constant-buffer",
	CategoryRegisterSpace:              "register-space",
	CategoryGeneric:                    "generic",
	CategoryRayPayload:                 "ray-payload",
	CategoryHitAttributes:              "hit-attributes",
	CategoryCallablePayload:            "callable-payload",
	CategoryShaderRecord:               "shader-record",
	CategoryExistentialTypeParam:       "existential-type-param",
	CategoryExistentialObjectParam:     "existential-object-param",
	CategorySubElementRegisterSpace:    "sub-element-register-space",
	CategorySubpass:                    "subpass",
	CategoryMetalArgumentBufferElement: "metal-argument-buffer-element",
	CategoryMetalAttribute:             "metal-attribute",
	CategoryMetalPayload:               "metal-payload",
}

func (c ParameterCategory) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("ParameterCategory(%d)", uint32(c))
}

var bindingTypeNames = [...]string{
	BindingTypeUnknown:                         "unknown",
	BindingTypeSampler:                         "sampler",
	BindingTypeTexture:                         "texture",
	BindingTypeConstantBuffer:                  "constant-buffer",
	BindingTypeParameterBlock:                  "parameter-block",
	BindingTypeTypedBuffer:                     "typed-buffer",
	BindingTypeRawBuffer:                       "raw-buffer",
	BindingTypeCombinedTextureSampler:          "combined-texture-sampler",
	BindingTypeInputRenderTarget:               "input-render-target",
	BindingTypeInlineUniformData:               "inline-uniform-data",
	BindingTypeRayTracingAccelerationStructure: "acceleration-structure",
	BindingTypeVaryingInput:                    "varying-input",
	BindingTypeVaryingOutput:                   "varying-output",
	BindingTypeExistentialValue:                "existential-value",
	BindingTypePushConstant:                    "push-constant",
}

func (b BindingType) String() string {
	base := b.Base()
	if b&^(BindingTypeBaseMask|BindingTypeMutableFlag) != 0 || int(base) >= len(bindingTypeNames) {
		return fmt.Sprintf("BindingType(%#x)", uint32(b))
	}
	if b.Mutable() {
		return "mutable-" + bindingTypeNames[base]
	}
	return bindingTypeNames[base]
}

var resourceShapeNames = [...]string{
	ResourceShapeNone:                  "none",
	ResourceShapeTexture1D:             "texture1d",
	ResourceShapeTexture2D:             "texture2d",
	ResourceShapeTexture3D:             "texture3d",
	ResourceShapeTextureCube:           "texture-cube",
	ResourceShapeTextureBuffer:         "texture-buffer",
	ResourceShapeStructuredBuffer:      "structured-buffer",
	ResourceShapeByteAddressBuffer:     "byte-address-buffer",
	ResourceShapeUnknown:               "unknown",
	ResourceShapeAccelerationStructure: "acceleration-structure",
	ResourceShapeTextureSubpass:        "texture-subpass",
}

func (s ResourceShape) String() string {
	base := s.Base()
	if int(base) >= len(resourceShapeNames) || s&^(ResourceShapeBaseMask|ResourceShapeExtMask) != 0 {
		return fmt.Sprintf("ResourceShape(%#x)", uint32(s))
	}
	var b strings.Builder
	b.WriteString(resourceShapeNames[base])
	for _, f := range []struct {
		bit  ResourceShape
		name string
	}{
		{ResourceShapeArray, "array"},
		{ResourceShapeMultisample, "ms"},
		{ResourceShapeShadow, "shadow"},
		{ResourceShapeFeedback, "feedback"},
		{ResourceShapeCombined, "combined"},
	} {
		if s.Has(f.bit) {
			b.WriteString("+")
			b.WriteString(f.name)
		}
	}
	return b.String()
}

func (a ResourceAccess) String() string {
	switch a {
	case ResourceAccessNone:
		return "none"
	case ResourceAccessRead:
		return "read"
	case ResourceAccessReadWrite:
		return "read-write"
	case ResourceAccessRasterOrdered:
		return "raster-ordered"
	case ResourceAccessAppend:
		return "append"
	case ResourceAccessConsume:
		return "consume"
	case ResourceAccessWrite:
		return "write"
	case ResourceAccessFeedback:
		return "feedback"
	case ResourceAccessUnknown:
		return "unknown"
	}
	return fmt.Sprintf("ResourceAccess(%d)", uint32(a))
}

func (k DeclKind) String() string {
	switch k {
	case DeclKindUnsupported:
		return "unsupported"
	case DeclKindStruct:
		return "struct"
	case DeclKindFunc:
		return "func"
	case DeclKindModule:
		return "module"
	case DeclKindGeneric:
		return "generic"
	case DeclKindVariable:
		return "variable"
	case DeclKindNamespace:
		return "namespace"
	}
	return fmt.Sprintf("DeclKind(%d)", uint32(k))
}

var imageFormatNames = [...]string{
	"unknown", "rgba32f", "rgba16f", "rg32f", "rg16f", "r11f_g11f_b10f", "r32f", "r16f",
	"rgba16", "rgb10_a2", "rgba8", "rg16", "rg8", "r16", "r8",
	"rgba16_snorm", "rgba8_snorm", "rg16_snorm", "rg8_snorm", "r16_snorm", "r8_snorm",
	"rgba32i", "rgba16i", "rgba8i", "rg32i", "rg16i", "rg8i", "r32i", "r16i", "r8i",
	"rgba32ui", "rgba16ui", "rgb10_a2ui", "rgba8ui", "rg32ui", "rg16ui", "rg8ui",
	"r32ui", "r16ui", "r8ui", "r64ui", "r64i",
}

func (f ImageFormat) String() string {
	if int(f) < len(imageFormatNames) {
		return imageFormatNames[f]
	}
	return fmt.Sprintf("ImageFormat(%d)", uint32(f))
}
