package reflection

import "github.com/wippyai/slang-go/internal/ffi"

var (
	procAttrGetName           = ffi.NewProc("spReflectionUserAttribute_GetName")
	procAttrGetArgumentCount  = ffi.NewProc("spReflectionUserAttribute_GetArgumentCount")
	procAttrGetArgumentType   = ffi.NewProc("spReflectionUserAttribute_GetArgumentType")
	procAttrGetArgumentInt    = ffi.NewProc("spReflectionUserAttribute_GetArgumentValueInt")
	procAttrGetArgumentFloat  = ffi.NewProc("spReflectionUserAttribute_GetArgumentValueFloat")
	procAttrGetArgumentString = ffi.NewProc("spReflectionUserAttribute_GetArgumentValueString")
)

var (
	procTypeGetKind                 = ffi.NewProc("spReflectionType_GetKind")
	procTypeGetFieldCount           = ffi.NewProc("spReflectionType_GetFieldCount")
	procTypeGetFieldByIndex         = ffi.NewProc("spReflectionType_GetFieldByIndex")
	procTypeGetElementCount         = ffi.NewProc("spReflectionType_GetSpecializedElementCount")
	procTypeGetElementType          = ffi.NewProc("spReflectionType_GetElementType")
	procTypeGetRowCount             = ffi.NewProc("spReflectionType_GetRowCount")
	procTypeGetColumnCount          = ffi.NewProc("spReflectionType_GetColumnCount")
	procTypeGetScalarType           = ffi.NewProc("spReflectionType_GetScalarType")
	procTypeGetResourceResultType   = ffi.NewProc("spReflectionType_GetResourceResultType")
	procTypeGetResourceShape        = ffi.NewProc("spReflectionType_GetResourceShape")
	procTypeGetResourceAccess       = ffi.NewProc("spReflectionType_GetResourceAccess")
	procTypeGetName                 = ffi.NewProc("spReflectionType_GetName")
	procTypeGetFullName             = ffi.NewProc("spReflectionType_GetFullName")
	procTypeGetUserAttributeCount   = ffi.NewProc("spReflectionType_GetUserAttributeCount")
	procTypeGetUserAttribute        = ffi.NewProc("spReflectionType_GetUserAttribute")
	procTypeFindUserAttributeByName = ffi.NewProc("spReflectionType_FindUserAttributeByName")
	procTypeApplySpecializations    = ffi.NewProc("spReflectionType_applySpecializations")
	procTypeGetGenericContainer     = ffi.NewProc("spReflectionType_GetGenericContainer")
)

var (
	procLayoutGetType                        = ffi.NewProc("spReflectionTypeLayout_GetType")
	procLayoutGetKind                        = ffi.NewProc("spReflectionTypeLayout_getKind")
	procLayoutGetSize                        = ffi.NewProc("spReflectionTypeLayout_GetSize")
	procLayoutGetStride                      = ffi.NewProc("spReflectionTypeLayout_GetStride")
	procLayoutGetAlignment                   = ffi.NewProc("spReflectionTypeLayout_getAlignment")
	procLayoutGetFieldCount                  = ffi.NewProc("spReflectionTypeLayout_GetFieldCount")
	procLayoutGetFieldByIndex                = ffi.NewProc("spReflectionTypeLayout_GetFieldByIndex")
	procLayoutFindFieldIndexByName           = ffi.NewProc("spReflectionTypeLayout_findFieldIndexByName")
	procLayoutGetExplicitCounter             = ffi.NewProc("spReflectionTypeLayout_GetExplicitCounter")
	procLayoutGetElementStride               = ffi.NewProc("spReflectionTypeLayout_GetElementStride")
	procLayoutGetElementTypeLayout           = ffi.NewProc("spReflectionTypeLayout_GetElementTypeLayout")
	procLayoutGetElementVarLayout            = ffi.NewProc("spReflectionTypeLayout_GetElementVarLayout")
	procLayoutGetContainerVarLayout          = ffi.NewProc("spReflectionTypeLayout_getContainerVarLayout")
	procLayoutGetParameterCategory           = ffi.NewProc("spReflectionTypeLayout_GetParameterCategory")
	procLayoutGetCategoryCount               = ffi.NewProc("spReflectionTypeLayout_GetCategoryCount")
	procLayoutGetCategoryByIndex             = ffi.NewProc("spReflectionTypeLayout_GetCategoryByIndex")
	procLayoutGetMatrixLayoutMode            = ffi.NewProc("spReflectionTypeLayout_GetMatrixLayoutMode")
	procLayoutGetGenericParamIndex           = ffi.NewProc("spReflectionTypeLayout_getGenericParamIndex")
	procLayoutGetPendingDataTypeLayout       = ffi.NewProc("spReflectionTypeLayout_getPendingDataTypeLayout")
	procLayoutGetSpecializedPendingVarLayout = ffi.NewProc("spReflectionTypeLayout_getSpecializedTypePendingDataVarLayout")

	procLayoutGetBindingRangeCount              = ffi.NewProc("spReflectionTypeLayout_getBindingRangeCount")
	procLayoutGetBindingRangeType               = ffi.NewProc("spReflectionTypeLayout_getBindingRangeType")
	procLayoutIsBindingRangeSpecializable       = ffi.NewProc("spReflectionTypeLayout_isBindingRangeSpecializable")
	procLayoutGetBindingRangeBindingCount       = ffi.NewProc("spReflectionTypeLayout_getBindingRangeBindingCount")
	procLayoutGetFieldBindingRangeOffset        = ffi.NewProc("spReflectionTypeLayout_getFieldBindingRangeOffset")
	procLayoutGetExplicitCounterBindingRange    = ffi.NewProc("spReflectionTypeLayout_getExplicitCounterBindingRangeOffset")
	procLayoutGetBindingRangeLeafTypeLayout     = ffi.NewProc("spReflectionTypeLayout_getBindingRangeLeafTypeLayout")
	procLayoutGetBindingRangeLeafVariable       = ffi.NewProc("spReflectionTypeLayout_getBindingRangeLeafVariable")
	procLayoutGetBindingRangeImageFormat        = ffi.NewProc("spReflectionTypeLayout_getBindingRAngeImageFormat")
	procLayoutGetBindingRangeDescriptorSetIndex = ffi.NewProc("spReflectionTypeLayout_getBindingRAngeDescriptorSetIndex")
	procLayoutGetBindingRangeFirstDescRange     = ffi.NewProc("spReflectionTypeLayout_getBindingRangeFirstDescriptorRangeIndex")
	procLayoutGetBindingRangeDescRangeCount     = ffi.NewProc("spReflectionTypeLayout_getBindingRangeDescriptorRangeCount")

	procLayoutGetDescriptorSetCount          = ffi.NewProc("spReflectionTypeLayout_getDescriptorSetCount")
	procLayoutGetDescriptorSetSpaceOffset    = ffi.NewProc("spReflectionTypeLayout_getDescriptorSetSpaceOffset")
	procLayoutGetDescriptorSetRangeCount     = ffi.NewProc("spReflectionTypeLayout_getDescriptorSetDescriptorRangeCount")
	procLayoutGetDescriptorSetRangeOffset    = ffi.NewProc("spReflectionTypeLayout_getDescriptorSetDescriptorRangeIndexOffset")
	procLayoutGetDescriptorSetRangeDescCount = ffi.NewProc("spReflectionTypeLayout_getDescriptorSetDescriptorRangeDescriptorCount")
	procLayoutGetDescriptorSetRangeType      = ffi.NewProc("spReflectionTypeLayout_getDescriptorSetDescriptorRangeType")
	procLayoutGetDescriptorSetRangeCategory  = ffi.NewProc("spReflectionTypeLayout_getDescriptorSetDescriptorRangeCategory")

	procLayoutGetSubObjectRangeCount        = ffi.NewProc("spReflectionTypeLayout_getSubObjectRangeCount")
	procLayoutGetSubObjectRangeBindingRange = ffi.NewProc("spReflectionTypeLayout_getSubObjectRangeBindingRangeIndex")
	procLayoutGetSubObjectRangeSpaceOffset  = ffi.NewProc("spReflectionTypeLayout_getSubObjectRangeSpaceOffset")
	procLayoutGetSubObjectRangeOffset       = ffi.NewProc("spReflectionTypeLayout_getSubObjectRangeOffset")
)

var (
	procVarGetName                 = ffi.NewProc("spReflectionVariable_GetName")
	procVarGetType                 = ffi.NewProc("spReflectionVariable_GetType")
	procVarFindModifier            = ffi.NewProc("spReflectionVariable_FindModifier")
	procVarGetUserAttributeCount   = ffi.NewProc("spReflectionVariable_GetUserAttributeCount")
	procVarGetUserAttribute        = ffi.NewProc("spReflectionVariable_GetUserAttribute")
	procVarFindUserAttributeByName = ffi.NewProc("spReflectionVariable_FindUserAttributeByName")
	procVarHasDefaultValue         = ffi.NewProc("spReflectionVariable_HasDefaultValue")
	procVarGetDefaultValueInt      = ffi.NewProc("spReflectionVariable_GetDefaultValueInt")
	procVarGetGenericContainer     = ffi.NewProc("spReflectionVariable_GetGenericContainer")
	procVarApplySpecializations    = ffi.NewProc("spReflectionVariable_applySpecializations")

	procVarLayoutGetVariable       = ffi.NewProc("spReflectionVariableLayout_GetVariable")
	procVarLayoutGetTypeLayout     = ffi.NewProc("spReflectionVariableLayout_GetTypeLayout")
	procVarLayoutGetOffset         = ffi.NewProc("spReflectionVariableLayout_GetOffset")
	procVarLayoutGetBindingIndex   = ffi.NewProc("spReflectionParameter_GetBindingIndex")
	procVarLayoutGetBindingSpace   = ffi.NewProc("spReflectionParameter_GetBindingSpace")
	procVarLayoutGetSpace          = ffi.NewProc("spReflectionVariableLayout_GetSpace")
	procVarLayoutGetImageFormat    = ffi.NewProc("spReflectionVariableLayout_GetImageFormat")
	procVarLayoutGetSemanticName   = ffi.NewProc("spReflectionVariableLayout_GetSemanticName")
	procVarLayoutGetSemanticIndex  = ffi.NewProc("spReflectionVariableLayout_GetSemanticIndex")
	procVarLayoutGetStage          = ffi.NewProc("spReflectionVariableLayout_getStage")
	procVarLayoutGetPendingDataLay = ffi.NewProc("spReflectionVariableLayout_getPendingDataLayout")
)

var (
	procFuncGetName                 = ffi.NewProc("spReflectionFunction_GetName")
	procFuncGetResultType           = ffi.NewProc("spReflectionFunction_GetResultType")
	procFuncGetParameterCount       = ffi.NewProc("spReflectionFunction_GetParameterCount")
	procFuncGetParameter            = ffi.NewProc("spReflectionFunction_GetParameter")
	procFuncGetUserAttributeCount   = ffi.NewProc("spReflectionFunction_GetUserAttributeCount")
	procFuncGetUserAttribute        = ffi.NewProc("spReflectionFunction_GetUserAttribute")
	procFuncFindUserAttributeByName = ffi.NewProc("spReflectionFunction_FindUserAttributeByName")
	procFuncFindModifier            = ffi.NewProc("spReflectionFunction_FindModifier")
	procFuncGetGenericContainer     = ffi.NewProc("spReflectionFunction_GetGenericContainer")
	procFuncApplySpecializations    = ffi.NewProc("spReflectionFunction_applySpecializations")
	procFuncSpecializeWithArgTypes  = ffi.NewProc("spReflectionFunction_specializeWithArgTypes")
	procFuncIsOverloaded            = ffi.NewProc("spReflectionFunction_isOverloaded")
	procFuncGetOverloadCount        = ffi.NewProc("spReflectionFunction_getOverloadCount")
	procFuncGetOverload             = ffi.NewProc("spReflectionFunction_getOverload")
)

var (
	procGenericAsDecl                   = ffi.NewProc("spReflectionGeneric_asDecl")
	procGenericGetName                  = ffi.NewProc("spReflectionGeneric_GetName")
	procGenericGetTypeParameterCount    = ffi.NewProc("spReflectionGeneric_GetTypeParameterCount")
	procGenericGetTypeParameter         = ffi.NewProc("spReflectionGeneric_GetTypeParameter")
	procGenericGetValueParameterCount   = ffi.NewProc("spReflectionGeneric_GetValueParameterCount")
	procGenericGetValueParameter        = ffi.NewProc("spReflectionGeneric_GetValueParameter")
	procGenericGetConstraintCount       = ffi.NewProc("spReflectionGeneric_GetTypeParameterConstraintCount")
	procGenericGetConstraintType        = ffi.NewProc("spReflectionGeneric_GetTypeParameterConstraintType")
	procGenericGetInnerDecl             = ffi.NewProc("spReflectionGeneric_GetInnerDecl")
	procGenericGetInnerKind             = ffi.NewProc("spReflectionGeneric_GetInnerKind")
	procGenericGetOuterGenericContainer = ffi.NewProc("spReflectionGeneric_GetOuterGenericContainer")
	procGenericGetConcreteType          = ffi.NewProc("spReflectionGeneric_GetConcreteType")
	procGenericGetConcreteIntVal        = ffi.NewProc("spReflectionGeneric_GetConcreteIntVal")
	procGenericApplySpecializations     = ffi.NewProc("spReflectionGeneric_applySpecializations")
)

var (
	procEntryGetName                   = ffi.NewProc("spReflectionEntryPoint_getName")
	procEntryGetNameOverride           = ffi.NewProc("spReflectionEntryPoint_getNameOverride")
	procEntryGetParameterCount         = ffi.NewProc("spReflectionEntryPoint_getParameterCount")
	procEntryGetFunction               = ffi.NewProc("spReflectionEntryPoint_getFunction")
	procEntryGetParameterByIndex       = ffi.NewProc("spReflectionEntryPoint_getParameterByIndex")
	procEntryGetStage                  = ffi.NewProc("spReflectionEntryPoint_getStage")
	procEntryGetComputeThreadGroupSize = ffi.NewProc("spReflectionEntryPoint_getComputeThreadGroupSize")
	procEntryGetComputeWaveSize        = ffi.NewProc("spReflectionEntryPoint_getComputeWaveSize")
	procEntryUsesAnySampleRateInput    = ffi.NewProc("spReflectionEntryPoint_usesAnySampleRateInput")
	procEntryGetVarLayout              = ffi.NewProc("spReflectionEntryPoint_getVarLayout")
	procEntryGetResultVarLayout        = ffi.NewProc("spReflectionEntryPoint_getResultVarLayout")
	procEntryHasDefaultConstantBuffer  = ffi.NewProc("spReflectionEntryPoint_hasDefaultConstantBuffer")
	procTypeParamGetName               = ffi.NewProc("spReflectionTypeParameter_GetName")
	procTypeParamGetIndex              = ffi.NewProc("spReflectionTypeParameter_GetIndex")
	procTypeParamGetConstraintCount    = ffi.NewProc("spReflectionTypeParameter_GetConstraintCount")
	procTypeParamGetConstraintByIndex  = ffi.NewProc("spReflectionTypeParameter_GetConstraintByIndex")
)

var (
	procShaderGetParameterCount         = ffi.NewProc("spReflection_GetParameterCount")
	procShaderGetTypeParameterCount     = ffi.NewProc("spReflection_GetTypeParameterCount")
	procShaderGetSession                = ffi.NewProc("spReflection_GetSession")
	procShaderGetTypeParameterByIndex   = ffi.NewProc("spReflection_GetTypeParameterByIndex")
	procShaderFindTypeParameter         = ffi.NewProc("spReflection_FindTypeParameter")
	procShaderGetParameterByIndex       = ffi.NewProc("spReflection_GetParameterByIndex")
	procShaderGetEntryPointCount        = ffi.NewProc("spReflection_getEntryPointCount")
	procShaderGetEntryPointByIndex      = ffi.NewProc("spReflection_getEntryPointByIndex")
	procShaderGetGlobalCBufferBinding   = ffi.NewProc("spReflection_getGlobalConstantBufferBinding")
	procShaderGetGlobalCBufferSize      = ffi.NewProc("spReflection_getGlobalConstantBufferSize")
	procShaderFindTypeByName            = ffi.NewProc("spReflection_FindTypeByName")
	procShaderFindFunctionByName        = ffi.NewProc("spReflection_FindFunctionByName")
	procShaderFindFunctionByNameInType  = ffi.NewProc("spReflection_FindFunctionByNameInType")
	procShaderFindVarByNameInType       = ffi.NewProc("spReflection_FindVarByNameInType")
	procShaderGetTypeLayout             = ffi.NewProc("spReflection_GetTypeLayout")
	procShaderFindEntryPointByName      = ffi.NewProc("spReflection_findEntryPointByName")
	procShaderSpecializeType            = ffi.NewProc("spReflection_specializeType")
	procShaderSpecializeGeneric         = ffi.NewProc("spReflection_specializeGeneric")
	procShaderIsSubType                 = ffi.NewProc("spReflection_isSubType")
	procShaderGetHashedStringCount      = ffi.NewProc("spReflection_getHashedStringCount")
	procShaderGetHashedString           = ffi.NewProc("spReflection_getHashedString")
	procShaderGetGlobalParamsTypeLayout = ffi.NewProc("spReflection_getGlobalParamsTypeLayout")
	procShaderGetGlobalParamsVarLayout  = ffi.NewProc("spReflection_getGlobalParamsVarLayout")
	procShaderToJSON                    = ffi.NewProc("spReflection_ToJson")
)

var (
	procDeclGetName          = ffi.NewProc("spReflectionDecl_getName")
	procDeclGetKind          = ffi.NewProc("spReflectionDecl_getKind")
	procDeclGetChildrenCount = ffi.NewProc("spReflectionDecl_getChildrenCount")
	procDeclGetChild         = ffi.NewProc("spReflectionDecl_getChild")
	procDeclGetType          = ffi.NewProc("spReflection_getTypeFromDecl")
	procDeclCastToVariable   = ffi.NewProc("spReflectionDecl_castToVariable")
	procDeclCastToFunction   = ffi.NewProc("spReflectionDecl_castToFunction")
	procDeclCastToGeneric    = ffi.NewProc("spReflectionDecl_castToGeneric")
	procDeclGetParent        = ffi.NewProc("spReflectionDecl_getParent")
)
