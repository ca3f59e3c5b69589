package abi

// Each field holds the address of a native function; fields appear in the
// order the compiler lays out its vtables. Call them through ffi.Call with
// the interface pointer as the first argument.

type UnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type CastableVtbl struct {
	UnknownVtbl
	CastAs uintptr
}

type CloneableVtbl struct {
	CastableVtbl
	Clone uintptr
}

type BlobVtbl struct {
	UnknownVtbl
	GetBufferPointer uintptr
	GetBufferSize    uintptr
}

type FileSystemVtbl struct {
	CastableVtbl
	LoadFile uintptr
}

type SharedLibraryVtbl struct {
	CastableVtbl
	FindSymbolAddressByName uintptr
}

type SharedLibraryLoaderVtbl struct {
	UnknownVtbl
	LoadSharedLibrary uintptr
}

type WriterVtbl struct {
	UnknownVtbl
	BeginAppendBuffer uintptr
	EndAppendBuffer   uintptr
	Write             uintptr
	Flush             uintptr
	IsConsole         uintptr
	SetMode           uintptr
}

type ProfilerVtbl struct {
	UnknownVtbl
	GetEntryCount           uintptr
	GetEntryName            uintptr
	GetEntryTimeMS          uintptr
	GetEntryInvocationTimes uintptr
}

type GlobalSessionVtbl struct {
	UnknownVtbl
	CreateSession                      uintptr
	FindProfile                        uintptr
	SetDownstreamCompilerPath          uintptr
	SetDownstreamCompilerPrelude       uintptr
	GetDownstreamCompilerPrelude       uintptr
	GetBuildTagString                  uintptr
	SetDefaultDownstreamCompiler       uintptr
	GetDefaultDownstreamCompiler       uintptr
	SetLanguagePrelude                 uintptr
	GetLanguagePrelude                 uintptr
	CreateCompileRequest               uintptr
	AddBuiltins                        uintptr
	SetSharedLibraryLoader             uintptr
	GetSharedLibraryLoader             uintptr
	CheckCompileTargetSupport          uintptr
	CheckPassThroughSupport            uintptr
	CompileCoreModule                  uintptr
	LoadCoreModule                     uintptr
	SaveCoreModule                     uintptr
	FindCapability                     uintptr
	SetDownstreamCompilerForTransition uintptr
	GetDownstreamCompilerForTransition uintptr
	GetCompilerElapsedTime             uintptr
	SetSPIRVCoreGrammar                uintptr
	ParseCommandLineArguments          uintptr
	GetSessionDescDigest               uintptr
	CompileBuiltinModule               uintptr
	LoadBuiltinModule                  uintptr
	SaveBuiltinModule                  uintptr
}

type SessionVtbl struct {
	UnknownVtbl
	GetGlobalSession                      uintptr
	LoadModule                            uintptr
	LoadModuleFromSource                  uintptr
	CreateCompositeComponentType          uintptr
	SpecializeType                        uintptr
	GetTypeLayout                         uintptr
	GetContainerType                      uintptr
	GetDynamicType                        uintptr
	GetTypeRTTIMangledName                uintptr
	GetTypeConformanceWitnessMangledName  uintptr
	GetTypeConformanceWitnessSequentialID uintptr
	CreateCompileRequest                  uintptr
	CreateTypeConformanceComponentType    uintptr
	LoadModuleFromIRBlob                  uintptr
	GetLoadedModuleCount                  uintptr
	GetLoadedModule                       uintptr
	IsBinaryModuleUpToDate                uintptr
	LoadModuleFromSourceString            uintptr
	GetDynamicObjectRTTIBytes             uintptr
	LoadModuleInfoFromIRBlob              uintptr
}

type MetadataVtbl struct {
	CastableVtbl
	IsParameterLocationUsed uintptr
	GetDebugBuildIdentifier uintptr
}

type CompileResultVtbl struct {
	CastableVtbl
	GetItemCount uintptr
	GetItemData  uintptr
	GetMetadata  uintptr
}

type ComponentTypeVtbl struct {
	UnknownVtbl
	GetSession                  uintptr
	GetLayout                   uintptr
	GetSpecializationParamCount uintptr
	GetEntryPointCode           uintptr
	GetResultAsFileSystem       uintptr
	GetEntryPointHash           uintptr
	Specialize                  uintptr
	Link                        uintptr
	GetEntryPointHostCallable   uintptr
	RenameEntryPoint            uintptr
	LinkWithOptions             uintptr
	GetTargetCode               uintptr
	GetTargetMetadata           uintptr
	GetEntryPointMetadata       uintptr
}

type EntryPointVtbl struct {
	ComponentTypeVtbl
	GetFunctionReflection uintptr
}

type TypeConformanceVtbl struct {
	ComponentTypeVtbl
}

type ComponentType2Vtbl struct {
	UnknownVtbl
	GetTargetCompileResult     uintptr
	GetEntryPointCompileResult uintptr
}

type ModuleVtbl struct {
	ComponentTypeVtbl
	FindEntryPointByName      uintptr
	GetDefinedEntryPointCount uintptr
	GetDefinedEntryPoint      uintptr
	Serialize                 uintptr
	WriteToFile               uintptr
	GetName                   uintptr
	GetFilePath               uintptr
	GetUniqueIdentity         uintptr
	FindAndCheckEntryPoint    uintptr
	GetDependencyFileCount    uintptr
	GetDependencyFilePath     uintptr
	GetModuleReflection       uintptr
	Disassemble               uintptr
}
