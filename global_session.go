package slang

import (
	"runtime"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

// GlobalSession is the root compiler object. Creating one is expensive;
// most programs keep a single instance.
type GlobalSession struct{ object }

func (*GlobalSession) iid() abi.GUID { return abi.IIDGlobalSession }

func (g *GlobalSession) vt() *abi.GlobalSessionVtbl {
	return ffi.Vtbl[abi.GlobalSessionVtbl](g.live())
}

// Clone adds a reference and returns a new handle.
func (g *GlobalSession) Clone() *GlobalSession { return clone(g) }

// CreateSession creates a compilation session. A nil cfg creates a session
// without targets.
func (g *GlobalSession) CreateSession(cfg *SessionConfig) (*Session, error) {
	var pin runtime.Pinner
	defer pin.Unpin()

	desc, fsObj := cfg.sessionDesc(&pin)
	if fsObj != nil {
		defer fsObj.Release()
	}
	return g.CreateSessionDesc(&desc)
}

// CreateSessionDesc creates a session from a raw description. Any Go
// pointers reachable from desc must be pinned by the caller.
func (g *GlobalSession) CreateSessionDesc(desc *abi.SessionDesc) (*Session, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(g.vt().CreateSession,
		uintptr(g.ptr), uintptr(unsafe.Pointer(desc)), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseSession, "create session", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseSession, "create session", nil)
	}
	return wrap[Session](out), nil
}

// FindProfile looks up a profile by name, such as "spirv_1_5" or "sm_6_0".
// Unknown names yield abi.ProfileUnknown. Profile IDs are not stable
// across library versions.
func (g *GlobalSession) FindProfile(name string) abi.ProfileID {
	return abi.ProfileID(ffi.Uint32(ffi.Call(g.vt().FindProfile,
		uintptr(g.ptr), uintptr(ffi.CStringArg(name)))))
}

// SetDownstreamCompilerPath sets where the pass-through compiler is looked up.
func (g *GlobalSession) SetDownstreamCompilerPath(pass abi.PassThrough, path string) {
	ffi.Call(g.vt().SetDownstreamCompilerPath,
		uintptr(g.ptr), uintptr(pass), uintptr(ffi.CStringArg(path)))
}

// SetDownstreamCompilerPrelude sets the prelude for code generated for pass.
//
// Deprecated: use SetLanguagePrelude.
func (g *GlobalSession) SetDownstreamCompilerPrelude(pass abi.PassThrough, prelude string) {
	ffi.Call(g.vt().SetDownstreamCompilerPrelude,
		uintptr(g.ptr), uintptr(pass), uintptr(ffi.CStringArg(prelude)))
}

// DownstreamCompilerPrelude returns the prelude set for pass, or nil.
//
// Deprecated: use LanguagePrelude.
func (g *GlobalSession) DownstreamCompilerPrelude(pass abi.PassThrough) *Blob {
	var out unsafe.Pointer
	ffi.Call(g.vt().GetDownstreamCompilerPrelude,
		uintptr(g.ptr), uintptr(pass), uintptr(unsafe.Pointer(&out)))
	return outBlob(out)
}

// BuildTagString returns the library version tag.
func (g *GlobalSession) BuildTagString() string {
	return goString(ffi.Call(g.vt().GetBuildTagString, uintptr(g.ptr)))
}

// SetDefaultDownstreamCompiler picks the compiler used for lang.
func (g *GlobalSession) SetDefaultDownstreamCompiler(lang abi.SourceLanguage, pass abi.PassThrough) error {
	r := ffi.Result(ffi.Call(g.vt().SetDefaultDownstreamCompiler,
		uintptr(g.ptr), uintptr(lang), uintptr(pass)))
	return check(errors.PhaseSession, "set default downstream compiler", r, nil)
}

// DefaultDownstreamCompiler returns the compiler used for lang.
func (g *GlobalSession) DefaultDownstreamCompiler(lang abi.SourceLanguage) abi.PassThrough {
	return abi.PassThrough(ffi.Int32(ffi.Call(g.vt().GetDefaultDownstreamCompiler,
		uintptr(g.ptr), uintptr(lang))))
}

// SetLanguagePrelude sets text prepended to code generated in lang.
func (g *GlobalSession) SetLanguagePrelude(lang abi.SourceLanguage, prelude string) {
	ffi.Call(g.vt().SetLanguagePrelude,
		uintptr(g.ptr), uintptr(lang), uintptr(ffi.CStringArg(prelude)))
}

// LanguagePrelude returns the prelude for lang, or nil.
func (g *GlobalSession) LanguagePrelude(lang abi.SourceLanguage) *Blob {
	var out unsafe.Pointer
	ffi.Call(g.vt().GetLanguagePrelude,
		uintptr(g.ptr), uintptr(lang), uintptr(unsafe.Pointer(&out)))
	return outBlob(out)
}

// CreateCompileRequest creates a legacy compile request object.
//
// Deprecated: use sessions and component types.
func (g *GlobalSession) CreateCompileRequest() (*Unknown, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(g.vt().CreateCompileRequest,
		uintptr(g.ptr), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseSession, "create compile request", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseSession, "create compile request", nil)
	}
	return WrapUnknown(out), nil
}

// AddBuiltins adds declarations visible to every later compilation.
func (g *GlobalSession) AddBuiltins(sourcePath, source string) {
	ffi.Call(g.vt().AddBuiltins,
		uintptr(g.ptr), uintptr(ffi.CStringArg(sourcePath)), uintptr(ffi.CStringArg(source)))
}

// SetSharedLibraryLoader installs loader; nil restores the default loader.
func (g *GlobalSession) SetSharedLibraryLoader(loader *SharedLibraryLoader) {
	var p unsafe.Pointer
	if loader != nil {
		p = loader.Ptr()
	}
	ffi.Call(g.vt().SetSharedLibraryLoader, uintptr(g.ptr), uintptr(p))
}

// SharedLibraryLoader returns the installed loader, or nil for the default.
func (g *GlobalSession) SharedLibraryLoader() *SharedLibraryLoader {
	return borrow[SharedLibraryLoader](ffi.Ptr(ffi.Call(g.vt().GetSharedLibraryLoader, uintptr(g.ptr))))
}

// CheckCompileTargetSupport reports whether target can be produced.
func (g *GlobalSession) CheckCompileTargetSupport(target abi.CompileTarget) error {
	r := ffi.Result(ffi.Call(g.vt().CheckCompileTargetSupport, uintptr(g.ptr), uintptr(target)))
	return check(errors.PhaseSession, "check target support "+target.String(), r, nil)
}

// CheckPassThroughSupport reports whether pass is available.
func (g *GlobalSession) CheckPassThroughSupport(pass abi.PassThrough) error {
	r := ffi.Result(ffi.Call(g.vt().CheckPassThroughSupport, uintptr(g.ptr), uintptr(pass)))
	return check(errors.PhaseSession, "check pass-through support", r, nil)
}

// CompileCoreModule compiles the core module from embedded source.
func (g *GlobalSession) CompileCoreModule(flags abi.CompileCoreModuleFlags) error {
	r := ffi.Result(ffi.Call(g.vt().CompileCoreModule, uintptr(g.ptr), uintptr(flags)))
	return check(errors.PhaseCompile, "compile core module", r, nil)
}

// LoadCoreModule loads a core module saved with SaveCoreModule.
func (g *GlobalSession) LoadCoreModule(data []byte) error {
	r := ffi.Result(ffi.Call(g.vt().LoadCoreModule,
		uintptr(g.ptr), uintptr(unsafe.Pointer(unsafe.SliceData(data))), uintptr(len(data))))
	return check(errors.PhaseLoad, "load core module", r, nil)
}

// SaveCoreModule serializes the core module.
func (g *GlobalSession) SaveCoreModule(archive abi.ArchiveType) (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(g.vt().SaveCoreModule,
		uintptr(g.ptr), uintptr(archive), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseCodegen, "save core module", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseCodegen, "save core module", nil)
	}
	return outBlob(out), nil
}

// FindCapability looks up a capability by name.
func (g *GlobalSession) FindCapability(name string) abi.CapabilityID {
	return abi.CapabilityID(ffi.Int32(ffi.Call(g.vt().FindCapability,
		uintptr(g.ptr), uintptr(ffi.CStringArg(name)))))
}

// SetDownstreamCompilerForTransition picks the compiler that turns source
// code into target code.
func (g *GlobalSession) SetDownstreamCompilerForTransition(source, target abi.CompileTarget, pass abi.PassThrough) {
	ffi.Call(g.vt().SetDownstreamCompilerForTransition,
		uintptr(g.ptr), uintptr(source), uintptr(target), uintptr(pass))
}

// DownstreamCompilerForTransition returns the compiler used from source to
// target.
func (g *GlobalSession) DownstreamCompilerForTransition(source, target abi.CompileTarget) abi.PassThrough {
	return abi.PassThrough(ffi.Int32(ffi.Call(g.vt().GetDownstreamCompilerForTransition,
		uintptr(g.ptr), uintptr(source), uintptr(target))))
}

// CompilerElapsedTime returns the total and downstream compile time in
// seconds.
func (g *GlobalSession) CompilerElapsedTime() (total, downstream float64) {
	ffi.Call(g.vt().GetCompilerElapsedTime,
		uintptr(g.ptr), uintptr(unsafe.Pointer(&total)), uintptr(unsafe.Pointer(&downstream)))
	return total, downstream
}

// SetSPIRVCoreGrammar loads the SPIR-V core grammar from a JSON file.
func (g *GlobalSession) SetSPIRVCoreGrammar(jsonPath string) error {
	r := ffi.Result(ffi.Call(g.vt().SetSPIRVCoreGrammar,
		uintptr(g.ptr), uintptr(ffi.CStringArg(jsonPath))))
	return check(errors.PhaseSession, "set spirv core grammar", r, nil)
}

// ParseCommandLineArguments parses slangc-style arguments into a session
// description. The description points into aux, which must be released
// after the description is no longer used.
func (g *GlobalSession) ParseCommandLineArguments(args []string) (abi.SessionDesc, *Unknown, error) {
	var pin runtime.Pinner
	defer pin.Unpin()

	argv := make([]*byte, len(args))
	for i, a := range args {
		argv[i] = pinnedString(&pin, a)
	}
	desc := abi.DefaultSessionDesc()
	var aux unsafe.Pointer
	r := ffi.Result(ffi.Call(g.vt().ParseCommandLineArguments,
		uintptr(g.ptr), uintptr(int32(len(args))), uintptr(unsafe.Pointer(pinnedSlice(&pin, argv))),
		uintptr(unsafe.Pointer(&desc)), uintptr(unsafe.Pointer(&aux))))
	if err := check(errors.PhaseSession, "parse command line arguments", r, nil); err != nil {
		return abi.SessionDesc{}, nil, err
	}
	return desc, WrapUnknown(aux), nil
}

// SessionDescDigest hashes a session description.
func (g *GlobalSession) SessionDescDigest(desc *abi.SessionDesc) (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(g.vt().GetSessionDescDigest,
		uintptr(g.ptr), uintptr(unsafe.Pointer(desc)), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseSession, "session desc digest", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseSession, "session desc digest", nil)
	}
	return outBlob(out), nil
}

// ConfigDigest is SessionDescDigest for a SessionConfig.
func (g *GlobalSession) ConfigDigest(cfg *SessionConfig) (*Blob, error) {
	var pin runtime.Pinner
	defer pin.Unpin()

	desc, fsObj := cfg.sessionDesc(&pin)
	if fsObj != nil {
		defer fsObj.Release()
	}
	return g.SessionDescDigest(&desc)
}

// CompileBuiltinModule compiles a builtin module from embedded source.
func (g *GlobalSession) CompileBuiltinModule(module abi.BuiltinModuleName, flags abi.CompileCoreModuleFlags) error {
	r := ffi.Result(ffi.Call(g.vt().CompileBuiltinModule,
		uintptr(g.ptr), uintptr(module), uintptr(flags)))
	return check(errors.PhaseCompile, "compile builtin module", r, nil)
}

// LoadBuiltinModule loads a builtin module saved with SaveBuiltinModule.
func (g *GlobalSession) LoadBuiltinModule(module abi.BuiltinModuleName, data []byte) error {
	r := ffi.Result(ffi.Call(g.vt().LoadBuiltinModule,
		uintptr(g.ptr), uintptr(module), uintptr(unsafe.Pointer(unsafe.SliceData(data))), uintptr(len(data))))
	return check(errors.PhaseLoad, "load builtin module", r, nil)
}

// SaveBuiltinModule serializes a builtin module.
func (g *GlobalSession) SaveBuiltinModule(module abi.BuiltinModuleName, archive abi.ArchiveType) (*Blob, error) {
	var out unsafe.Pointer
	r := ffi.Result(ffi.Call(g.vt().SaveBuiltinModule,
		uintptr(g.ptr), uintptr(module), uintptr(archive), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseCodegen, "save builtin module", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseCodegen, "save builtin module", nil)
	}
	return outBlob(out), nil
}
