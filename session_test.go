package slang

import (
	stderrors "errors"
	"runtime"
	"testing"
	"testing/fstest"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
	"github.com/wippyai/slang-go/internal/ffitest"
)

func cstr(p *byte) string {
	s, _ := ffi.GoString(unsafe.Pointer(p))
	return s
}

func TestSessionDescEmpty(t *testing.T) {
	for name, cfg := range map[string]*SessionConfig{"nil": nil, "zero": {}} {
		t.Run(name, func(t *testing.T) {
			var pin runtime.Pinner
			defer pin.Unpin()

			desc, fsObj := cfg.sessionDesc(&pin)
			if fsObj != nil {
				t.Error("file system created without FileSystem")
			}
			if desc.StructureSize != uint32(unsafe.Sizeof(abi.SessionDesc{})) {
				t.Errorf("StructureSize = %d", desc.StructureSize)
			}
			if desc.Targets != nil || desc.TargetCount != 0 {
				t.Error("targets not (nil, 0)")
			}
			if desc.SearchPaths != nil || desc.SearchPathCount != 0 {
				t.Error("search paths not (nil, 0)")
			}
			if desc.PreprocessorMacros != nil || desc.PreprocessorMacroCount != 0 {
				t.Error("macros not (nil, 0)")
			}
			if desc.CompilerOptionEntries != nil || desc.CompilerOptionEntryCount != 0 {
				t.Error("options not (nil, 0)")
			}
			if desc.DefaultMatrixLayoutMode != abi.MatrixLayoutRowMajor {
				t.Errorf("matrix layout = %v", desc.DefaultMatrixLayoutMode)
			}
		})
	}
}

func TestSessionDescMarshal(t *testing.T) {
	ffitest.New(t)
	var pin runtime.Pinner
	defer pin.Unpin()

	cfg := &SessionConfig{
		Targets: []Target{
			{Format: abi.TargetSPIRV, Profile: 7, Options: []CompilerOption{BoolOption(abi.OptionMatrixLayoutColumn, true)}},
			{Format: abi.TargetWGSL},
		},
		DefaultMatrixLayoutMode: abi.MatrixLayoutColumnMajor,
		SearchPaths:             []string{"shaders", "lib"},
		Macros:                  []Macro{{Name: "USE_FOG", Value: "1"}},
		Options:                 []CompilerOption{MacroOption("N", "4"), StringOption(abi.OptionModuleName, "app")},
		FileSystem:              fstest.MapFS{},
	}

	desc, fsObj := cfg.sessionDesc(&pin)
	if fsObj == nil || desc.FileSystem != fsObj.Ptr() {
		t.Fatal("file system not marshaled")
	}
	defer fsObj.Release()

	if desc.DefaultMatrixLayoutMode != abi.MatrixLayoutColumnMajor {
		t.Errorf("matrix layout = %v", desc.DefaultMatrixLayoutMode)
	}

	targets := unsafe.Slice(desc.Targets, desc.TargetCount)
	if len(targets) != 2 {
		t.Fatalf("target count = %d", len(targets))
	}
	if targets[0].Format != abi.TargetSPIRV || targets[0].Profile != 7 || targets[1].Format != abi.TargetWGSL {
		t.Errorf("targets = %+v", targets)
	}
	if targets[0].StructureSize != unsafe.Sizeof(abi.TargetDesc{}) {
		t.Errorf("target StructureSize = %d", targets[0].StructureSize)
	}
	topts := unsafe.Slice(targets[0].CompilerOptionEntries, targets[0].CompilerOptionEntryCount)
	if len(topts) != 1 || topts[0].Name != abi.OptionMatrixLayoutColumn || topts[0].Value.IntValue0 != 1 {
		t.Errorf("target options = %+v", topts)
	}
	if targets[1].CompilerOptionEntries != nil || targets[1].CompilerOptionEntryCount != 0 {
		t.Error("target without options not (nil, 0)")
	}

	var paths []string
	for _, p := range unsafe.Slice(desc.SearchPaths, desc.SearchPathCount) {
		paths = append(paths, cstr(p))
	}
	if len(paths) != 2 || paths[0] != "shaders" || paths[1] != "lib" {
		t.Errorf("search paths = %q", paths)
	}

	macros := unsafe.Slice(desc.PreprocessorMacros, desc.PreprocessorMacroCount)
	if len(macros) != 1 || cstr(macros[0].Name) != "USE_FOG" || cstr(macros[0].Value) != "1" {
		t.Errorf("macros = %+v", macros)
	}

	opts := unsafe.Slice(desc.CompilerOptionEntries, desc.CompilerOptionEntryCount)
	if len(opts) != 2 {
		t.Fatalf("option count = %d", len(opts))
	}
	if opts[0].Name != abi.OptionMacroDefine || cstr(opts[0].Value.StringValue0) != "N" || cstr(opts[0].Value.StringValue1) != "4" {
		t.Errorf("macro option = %+v", opts[0])
	}
	if opts[1].Value.Kind != abi.CompilerOptionValueString || cstr(opts[1].Value.StringValue0) != "app" || opts[1].Value.StringValue1 != nil {
		t.Errorf("string option = %+v", opts[1])
	}
}

func newFakeGlobalSession(h *ffitest.Harness) *ffitest.Object {
	return ffitest.NewObject[abi.GlobalSessionVtbl](h, abi.IIDGlobalSession)
}

func TestCreateSession(t *testing.T) {
	h := ffitest.New(t)
	base := HostObjects().Len()
	gobj := newFakeGlobalSession(h)
	sobj := ffitest.NewObject[abi.SessionVtbl](h, abi.IIDSession)

	var sawTargets int
	var loaded string
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.CreateSession), func(args ...uintptr) uintptr {
		desc := (*abi.SessionDesc)(ffitest.Ptr(args[1]))
		sawTargets = desc.TargetCount
		if desc.FileSystem != nil {
			fsys := borrow[FileSystem](desc.FileSystem)
			if b, err := fsys.LoadFile("main.slang"); err == nil {
				loaded = b.String()
				b.Release()
			}
			fsys.Release()
		}
		ffitest.Out(args[2], sobj.Ptr())
		return ffitest.R(abi.ResultOK)
	})

	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	s, err := g.CreateSession(&SessionConfig{
		Targets:    []Target{{Format: abi.TargetSPIRV}},
		FileSystem: fstest.MapFS{"main.slang": {Data: []byte("void main() {}")}},
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	defer s.Release()

	if sawTargets != 1 {
		t.Errorf("target count seen = %d", sawTargets)
	}
	if loaded != "void main() {}" {
		t.Errorf("file system read %q", loaded)
	}
	if HostObjects().Len() != base {
		t.Errorf("host objects = %d, want %d", HostObjects().Len(), base)
	}
}

func TestCreateSessionFailure(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.CreateSession), func(args ...uintptr) uintptr {
		return ffitest.R(abi.ResultInvalidArg)
	})
	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	s, err := g.CreateSession(nil)
	if s != nil {
		t.Error("session returned on failure")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("error %v is not *errors.Error", err)
	}
	if e.Phase != errors.PhaseSession || e.Kind != errors.KindInvalidArg || e.Code != abi.ResultInvalidArg {
		t.Errorf("error = %+v", e)
	}
}

func newFakeSession(h *ffitest.Harness) *ffitest.Object {
	return ffitest.NewObject[abi.SessionVtbl](h, abi.IIDSession)
}

func TestLoadModule(t *testing.T) {
	h := ffitest.New(t)
	sobj := newFakeSession(h)
	mobj := ffitest.NewObject[abi.ModuleVtbl](h, abi.IIDComponentType, abi.IIDModule)
	warn := ffitest.NewStringBlob(h, "warning: implicit conversion")
	fail := ffitest.NewStringBlob(h, "error 15300: failed to find module")

	sobj.SetAt(unsafe.Offsetof(abi.SessionVtbl{}.LoadModule), func(args ...uintptr) uintptr {
		switch ffitest.Str(args[1]) {
		case "lighting":
			ffitest.Out(args[2], warn.Ptr())
			return mobj.Addr()
		default:
			ffitest.Out(args[2], fail.Ptr())
			return 0
		}
	})
	s := wrap[Session](sobj.Ptr())
	defer s.Release()

	m, diag, err := s.LoadModule("lighting")
	if err != nil {
		t.Fatalf("LoadModule: %v", err)
	}
	if diag.String() != "warning: implicit conversion" {
		t.Errorf("diagnostics = %q", diag.String())
	}
	diag.Release()
	if mobj.Refs() != 2 {
		t.Errorf("module refs = %d, want 2", mobj.Refs())
	}
	m.Release()
	if mobj.Refs() != 1 {
		t.Errorf("module refs after release = %d, want 1", mobj.Refs())
	}
	if warn.Refs() != 0 {
		t.Errorf("warning blob refs = %d", warn.Refs())
	}

	m, diag, err = s.LoadModule("missing")
	if m != nil || err == nil {
		t.Fatalf("LoadModule(missing) = %v, %v", m, err)
	}
	var e *errors.Error
	if !stderrors.As(err, &e) || e.Diagnostics != "error 15300: failed to find module" {
		t.Errorf("error = %v", err)
	}
	if diag.String() != e.Diagnostics {
		t.Errorf("diagnostics blob = %q", diag.String())
	}
	diag.Release()
}

func TestLoadModuleFromSourceString(t *testing.T) {
	h := ffitest.New(t)
	sobj := newFakeSession(h)
	mobj := ffitest.NewObject[abi.ModuleVtbl](h, abi.IIDModule)

	var gotName, gotPath, gotSource string
	sobj.SetAt(unsafe.Offsetof(abi.SessionVtbl{}.LoadModuleFromSourceString), func(args ...uintptr) uintptr {
		gotName, gotPath, gotSource = ffitest.Str(args[1]), ffitest.Str(args[2]), ffitest.Str(args[3])
		return mobj.Addr()
	})
	s := wrap[Session](sobj.Ptr())
	defer s.Release()

	m, diag, err := s.LoadModuleFromSourceString("tri", "tri.slang", "float4 main() {}")
	if err != nil {
		t.Fatalf("LoadModuleFromSourceString: %v", err)
	}
	defer m.Release()
	if diag != nil {
		t.Error("diagnostics on clean load")
	}
	if gotName != "tri" || gotPath != "tri.slang" || gotSource != "float4 main() {}" {
		t.Errorf("args = %q %q %q", gotName, gotPath, gotSource)
	}
}

func TestLoadedModulesReleasesEachHandle(t *testing.T) {
	h := ffitest.New(t)
	sobj := newFakeSession(h)
	mods := []*ffitest.Object{
		ffitest.NewObject[abi.ModuleVtbl](h, abi.IIDModule),
		ffitest.NewObject[abi.ModuleVtbl](h, abi.IIDModule),
	}
	sobj.SetAt(unsafe.Offsetof(abi.SessionVtbl{}.GetLoadedModuleCount), func(...uintptr) uintptr { return 3 })
	sobj.SetAt(unsafe.Offsetof(abi.SessionVtbl{}.GetLoadedModule), func(args ...uintptr) uintptr {
		if int(args[1]) < len(mods) {
			return mods[args[1]].Addr()
		}
		return 0
	})
	s := wrap[Session](sobj.Ptr())
	defer s.Release()

	var seen []int
	for i, m := range s.LoadedModules() {
		if m.Ptr() != mods[i].Ptr() {
			t.Errorf("module %d mismatch", i)
		}
		if mods[i].Refs() != 2 {
			t.Errorf("module %d refs inside loop = %d", i, mods[i].Refs())
		}
		seen = append(seen, i)
	}
	if len(seen) != 2 {
		t.Errorf("visited %v", seen)
	}
	for i, m := range mods {
		if m.Refs() != 1 {
			t.Errorf("module %d refs after loop = %d", i, m.Refs())
		}
	}
}

func TestCreateCompositeComponentType(t *testing.T) {
	h := ffitest.New(t)
	sobj := newFakeSession(h)
	mobj := ffitest.NewObject[abi.ModuleVtbl](h, abi.IIDModule)
	eobj := ffitest.NewObject[abi.EntryPointVtbl](h, abi.IIDEntryPoint)
	cobj := ffitest.NewObject[abi.ComponentTypeVtbl](h, abi.IIDComponentType)

	sobj.SetAt(unsafe.Offsetof(abi.SessionVtbl{}.CreateCompositeComponentType), func(args ...uintptr) uintptr {
		ptrs := unsafe.Slice((*unsafe.Pointer)(ffitest.Ptr(args[1])), args[2])
		if len(ptrs) != 2 || ptrs[0] != mobj.Ptr() || ptrs[1] != eobj.Ptr() {
			t.Errorf("components = %v", ptrs)
		}
		ffitest.Out(args[3], cobj.Ptr())
		return ffitest.R(abi.ResultOK)
	})
	s := wrap[Session](sobj.Ptr())
	defer s.Release()
	m := wrap[Module](mobj.Ptr())
	defer m.Release()
	ep := wrap[EntryPoint](eobj.Ptr())
	defer ep.Release()

	c, diag, err := s.CreateCompositeComponentType(m, ep)
	if err != nil || diag != nil {
		t.Fatalf("CreateCompositeComponentType = %v, %v", diag, err)
	}
	if c.Ptr() != cobj.Ptr() || cobj.Refs() != 1 {
		t.Errorf("composite refs = %d", cobj.Refs())
	}
	c.Release()
}
