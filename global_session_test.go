package slang

import (
	"testing"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffitest"
)

func TestFindProfile(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	profiles := map[string]abi.ProfileID{"spirv_1_5": 40, "glsl_450": 12}
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.FindProfile), func(args ...uintptr) uintptr {
		return uintptr(profiles[ffitest.Str(args[1])])
	})
	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	tests := []struct {
		name string
		want abi.ProfileID
	}{
		{"spirv_1_5", 40},
		{"glsl_450", 12},
		{"sm_9_9", abi.ProfileUnknown},
	}
	for _, tt := range tests {
		if got := g.FindProfile(tt.name); got != tt.want {
			t.Errorf("FindProfile(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCheckCompileTargetSupport(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.CheckCompileTargetSupport), func(args ...uintptr) uintptr {
		if abi.CompileTarget(args[1]) == abi.TargetPTX {
			return ffitest.R(abi.ResultNotAvailable)
		}
		return ffitest.R(abi.ResultOK)
	})
	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	if err := g.CheckCompileTargetSupport(abi.TargetSPIRV); err != nil {
		t.Errorf("spirv: %v", err)
	}
	err := g.CheckCompileTargetSupport(abi.TargetPTX)
	if code, ok := errors.Code(err); !ok || code != abi.ResultNotAvailable {
		t.Errorf("ptx code = %v, %v", code, ok)
	}
}

func TestSharedLibraryLoaderIsAddRefd(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	lobj := ffitest.NewObject[abi.SharedLibraryLoaderVtbl](h, abi.IIDSharedLibraryLoader)
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.GetSharedLibraryLoader), func(...uintptr) uintptr {
		return lobj.Addr()
	})
	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	loader := g.SharedLibraryLoader()
	if loader == nil {
		t.Fatal("loader is nil")
	}
	if lobj.Refs() != 2 {
		t.Errorf("refs = %d, want 2", lobj.Refs())
	}
	loader.Release()
	if lobj.Refs() != 1 {
		t.Errorf("refs after release = %d, want 1", lobj.Refs())
	}
}

func TestAbsentPrelude(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.GetLanguagePrelude), func(args ...uintptr) uintptr {
		ffitest.Out(args[2], nil)
		return 0
	})
	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	p := g.LanguagePrelude(abi.SourceLanguageHLSL)
	if p != nil {
		t.Fatalf("prelude = %v, want nil", p)
	}
	if p.String() != "" || p.Size() != 0 {
		t.Error("nil blob not empty")
	}
}

func TestCompilerElapsedTime(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.GetCompilerElapsedTime), func(args ...uintptr) uintptr {
		*(*float64)(ffitest.Ptr(args[1])) = 1.5
		*(*float64)(ffitest.Ptr(args[2])) = 0.25
		return 0
	})
	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	total, downstream := g.CompilerElapsedTime()
	if total != 1.5 || downstream != 0.25 {
		t.Errorf("elapsed = %v, %v", total, downstream)
	}
}

func TestParseCommandLineArguments(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	aux := ffitest.NewObject[abi.UnknownVtbl](h)
	var seen []string
	gobj.SetAt(unsafe.Offsetof(abi.GlobalSessionVtbl{}.ParseCommandLineArguments), func(args ...uintptr) uintptr {
		argv := unsafe.Slice((*uintptr)(ffitest.Ptr(args[2])), int32(args[1]))
		for _, a := range argv {
			seen = append(seen, ffitest.Str(a))
		}
		desc := (*abi.SessionDesc)(ffitest.Ptr(args[3]))
		desc.TargetCount = 1
		ffitest.Out(args[4], aux.Ptr())
		return ffitest.R(abi.ResultOK)
	})
	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()

	desc, a, err := g.ParseCommandLineArguments([]string{"-target", "spirv", "-O2"})
	if err != nil {
		t.Fatalf("ParseCommandLineArguments: %v", err)
	}
	defer a.Release()

	if len(seen) != 3 || seen[0] != "-target" || seen[2] != "-O2" {
		t.Errorf("argv = %q", seen)
	}
	if desc.TargetCount != 1 || desc.StructureSize != uint32(unsafe.Sizeof(abi.SessionDesc{})) {
		t.Errorf("desc = %+v", desc)
	}
}

func TestNullOutputIsError(t *testing.T) {
	h := ffitest.New(t)
	gobj := newFakeGlobalSession(h)
	sobj := newFakeSession(h)
	ok := func(...uintptr) uintptr { return ffitest.R(abi.ResultOK) }
	for _, off := range []uintptr{
		unsafe.Offsetof(abi.GlobalSessionVtbl{}.CreateCompileRequest),
		unsafe.Offsetof(abi.GlobalSessionVtbl{}.SaveCoreModule),
		unsafe.Offsetof(abi.GlobalSessionVtbl{}.SaveBuiltinModule),
		unsafe.Offsetof(abi.GlobalSessionVtbl{}.GetSessionDescDigest),
	} {
		gobj.SetAt(off, ok)
	}
	sobj.SetAt(unsafe.Offsetof(abi.SessionVtbl{}.CreateCompileRequest), ok)

	g := wrap[GlobalSession](gobj.Ptr())
	defer g.Release()
	s := wrap[Session](sobj.Ptr())
	defer s.Release()

	desc := abi.DefaultSessionDesc()
	tests := []struct {
		name string
		call func() (bool, error)
	}{
		{"global create compile request", func() (bool, error) {
			r, err := g.CreateCompileRequest()
			return r == nil, err
		}},
		{"save core module", func() (bool, error) {
			b, err := g.SaveCoreModule(abi.ArchiveTypeUndefined)
			return b == nil, err
		}},
		{"save builtin module", func() (bool, error) {
			b, err := g.SaveBuiltinModule(abi.BuiltinModuleGLSL, abi.ArchiveTypeUndefined)
			return b == nil, err
		}},
		{"session desc digest", func() (bool, error) {
			b, err := g.SessionDescDigest(&desc)
			return b == nil, err
		}},
		{"session create compile request", func() (bool, error) {
			r, err := s.CreateCompileRequest()
			return r == nil, err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			null, err := tt.call()
			if err == nil {
				t.Fatal("expected error for null output")
			}
			if code, ok := errors.Code(err); !ok || code != abi.ResultFail {
				t.Errorf("code = %v, %v", code, ok)
			}
			if !null {
				t.Error("expected no handle")
			}
		})
	}
}
