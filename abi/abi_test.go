package abi

import (
	"strings"
	"testing"
	"unsafe"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

func TestStructSizes(t *testing.T) {
	tests := []struct {
		name   string
		size   uintptr
		size64 uintptr
		size32 uintptr
	}{
		{"GUID", unsafe.Sizeof(GUID{}), 16, 16},
		{"GlobalSessionDesc", unsafe.Sizeof(GlobalSessionDesc{}), 80, 80},
		{"TargetDesc", unsafe.Sizeof(TargetDesc{}), 48, 36},
		{"SessionDesc", unsafe.Sizeof(SessionDesc{}), 96, 56},
		{"PreprocessorMacroDesc", unsafe.Sizeof(PreprocessorMacroDesc{}), 16, 8},
		{"CompilerOptionValue", unsafe.Sizeof(CompilerOptionValue{}), 32, 20},
		{"CompilerOptionEntry", unsafe.Sizeof(CompilerOptionEntry{}), 40, 24},
		{"SpecializationArg", unsafe.Sizeof(SpecializationArg{}), 16, 8},
		{"GenericArg", unsafe.Sizeof(GenericArg{}), 8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.size64
			if ptrSize == 4 {
				want = tt.size32
			}
			if tt.size != want {
				t.Errorf("sizeof(%s) = %d, want %d", tt.name, tt.size, want)
			}
		})
	}
}

func TestSessionDescOffsets(t *testing.T) {
	if ptrSize != 8 {
		t.Skip("offsets below are for 64-bit targets")
	}
	var d SessionDesc
	tests := []struct {
		field  string
		offset uintptr
		want   uintptr
	}{
		{"Targets", unsafe.Offsetof(d.Targets), 8},
		{"TargetCount", unsafe.Offsetof(d.TargetCount), 16},
		{"Flags", unsafe.Offsetof(d.Flags), 24},
		{"DefaultMatrixLayoutMode", unsafe.Offsetof(d.DefaultMatrixLayoutMode), 28},
		{"SearchPaths", unsafe.Offsetof(d.SearchPaths), 32},
		{"PreprocessorMacros", unsafe.Offsetof(d.PreprocessorMacros), 48},
		{"FileSystem", unsafe.Offsetof(d.FileSystem), 64},
		{"EnableEffectAnnotations", unsafe.Offsetof(d.EnableEffectAnnotations), 72},
		{"AllowGLSLSyntax", unsafe.Offsetof(d.AllowGLSLSyntax), 73},
		{"CompilerOptionEntries", unsafe.Offsetof(d.CompilerOptionEntries), 80},
		{"CompilerOptionEntryCount", unsafe.Offsetof(d.CompilerOptionEntryCount), 88},
		{"SkipSPIRVValidation", unsafe.Offsetof(d.SkipSPIRVValidation), 92},
	}
	for _, tt := range tests {
		if tt.offset != tt.want {
			t.Errorf("offsetof(SessionDesc.%s) = %d, want %d", tt.field, tt.offset, tt.want)
		}
	}
}

func slot(offset uintptr) int { return int(offset / ptrSize) }

func TestVtableSlots(t *testing.T) {
	var (
		gs  GlobalSessionVtbl
		s   SessionVtbl
		ct  ComponentTypeVtbl
		m   ModuleVtbl
		ep  EntryPointVtbl
		cr  CompileResultVtbl
		md  MetadataVtbl
		fs  FileSystemVtbl
		cl  CloneableVtbl
		ct2 ComponentType2Vtbl
		w   WriterVtbl
		p   ProfilerVtbl
	)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Unknown.Release", slot(unsafe.Offsetof(gs.Release)), 2},
		{"GlobalSession.CreateSession", slot(unsafe.Offsetof(gs.CreateSession)), 3},
		{"GlobalSession.CreateCompileRequest", slot(unsafe.Offsetof(gs.CreateCompileRequest)), 13},
		{"GlobalSession.SaveBuiltinModule", slot(unsafe.Offsetof(gs.SaveBuiltinModule)), 31},
		{"GlobalSession size", int(unsafe.Sizeof(gs) / ptrSize), 3 + 29},
		{"Session.GetGlobalSession", slot(unsafe.Offsetof(s.GetGlobalSession)), 3},
		{"Session.LoadModuleFromSourceString", slot(unsafe.Offsetof(s.LoadModuleFromSourceString)), 20},
		{"Session size", int(unsafe.Sizeof(s) / ptrSize), 3 + 20},
		{"ComponentType.GetSession", slot(unsafe.Offsetof(ct.GetSession)), 3},
		{"ComponentType.GetEntryPointMetadata", slot(unsafe.Offsetof(ct.GetEntryPointMetadata)), 16},
		{"Module.FindEntryPointByName", slot(unsafe.Offsetof(m.FindEntryPointByName)), 17},
		{"Module.Disassemble", slot(unsafe.Offsetof(m.Disassemble)), 29},
		{"EntryPoint.GetFunctionReflection", slot(unsafe.Offsetof(ep.GetFunctionReflection)), 17},
		{"CompileResult.GetItemCount", slot(unsafe.Offsetof(cr.GetItemCount)), 4},
		{"Metadata.GetDebugBuildIdentifier", slot(unsafe.Offsetof(md.GetDebugBuildIdentifier)), 5},
		{"FileSystem.LoadFile", slot(unsafe.Offsetof(fs.LoadFile)), 4},
		{"Cloneable.Clone", slot(unsafe.Offsetof(cl.Clone)), 4},
		{"ComponentType2.GetEntryPointCompileResult", slot(unsafe.Offsetof(ct2.GetEntryPointCompileResult)), 4},
		{"Writer.SetMode", slot(unsafe.Offsetof(w.SetMode)), 8},
		{"Profiler.GetEntryInvocationTimes", slot(unsafe.Offsetof(p.GetEntryInvocationTimes)), 6},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: slot %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestDefaultDescriptors(t *testing.T) {
	s := DefaultSessionDesc()
	if uintptr(s.StructureSize) != unsafe.Sizeof(s) {
		t.Errorf("SessionDesc.StructureSize = %d", s.StructureSize)
	}
	if s.Targets != nil || s.TargetCount != 0 {
		t.Error("default session should have no targets")
	}
	if s.SearchPaths != nil || s.SearchPathCount != 0 || s.PreprocessorMacros != nil || s.PreprocessorMacroCount != 0 {
		t.Error("default session should have empty pointer/count pairs")
	}
	if s.DefaultMatrixLayoutMode != MatrixLayoutRowMajor {
		t.Errorf("matrix layout = %d, want row major", s.DefaultMatrixLayoutMode)
	}

	td := DefaultTargetDesc()
	if td.StructureSize != unsafe.Sizeof(td) {
		t.Errorf("TargetDesc.StructureSize = %d", td.StructureSize)
	}
	if td.Flags != TargetFlagGenerateSPIRVDirectly || td.Format != TargetUnknown || td.Profile != ProfileUnknown {
		t.Errorf("unexpected target defaults: %+v", td)
	}

	g := DefaultGlobalSessionDesc()
	if g.StructureSize != 80 || g.APIVersion != 0 || g.MinLanguageVersion != 2025 || g.EnableGLSL {
		t.Errorf("unexpected global session defaults: %+v", g)
	}
}

func TestResult(t *testing.T) {
	tests := []struct {
		r        Result
		failed   bool
		facility int
		code     int
		str      string
	}{
		{ResultOK, false, 0, 0, "ok"},
		{Result(1), false, 0, 1, "Result(0x00000001)"},
		{ResultFail, true, FacilityWinGeneral, 0x4005, "fail"},
		{ResultNoInterface, true, FacilityWinGeneral, 0x4002, "no interface"},
		{ResultInvalidArg, true, FacilityWinAPI, 0x57, "invalid argument"},
		{ResultNotFound, true, FacilityCore, 5, "not found"},
		{Result(-7), true, 0x7fff, 0xfff9, "Result(0xfffffff9)"},
	}
	for _, tt := range tests {
		if tt.r.Failed() != tt.failed || tt.r.Succeeded() == tt.failed {
			t.Errorf("%v: failed = %v", tt.r, tt.r.Failed())
		}
		if tt.r.Facility() != tt.facility {
			t.Errorf("%v: facility = %#x, want %#x", tt.r, tt.r.Facility(), tt.facility)
		}
		if tt.r.Code() != tt.code {
			t.Errorf("%v: code = %#x, want %#x", tt.r, tt.r.Code(), tt.code)
		}
		if !strings.HasPrefix(tt.r.String(), tt.str) {
			t.Errorf("String() = %q, want prefix %q", tt.r.String(), tt.str)
		}
	}
	if fail := ResultFail; uint32(fail) != 0x80004005 {
		t.Errorf("ResultFail = %#x", uint32(fail))
	}
}

func TestGUID(t *testing.T) {
	tests := []struct {
		guid GUID
		str  string
	}{
		{IIDUnknown, "00000000-0000-0000-c000-000000000046"},
		{IIDGlobalSession, "c140b5fd-0c78-452e-ba7c-1a1e70c7f71c"},
		{IIDModule, "0c720e64-8722-4d31-8990-638a98b1c279"},
	}
	for _, tt := range tests {
		if got := tt.guid.String(); got != tt.str {
			t.Errorf("String() = %q, want %q", got, tt.str)
		}
		parsed, err := ParseGUID("{" + strings.ToUpper(tt.str) + "}")
		if err != nil {
			t.Fatalf("ParseGUID(%q): %v", tt.str, err)
		}
		if parsed != tt.guid {
			t.Errorf("ParseGUID(%q) = %v", tt.str, parsed)
		}
	}

	for _, bad := range []string{"", "1234", "c140b5fd-0c78-452e-ba7c-1a1e70c7f71", "zz40b5fd-0c78-452e-ba7c-1a1e70c7f71c"} {
		if _, err := ParseGUID(bad); err == nil {
			t.Errorf("ParseGUID(%q) should fail", bad)
		}
	}
}

func TestOpenEnums(t *testing.T) {
	if got := TypeKind(200).String(); got != "TypeKind(200)" {
		t.Errorf("unknown TypeKind = %q", got)
	}
	if got := BindingTypeMutableRawBuffer.String(); got != "mutable-raw-buffer" {
		t.Errorf("mutable raw buffer = %q", got)
	}
	if BindingTypeMutableTexture.Base() != BindingTypeTexture {
		t.Error("Base should strip the mutable flag")
	}
	if got := (ResourceShapeTexture2D | ResourceShapeArray | ResourceShapeMultisample).String(); got != "texture2d+array+ms" {
		t.Errorf("shape = %q", got)
	}
	if StagePixel != StageFragment {
		t.Error("pixel must alias fragment")
	}
	if TargetWGSL != 28 || TargetHostVM != 31 || TargetHLSL != 5 {
		t.Errorf("compile target numbering drifted: wgsl=%d hlsl=%d", TargetWGSL, TargetHLSL)
	}
	if OptionCountOfParsableOptions != 109 {
		t.Errorf("OptionCountOfParsableOptions = %d", OptionCountOfParsableOptions)
	}
}

func TestParseNames(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want CompileTarget
	}{
		{"spirv", TargetSPIRV},
		{" WGSL ", TargetWGSL},
		{"dxil", TargetDXIL},
		{"metal", TargetMetal},
	} {
		got, err := ParseCompileTarget(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseCompileTarget(%q) = %v, %v", tt.in, got, err)
		}
		if back, _ := ParseCompileTarget(got.String()); back != got {
			t.Errorf("round trip of %v failed", got)
		}
	}
	if _, err := ParseCompileTarget("nope"); err == nil {
		t.Error("unknown target should fail")
	}

	for _, tt := range []struct {
		in   string
		want Stage
	}{
		{"vertex", StageVertex},
		{"pixel", StageFragment},
		{"Compute", StageCompute},
	} {
		got, err := ParseStage(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseStage(%q) = %v, %v", tt.in, got, err)
		}
	}
	if _, err := ParseStage("tessellation"); err == nil {
		t.Error("unknown stage should fail")
	}
}

func TestGenericArg(t *testing.T) {
	if a := GenericIntArg(-1); a.bits != ^uint64(0) {
		t.Errorf("int arg bits = %#x", a.bits)
	}
	if a := GenericBoolArg(true); *(*byte)(unsafe.Pointer(&a.bits)) != 1 {
		t.Error("bool arg should set the first byte")
	}
	if a := GenericBoolArg(false); a.bits != 0 {
		t.Error("false bool arg should be zero")
	}
}
