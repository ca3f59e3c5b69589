package bindgroup

import (
	"testing"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffitest"
	"github.com/wippyai/slang-go/reflection"
)

// param describes one binding range of the fake program.
type param struct {
	name     string
	typ      abi.BindingType
	space    int
	register int
	shape    abi.ResourceShape
	scalar   abi.ScalarType
	typeName string
	size     uint
	noDesc   bool
}

type fakeProgram struct {
	h      *ffitest.Harness
	root   uintptr
	params []param

	layouts map[uintptr]int // leaf type layout -> param
	types   map[uintptr]int // leaf type -> param
	results map[uintptr]int // resource result type -> param
	vars    map[uintptr]int
	elems   map[uintptr]int // element type layout -> param

	layoutOf, typeOf, resultOf, varOf, elemOf []uintptr
	sets                                      []int // descriptor set -> space
}

func record(h *ffitest.Harness) uintptr {
	b := new([16]byte)
	h.Keep(b)
	return uintptr(unsafe.Pointer(b))
}

func newFakeProgram(t *testing.T, stages []abi.Stage, params ...param) (*fakeProgram, *reflection.Shader) {
	h := ffitest.New(t)
	p := &fakeProgram{
		h:       h,
		root:    record(h),
		params:  params,
		layouts: map[uintptr]int{},
		types:   map[uintptr]int{},
		results: map[uintptr]int{},
		vars:    map[uintptr]int{},
		elems:   map[uintptr]int{},
	}
	setOf := map[int]int{}
	for i, pr := range params {
		p.layoutOf = append(p.layoutOf, record(h))
		p.typeOf = append(p.typeOf, record(h))
		p.resultOf = append(p.resultOf, record(h))
		p.varOf = append(p.varOf, record(h))
		p.elemOf = append(p.elemOf, record(h))
		p.layouts[p.layoutOf[i]] = i
		p.types[p.typeOf[i]] = i
		p.results[p.resultOf[i]] = i
		p.vars[p.varOf[i]] = i
		p.elems[p.elemOf[i]] = i
		if _, ok := setOf[pr.space]; !ok {
			setOf[pr.space] = len(p.sets)
			p.sets = append(p.sets, pr.space)
		}
	}
	// One descriptor range per parameter, grouped by space in declaration
	// order.
	setIndex := func(i int) int { return setOf[params[i].space] }
	rangesIn := func(set int) []int {
		var out []int
		for i := range params {
			if setIndex(i) == set {
				out = append(out, i)
			}
		}
		return out
	}
	firstRange := func(i int) int {
		for r, j := range rangesIn(setIndex(i)) {
			if j == i {
				return r
			}
		}
		return -1
	}

	shader := record(h)
	eps := make([]uintptr, len(stages))
	for i := range eps {
		eps[i] = record(h)
	}
	h.Symbol("spReflection_getGlobalParamsTypeLayout", func(...uintptr) uintptr { return p.root })
	h.Symbol("spReflection_getEntryPointCount", func(...uintptr) uintptr { return uintptr(len(eps)) })
	h.Symbol("spReflection_getEntryPointByIndex", func(args ...uintptr) uintptr { return eps[args[1]] })
	h.Symbol("spReflectionEntryPoint_getStage", func(args ...uintptr) uintptr {
		for i, ep := range eps {
			if ep == args[0] {
				return uintptr(stages[i])
			}
		}
		return 0
	})

	h.Symbol("spReflectionTypeLayout_getBindingRangeCount", func(...uintptr) uintptr { return uintptr(len(params)) })
	h.Symbol("spReflectionTypeLayout_getBindingRangeType", func(args ...uintptr) uintptr { return uintptr(params[args[1]].typ) })
	h.Symbol("spReflectionTypeLayout_isBindingRangeSpecializable", func(...uintptr) uintptr { return 0 })
	h.Symbol("spReflectionTypeLayout_getBindingRangeBindingCount", func(...uintptr) uintptr { return 1 })
	h.Symbol("spReflectionTypeLayout_getBindingRangeLeafTypeLayout", func(args ...uintptr) uintptr { return p.layoutOf[args[1]] })
	h.Symbol("spReflectionTypeLayout_getBindingRangeLeafVariable", func(args ...uintptr) uintptr { return p.varOf[args[1]] })
	h.Symbol("spReflectionTypeLayout_getBindingRAngeImageFormat", func(...uintptr) uintptr { return 0 })
	h.Symbol("spReflectionTypeLayout_getBindingRAngeDescriptorSetIndex", func(args ...uintptr) uintptr {
		return uintptr(setIndex(int(args[1])))
	})
	h.Symbol("spReflectionTypeLayout_getBindingRangeFirstDescriptorRangeIndex", func(args ...uintptr) uintptr {
		return uintptr(firstRange(int(args[1])))
	})
	h.Symbol("spReflectionTypeLayout_getBindingRangeDescriptorRangeCount", func(args ...uintptr) uintptr {
		if params[args[1]].noDesc {
			return 0
		}
		return 1
	})

	h.Symbol("spReflectionTypeLayout_getDescriptorSetCount", func(...uintptr) uintptr { return uintptr(len(p.sets)) })
	h.Symbol("spReflectionTypeLayout_getDescriptorSetSpaceOffset", func(args ...uintptr) uintptr { return uintptr(p.sets[args[1]]) })
	h.Symbol("spReflectionTypeLayout_getDescriptorSetDescriptorRangeCount", func(args ...uintptr) uintptr {
		return uintptr(len(rangesIn(int(args[1]))))
	})
	h.Symbol("spReflectionTypeLayout_getDescriptorSetDescriptorRangeIndexOffset", func(args ...uintptr) uintptr {
		return uintptr(params[rangesIn(int(args[1]))[args[2]]].register)
	})
	h.Symbol("spReflectionTypeLayout_getDescriptorSetDescriptorRangeDescriptorCount", func(...uintptr) uintptr { return 1 })
	h.Symbol("spReflectionTypeLayout_getDescriptorSetDescriptorRangeType", func(args ...uintptr) uintptr {
		return uintptr(params[rangesIn(int(args[1]))[args[2]]].typ)
	})
	h.Symbol("spReflectionTypeLayout_getDescriptorSetDescriptorRangeCategory", func(...uintptr) uintptr {
		return uintptr(abi.CategoryDescriptorTableSlot)
	})

	h.Symbol("spReflectionTypeLayout_GetType", func(args ...uintptr) uintptr { return p.typeOf[p.layouts[args[0]]] })
	h.Symbol("spReflectionTypeLayout_GetElementTypeLayout", func(args ...uintptr) uintptr { return p.elemOf[p.layouts[args[0]]] })
	h.Symbol("spReflectionTypeLayout_GetSize", func(args ...uintptr) uintptr {
		if abi.ParameterCategory(args[1]) != abi.CategoryUniform {
			return 0
		}
		return uintptr(params[p.elems[args[0]]].size)
	})
	h.Symbol("spReflectionType_GetResourceShape", func(args ...uintptr) uintptr { return uintptr(params[p.types[args[0]]].shape) })
	h.Symbol("spReflectionType_GetResourceResultType", func(args ...uintptr) uintptr { return p.resultOf[p.types[args[0]]] })
	h.Symbol("spReflectionType_GetScalarType", func(args ...uintptr) uintptr { return uintptr(params[p.results[args[0]]].scalar) })
	h.Symbol("spReflectionType_GetName", func(args ...uintptr) uintptr { return h.CString(params[p.types[args[0]]].typeName) })
	h.Symbol("spReflectionVariable_GetName", func(args ...uintptr) uintptr { return h.CString(params[p.vars[args[0]]].name) })

	return p, (*reflection.Shader)(ffitest.Ptr(shader))
}

func TestFromShader(t *testing.T) {
	_, shader := newFakeProgram(t, []abi.Stage{abi.StageVertex, abi.StageFragment},
		param{name: "globals", typ: abi.BindingTypeConstantBuffer, space: 0, register: 0, size: 64},
		param{name: "albedo", typ: abi.BindingTypeTexture, space: 1, register: 1, shape: abi.ResourceShapeTexture2D, scalar: abi.ScalarTypeFloat32},
		param{name: "linear", typ: abi.BindingTypeSampler, space: 1, register: 0, typeName: "SamplerState"},
		param{name: "lights", typ: abi.BindingTypeRawBuffer, space: 0, register: 2},
		param{name: "counters", typ: abi.BindingTypeMutableRawBuffer, space: 0, register: 1},
	)

	layout, err := FromShader(shader)
	if err != nil {
		t.Fatalf("FromShader: %v", err)
	}
	if len(layout.Skipped) != 0 {
		t.Errorf("skipped = %+v", layout.Skipped)
	}
	if len(layout.Groups) != 2 || layout.Groups[0].Index != 0 || layout.Groups[1].Index != 1 {
		t.Fatalf("groups = %+v", layout.Groups)
	}

	g0 := layout.Groups[0].Entries
	if len(g0) != 3 {
		t.Fatalf("group 0 has %d entries", len(g0))
	}
	for i, e := range g0 {
		if e.Binding != uint32(i) {
			t.Errorf("group 0 entry %d binding = %d", i, e.Binding)
		}
		if e.Visibility != gputypes.ShaderStageVertex|gputypes.ShaderStageFragment {
			t.Errorf("group 0 entry %d visibility = %v", i, e.Visibility)
		}
	}
	if g0[0].Buffer == nil || g0[0].Buffer.Type != gputypes.BufferBindingTypeUniform || g0[0].Buffer.MinBindingSize != 64 {
		t.Errorf("uniform entry = %+v", g0[0])
	}
	if g0[1].Buffer == nil || g0[1].Buffer.Type != gputypes.BufferBindingTypeStorage {
		t.Errorf("mutable buffer entry = %+v", g0[1])
	}
	if g0[2].Buffer == nil || g0[2].Buffer.Type != gputypes.BufferBindingTypeReadOnlyStorage {
		t.Errorf("read-only buffer entry = %+v", g0[2])
	}

	g1, ok := layout.Group(1)
	if !ok || len(g1.Entries) != 2 {
		t.Fatalf("group 1 = %+v", g1)
	}
	if s := g1.Entries[0].Sampler; s == nil || s.Type != gputypes.SamplerBindingTypeFiltering {
		t.Errorf("sampler entry = %+v", g1.Entries[0])
	}
	tex := g1.Entries[1].Texture
	if tex == nil || tex.SampleType != gputypes.TextureSampleTypeFloat || tex.ViewDimension != gputypes.TextureViewDimension2D {
		t.Errorf("texture entry = %+v", g1.Entries[1])
	}
}

func TestFromShaderWithoutEntryPoints(t *testing.T) {
	_, shader := newFakeProgram(t, nil,
		param{name: "data", typ: abi.BindingTypeMutableTypedBuffer},
	)
	layout, err := FromShader(shader)
	if err != nil {
		t.Fatalf("FromShader: %v", err)
	}
	want := gputypes.ShaderStageVertex | gputypes.ShaderStageFragment | gputypes.ShaderStageCompute
	if got := layout.Groups[0].Entries[0].Visibility; got != want {
		t.Errorf("visibility = %v, want %v", got, want)
	}
}

func TestSkippedRanges(t *testing.T) {
	_, shader := newFakeProgram(t, []abi.Stage{abi.StageCompute},
		param{name: "image", typ: abi.BindingTypeMutableTexture, space: 0, register: 0, shape: abi.ResourceShapeTexture2D},
		param{name: "scene", typ: abi.BindingTypeRayTracingAccelerationStructure, space: 0, register: 1},
		param{name: "inline", typ: abi.BindingTypeExistentialValue, noDesc: true},
		param{name: "out", typ: abi.BindingTypeMutableRawBuffer, space: 0, register: 2},
	)

	layout, err := FromShader(shader)
	if err != nil {
		t.Fatalf("FromShader: %v", err)
	}
	if len(layout.Skipped) != 2 {
		t.Fatalf("skipped = %+v", layout.Skipped)
	}
	if s := layout.Skipped[0]; s.Name != "image" || s.Binding != 0 || s.Type != abi.BindingTypeMutableTexture {
		t.Errorf("skipped[0] = %+v", s)
	}
	if s := layout.Skipped[1]; s.Name != "scene" || s.Binding != 1 {
		t.Errorf("skipped[1] = %+v", s)
	}
	if len(layout.Groups) != 1 || len(layout.Groups[0].Entries) != 1 || layout.Groups[0].Entries[0].Binding != 2 {
		t.Errorf("groups = %+v", layout.Groups)
	}
	if layout.Groups[0].Entries[0].Visibility != gputypes.ShaderStageCompute {
		t.Error("compute visibility not set")
	}
}

func TestTextureMapping(t *testing.T) {
	tests := []struct {
		name   string
		shape  abi.ResourceShape
		scalar abi.ScalarType
		dim    gputypes.TextureViewDimension
		sample gputypes.TextureSampleType
	}{
		{"1d", abi.ResourceShapeTexture1D, abi.ScalarTypeFloat32, gputypes.TextureViewDimension1D, gputypes.TextureSampleTypeFloat},
		{"3d uint", abi.ResourceShapeTexture3D, abi.ScalarTypeUint32, gputypes.TextureViewDimension3D, gputypes.TextureSampleTypeUint},
		{"2d array int", abi.ResourceShapeTexture2D | abi.ResourceShapeArray, abi.ScalarTypeInt32, gputypes.TextureViewDimension2DArray, gputypes.TextureSampleTypeSint},
		{"cube", abi.ResourceShapeTextureCube, abi.ScalarTypeFloat16, gputypes.TextureViewDimensionCube, gputypes.TextureSampleTypeFloat},
		{"cube array", abi.ResourceShapeTextureCube | abi.ResourceShapeArray, abi.ScalarTypeFloat32, gputypes.TextureViewDimensionCubeArray, gputypes.TextureSampleTypeFloat},
		{"shadow", abi.ResourceShapeTexture2D | abi.ResourceShapeShadow, abi.ScalarTypeFloat32, gputypes.TextureViewDimension2D, gputypes.TextureSampleTypeDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, shader := newFakeProgram(t, []abi.Stage{abi.StageFragment},
				param{name: "tex", typ: abi.BindingTypeTexture, shape: tt.shape, scalar: tt.scalar},
			)
			layout, err := FromShader(shader)
			if err != nil {
				t.Fatalf("FromShader: %v", err)
			}
			tex := layout.Groups[0].Entries[0].Texture
			if tex == nil {
				t.Fatal("no texture layout")
			}
			if tex.ViewDimension != tt.dim || tex.SampleType != tt.sample {
				t.Errorf("texture = %+v, want dim %v sample %v", tex, tt.dim, tt.sample)
			}
		})
	}
}

func TestComparisonSampler(t *testing.T) {
	_, shader := newFakeProgram(t, []abi.Stage{abi.StageFragment},
		param{name: "shadowSampler", typ: abi.BindingTypeSampler, typeName: "SamplerComparisonState"},
	)
	layout, err := FromShader(shader)
	if err != nil {
		t.Fatalf("FromShader: %v", err)
	}
	if s := layout.Groups[0].Entries[0].Sampler; s == nil || s.Type != gputypes.SamplerBindingTypeComparison {
		t.Errorf("sampler = %+v", s)
	}
}

func TestNoGlobalLayout(t *testing.T) {
	h := ffitest.New(t)
	h.Symbol("spReflection_getGlobalParamsTypeLayout", func(...uintptr) uintptr { return 0 })
	shader := (*reflection.Shader)(ffitest.Ptr(record(h)))

	if _, err := FromShader(shader); err == nil {
		t.Error("FromShader succeeded without a layout")
	}
}
