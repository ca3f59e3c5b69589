package bindgroup

import (
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/reflection"
)

// Group is one bind group, entries ordered by binding index.
type Group struct {
	Index   uint32
	Entries []gputypes.BindGroupLayoutEntry
}

// Skipped is a binding range that has no WebGPU equivalent.
type Skipped struct {
	Name    string
	Group   uint32
	Binding uint32
	Type    abi.BindingType
}

// Layout holds the bind groups of a program, ordered by group index.
type Layout struct {
	Groups  []Group
	Skipped []Skipped
}

// Group returns the group with the given index.
func (l *Layout) Group(index uint32) (*Group, bool) {
	for i := range l.Groups {
		if l.Groups[i].Index == index {
			return &l.Groups[i], true
		}
	}
	return nil, false
}

// FromShader lays out the global parameters of shader. Every entry is
// visible to the stages of the program's entry points, or to all stages
// when it has none.
func FromShader(shader *reflection.Shader) (*Layout, error) {
	tl, ok := shader.GlobalParamsTypeLayout()
	if !ok {
		return nil, errors.New(errors.PhaseReflect, errors.KindNotAvailable).
			Op("global params layout").Build()
	}

	var proto gputypes.BindGroupLayoutEntry
	for _, ep := range shader.EntryPoints() {
		addStage(&proto, ep.Stage())
	}
	if proto.Visibility == 0 {
		proto.Visibility = gputypes.ShaderStageVertex | gputypes.ShaderStageFragment | gputypes.ShaderStageCompute
	}
	return FromTypeLayout(tl, proto), nil
}

func addStage(e *gputypes.BindGroupLayoutEntry, stage abi.Stage) {
	switch stage {
	case abi.StageVertex:
		e.Visibility |= gputypes.ShaderStageVertex
	case abi.StageFragment:
		e.Visibility |= gputypes.ShaderStageFragment
	case abi.StageCompute:
		e.Visibility |= gputypes.ShaderStageCompute
	}
}

// FromTypeLayout lays out the binding ranges of tl. proto supplies the
// fields shared by every entry, usually just Visibility.
func FromTypeLayout(tl *reflection.TypeLayout, proto gputypes.BindGroupLayoutEntry) *Layout {
	sets := map[int]reflection.DescriptorSet{}
	groups := map[uint32][]gputypes.BindGroupLayoutEntry{}
	out := &Layout{}

	for _, br := range tl.BindingRanges() {
		if br.DescriptorRangeCount == 0 {
			continue
		}
		set, ok := sets[br.DescriptorSetIndex]
		if !ok {
			set = tl.DescriptorSet(br.DescriptorSetIndex)
			sets[br.DescriptorSetIndex] = set
		}
		if br.FirstDescriptorRangeIndex < 0 || br.FirstDescriptorRangeIndex >= len(set.Ranges) {
			continue
		}
		group := uint32(set.SpaceOffset)
		binding := uint32(set.Ranges[br.FirstDescriptorRangeIndex].IndexOffset)

		entry := proto
		entry.Binding = binding
		if !fill(&entry, br) {
			out.Skipped = append(out.Skipped, Skipped{
				Name:    rangeName(br),
				Group:   group,
				Binding: binding,
				Type:    br.Type,
			})
			continue
		}
		groups[group] = append(groups[group], entry)
	}

	for index, entries := range groups {
		slices.SortFunc(entries, func(a, b gputypes.BindGroupLayoutEntry) int {
			return int(a.Binding) - int(b.Binding)
		})
		out.Groups = append(out.Groups, Group{Index: index, Entries: entries})
	}
	slices.SortFunc(out.Groups, func(a, b Group) int { return int(a.Index) - int(b.Index) })
	return out
}

func rangeName(br reflection.BindingRange) string {
	if br.LeafVariable == nil {
		return ""
	}
	return br.LeafVariable.Name()
}

// fill sets the resource part of e. It reports false for binding types
// WebGPU has no layout for.
func fill(e *gputypes.BindGroupLayoutEntry, br reflection.BindingRange) bool {
	leaf := br.LeafTypeLayout
	switch br.Type.Base() {
	case abi.BindingTypeConstantBuffer, abi.BindingTypeParameterBlock:
		e.Buffer = &gputypes.BufferBindingLayout{
			Type:           gputypes.BufferBindingTypeUniform,
			MinBindingSize: uniformSize(leaf),
		}
	case abi.BindingTypeTypedBuffer, abi.BindingTypeRawBuffer:
		typ := gputypes.BufferBindingTypeReadOnlyStorage
		if br.Type.Mutable() {
			typ = gputypes.BufferBindingTypeStorage
		}
		e.Buffer = &gputypes.BufferBindingLayout{Type: typ}
	case abi.BindingTypeTexture:
		if br.Type.Mutable() || leaf == nil {
			return false
		}
		e.Texture = &gputypes.TextureBindingLayout{
			SampleType:    sampleType(leaf),
			ViewDimension: viewDimension(leaf.ResourceShape()),
		}
	case abi.BindingTypeSampler:
		typ := gputypes.SamplerBindingTypeFiltering
		if leaf != nil && leaf.Type().Name() == "SamplerComparisonState" {
			typ = gputypes.SamplerBindingTypeComparison
		}
		e.Sampler = &gputypes.SamplerBindingLayout{Type: typ}
	default:
		return false
	}
	return true
}

func uniformSize(leaf *reflection.TypeLayout) uint64 {
	if leaf == nil {
		return 0
	}
	if elem, ok := leaf.ElementTypeLayout(); ok {
		leaf = elem
	}
	return uint64(leaf.Size(abi.CategoryUniform))
}

func sampleType(leaf *reflection.TypeLayout) gputypes.TextureSampleType {
	if leaf.ResourceShape().Has(abi.ResourceShapeShadow) {
		return gputypes.TextureSampleTypeDepth
	}
	result, ok := leaf.ResourceResultType()
	if !ok {
		return gputypes.TextureSampleTypeFloat
	}
	switch result.ScalarType() {
	case abi.ScalarTypeInt8, abi.ScalarTypeInt16, abi.ScalarTypeInt32, abi.ScalarTypeInt64:
		return gputypes.TextureSampleTypeSint
	case abi.ScalarTypeUint8, abi.ScalarTypeUint16, abi.ScalarTypeUint32, abi.ScalarTypeUint64:
		return gputypes.TextureSampleTypeUint
	}
	return gputypes.TextureSampleTypeFloat
}

func viewDimension(shape abi.ResourceShape) gputypes.TextureViewDimension {
	array := shape.Has(abi.ResourceShapeArray)
	switch shape.Base() {
	case abi.ResourceShapeTexture1D:
		return gputypes.TextureViewDimension1D
	case abi.ResourceShapeTexture3D:
		return gputypes.TextureViewDimension3D
	case abi.ResourceShapeTextureCube:
		if array {
			return gputypes.TextureViewDimensionCubeArray
		}
		return gputypes.TextureViewDimensionCube
	}
	if array {
		return gputypes.TextureViewDimension2DArray
	}
	return gputypes.TextureViewDimension2D
}
