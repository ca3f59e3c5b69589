package slang

import (
	"io/fs"
	"runtime"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Target is one code generation target of a session.
type Target struct {
	Format                      abi.CompileTarget
	Profile                     abi.ProfileID
	Flags                       abi.TargetFlags
	FloatingPointMode           abi.FloatingPointMode
	LineDirectiveMode           abi.LineDirectiveMode
	ForceGLSLScalarBufferLayout bool
	Options                     []CompilerOption
}

// Macro is a preprocessor definition.
type Macro struct {
	Name  string
	Value string
}

// SessionConfig describes a session in Go terms. The zero value is a
// session without targets, row-major by default.
type SessionConfig struct {
	Targets                 []Target
	Flags                   abi.SessionFlags
	DefaultMatrixLayoutMode abi.MatrixLayoutMode
	SearchPaths             []string
	Macros                  []Macro
	// FileSystem, when set, replaces the compiler's access to the OS file
	// system for module and include lookups.
	FileSystem              fs.FS
	EnableEffectAnnotations bool
	AllowGLSLSyntax         bool
	SkipSPIRVValidation     bool
	Options                 []CompilerOption
}

// CompilerOption is one compiler option entry.
type CompilerOption struct {
	Name    abi.CompilerOptionName
	Kind    abi.CompilerOptionValueKind
	Int0    int32
	Int1    int32
	String0 string
	String1 string
}

// IntOption sets an integer-valued option.
func IntOption(name abi.CompilerOptionName, v int32) CompilerOption {
	return CompilerOption{Name: name, Kind: abi.CompilerOptionValueInt, Int0: v}
}

// BoolOption sets a switch.
func BoolOption(name abi.CompilerOptionName, v bool) CompilerOption {
	var i int32
	if v {
		i = 1
	}
	return IntOption(name, i)
}

// StringOption sets a string-valued option.
func StringOption(name abi.CompilerOptionName, s string) CompilerOption {
	return CompilerOption{Name: name, Kind: abi.CompilerOptionValueString, String0: s}
}

// MacroOption defines a preprocessor macro through the option list.
func MacroOption(name, value string) CompilerOption {
	return CompilerOption{
		Name:    abi.OptionMacroDefine,
		Kind:    abi.CompilerOptionValueString,
		String0: name,
		String1: value,
	}
}

// pinnedString returns a NUL-terminated pinned copy of s.
func pinnedString(pin *runtime.Pinner, s string) *byte {
	p := ffi.CString(s)
	pin.Pin(p)
	return p
}

// pinnedSlice pins the backing array of s and returns its first element,
// nil for an empty slice.
func pinnedSlice[T any](pin *runtime.Pinner, s []T) *T {
	if len(s) == 0 {
		return nil
	}
	pin.Pin(&s[0])
	return &s[0]
}

func marshalOptions(pin *runtime.Pinner, opts []CompilerOption) (*abi.CompilerOptionEntry, uint32) {
	if len(opts) == 0 {
		return nil, 0
	}
	entries := make([]abi.CompilerOptionEntry, len(opts))
	for i, o := range opts {
		e := abi.CompilerOptionEntry{Name: o.Name}
		e.Value.Kind = o.Kind
		e.Value.IntValue0 = o.Int0
		e.Value.IntValue1 = o.Int1
		if o.Kind == abi.CompilerOptionValueString || o.String0 != "" {
			e.Value.StringValue0 = pinnedString(pin, o.String0)
		}
		if o.String1 != "" {
			e.Value.StringValue1 = pinnedString(pin, o.String1)
		}
		entries[i] = e
	}
	return pinnedSlice(pin, entries), uint32(len(entries))
}

// sessionDesc lowers c into a native description. Every Go pointer it
// contains is pinned in pin, which the caller unpins after the call. fsObj
// is the host file system created for c.FileSystem, or nil.
func (c *SessionConfig) sessionDesc(pin *runtime.Pinner) (desc abi.SessionDesc, fsObj *FileSystem) {
	desc = abi.DefaultSessionDesc()
	if c == nil {
		return desc, nil
	}

	desc.Flags = c.Flags
	if c.DefaultMatrixLayoutMode != abi.MatrixLayoutUnknown {
		desc.DefaultMatrixLayoutMode = c.DefaultMatrixLayoutMode
	}
	desc.EnableEffectAnnotations = c.EnableEffectAnnotations
	desc.AllowGLSLSyntax = c.AllowGLSLSyntax
	desc.SkipSPIRVValidation = c.SkipSPIRVValidation

	if len(c.Targets) > 0 {
		targets := make([]abi.TargetDesc, len(c.Targets))
		for i, t := range c.Targets {
			td := abi.DefaultTargetDesc()
			td.Format = t.Format
			td.Profile = t.Profile
			if t.Flags != 0 {
				td.Flags = t.Flags
			}
			td.FloatingPointMode = t.FloatingPointMode
			td.LineDirectiveMode = t.LineDirectiveMode
			td.ForceGLSLScalarBufferLayout = t.ForceGLSLScalarBufferLayout
			td.CompilerOptionEntries, td.CompilerOptionEntryCount = marshalOptions(pin, t.Options)
			targets[i] = td
		}
		desc.Targets = pinnedSlice(pin, targets)
		desc.TargetCount = len(targets)
	}

	if len(c.SearchPaths) > 0 {
		paths := make([]*byte, len(c.SearchPaths))
		for i, p := range c.SearchPaths {
			paths[i] = pinnedString(pin, p)
		}
		desc.SearchPaths = pinnedSlice(pin, paths)
		desc.SearchPathCount = len(paths)
	}

	if len(c.Macros) > 0 {
		macros := make([]abi.PreprocessorMacroDesc, len(c.Macros))
		for i, m := range c.Macros {
			macros[i] = abi.PreprocessorMacroDesc{
				Name:  pinnedString(pin, m.Name),
				Value: pinnedString(pin, m.Value),
			}
		}
		desc.PreprocessorMacros = pinnedSlice(pin, macros)
		desc.PreprocessorMacroCount = len(macros)
	}

	desc.CompilerOptionEntries, desc.CompilerOptionEntryCount = marshalOptions(pin, c.Options)

	if c.FileSystem != nil {
		fsObj = NewFileSystem(c.FileSystem)
		desc.FileSystem = fsObj.Ptr()
		pin.Pin((*hostObject)(desc.FileSystem))
	}
	return desc, fsObj
}
