package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"go.uber.org/zap"
	"golang.org/x/term"

	slang "github.com/wippyai/slang-go"
	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/bindgroup"
	"github.com/wippyai/slang-go/reflection"
	"github.com/wippyai/slang-go/resource"
)

// listFlag collects a repeatable string flag.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, v)
	return nil
}

type options struct {
	lib         string
	module      string
	src         string
	includes    listFlag
	defines     listFlag
	target      abi.CompileTarget
	profile     string
	entry       string
	stage       abi.Stage
	output      string
	list        bool
	json        bool
	bindings    bool
	checkWGSL   bool
	interactive bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("slangc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		opts   options
		target string
		stage  string
	)
	fs.StringVar(&opts.lib, "lib", "", "Path to the slang shared library or its directory")
	fs.StringVar(&opts.module, "module", "", "Module name to load through the search paths")
	fs.StringVar(&opts.src, "src", "", "Source file to compile")
	fs.Var(&opts.includes, "I", "Add a search path (repeatable)")
	fs.Var(&opts.defines, "D", "Define a macro NAME[=VALUE] (repeatable)")
	fs.StringVar(&target, "target", "spirv", "Code generation target")
	fs.StringVar(&opts.profile, "profile", "", "Target profile, e.g. spirv_1_5 or glsl_450")
	fs.StringVar(&opts.entry, "entry", "", "Entry point name (default: all [shader] entry points)")
	fs.StringVar(&stage, "stage", "", "Stage of -entry when it has no [shader] attribute")
	fs.StringVar(&opts.output, "o", "", "Output file, - for stdout")
	fs.BoolVar(&opts.list, "list", false, "Print reflection and exit")
	fs.BoolVar(&opts.json, "json", false, "Print reflection JSON and exit")
	fs.BoolVar(&opts.bindings, "bindings", false, "Print the WebGPU bind group layout and exit")
	fs.BoolVar(&opts.checkWGSL, "check-wgsl", false, "Compile WGSL output with naga to validate it")
	fs.BoolVar(&opts.interactive, "i", false, "Interactive reflection browser")
	fs.BoolVar(&opts.verbose, "v", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.module == "" && opts.src == "" {
		return nil, fmt.Errorf("one of -module or -src is required")
	}
	if opts.module != "" && opts.src != "" {
		return nil, fmt.Errorf("-module and -src are mutually exclusive")
	}

	t, err := abi.ParseCompileTarget(target)
	if err != nil {
		return nil, err
	}
	opts.target = t

	if stage != "" {
		if opts.entry == "" {
			return nil, fmt.Errorf("-stage requires -entry")
		}
		s, err := abi.ParseStage(stage)
		if err != nil {
			return nil, err
		}
		opts.stage = s
	}
	if opts.checkWGSL && opts.target != abi.TargetWGSL {
		return nil, fmt.Errorf("-check-wgsl requires -target wgsl")
	}
	return &opts, nil
}

// moduleName returns the name the module is loaded under.
func (o *options) moduleName() string {
	if o.module != "" {
		return o.module
	}
	base := filepath.Base(o.src)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (o *options) macros() []slang.Macro {
	out := make([]slang.Macro, 0, len(o.defines))
	for _, d := range o.defines {
		name, value, _ := strings.Cut(d, "=")
		out = append(out, slang.Macro{Name: name, Value: value})
	}
	return out
}

var targetExtensions = map[abi.CompileTarget]string{
	abi.TargetSPIRV:      ".spv",
	abi.TargetSPIRVAsm:   ".spvasm",
	abi.TargetWGSL:       ".wgsl",
	abi.TargetGLSL:       ".glsl",
	abi.TargetHLSL:       ".hlsl",
	abi.TargetMetal:      ".metal",
	abi.TargetMetalLib:   ".metallib",
	abi.TargetDXIL:       ".dxil",
	abi.TargetDXBC:       ".dxbc",
	abi.TargetCUDASource: ".cu",
	abi.TargetPTX:        ".ptx",
	abi.TargetCSource:    ".c",
	abi.TargetCPPSource:  ".cpp",
}

// outputPath returns the file the code is written to.
func (o *options) outputPath() string {
	if o.output != "" {
		return o.output
	}
	ext, ok := targetExtensions[o.target]
	if !ok {
		ext = ".out"
	}
	return o.moduleName() + ext
}

// textTarget reports whether the target produces source text.
func textTarget(t abi.CompileTarget) bool {
	switch t {
	case abi.TargetSPIRV, abi.TargetDXIL, abi.TargetDXBC, abi.TargetMetalLib,
		abi.TargetPTX, abi.TargetCUDAObjectCode, abi.TargetObjectCode,
		abi.TargetHostExecutable, abi.TargetShaderSharedLibrary, abi.TargetHostSharedLibrary:
		return false
	}
	return true
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Usage: slangc -src <file.slang> [-target spirv] [-o out.spv]")
			fmt.Fprintln(os.Stderr, "       slangc -module <name> -I <dir> -list")
			fmt.Fprintln(os.Stderr, "       slangc -src <file.slang> -i  (interactive mode)")
		}
		os.Exit(2)
	}

	logger := zap.NewNop()
	if opts.verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
	defer logger.Sync()
	slang.SetLogger(logger)
	if opts.verbose {
		defer slang.HostObjects().Subscribe(hostObjectLogger(logger))()
	}

	if opts.interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: -i needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, logger, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// hostObjectLogger traces Go objects handed to the compiler.
func hostObjectLogger(logger *zap.Logger) resource.Observer {
	return resource.ObserverFunc(func(e resource.Event) {
		logger.Debug("host object",
			zap.Stringer("event", e.Type),
			zap.Stringer("kind", e.Kind),
			zap.Uint32("handle", uint32(e.Handle)),
			zap.Uint32("refs", e.Refs))
	})
}

// program is a loaded module composed with its entry points.
type program struct {
	global  *slang.GlobalSession
	session *slang.Session
	module  *slang.Module
	entries []*slang.EntryPoint
	linked  *slang.ComponentType
	shader  *reflection.Shader
}

func (p *program) Close() {
	if p.linked != nil {
		p.linked.Release()
	}
	for _, ep := range p.entries {
		ep.Release()
	}
	if p.module != nil {
		p.module.Release()
	}
	if p.session != nil {
		p.session.Release()
	}
	if p.global != nil {
		p.global.Release()
	}
}

// load opens the library and builds a program up to reflection. The
// caller closes the program even on error.
func load(opts *options, logger *zap.Logger, diag io.Writer) (*program, error) {
	var libOpts []slang.Option
	if opts.lib != "" {
		libOpts = append(libOpts, slang.WithLibraryPath(opts.lib))
	}
	p := &program{}
	if err := slang.Open(libOpts...); err != nil {
		return p, err
	}
	if tag, err := slang.BuildTagString(); err == nil {
		logger.Debug("compiler loaded", zap.String("version", tag))
	}

	global, err := slang.NewGlobalSession(nil)
	if err != nil {
		return p, err
	}
	p.global = global

	tgt := slang.Target{Format: opts.target}
	if opts.profile != "" {
		tgt.Profile = global.FindProfile(opts.profile)
		if tgt.Profile == abi.ProfileUnknown {
			return p, fmt.Errorf("unknown profile %q", opts.profile)
		}
	}
	cfg := &slang.SessionConfig{
		Targets:     []slang.Target{tgt},
		SearchPaths: opts.includes,
		Macros:      opts.macros(),
	}
	if opts.src != "" {
		cfg.SearchPaths = append(cfg.SearchPaths, filepath.Dir(opts.src))
	}
	session, err := global.CreateSession(cfg)
	if err != nil {
		return p, err
	}
	p.session = session

	var (
		module *slang.Module
		d      *slang.Blob
	)
	if opts.src != "" {
		source, rerr := os.ReadFile(opts.src)
		if rerr != nil {
			return p, fmt.Errorf("read source: %w", rerr)
		}
		module, d, err = session.LoadModuleFromSourceString(opts.moduleName(), opts.src, string(source))
	} else {
		module, d, err = session.LoadModule(opts.module)
	}
	printDiagnostics(diag, d)
	if err != nil {
		return p, err
	}
	p.module = module
	logger.Debug("module loaded",
		zap.String("name", module.Name()),
		zap.Int("entry_points", module.DefinedEntryPointCount()))

	if opts.entry != "" {
		var ep *slang.EntryPoint
		if opts.stage != abi.StageNone {
			ep, d, err = module.FindAndCheckEntryPoint(opts.entry, opts.stage)
			printDiagnostics(diag, d)
		} else {
			ep, err = module.FindEntryPointByName(opts.entry)
		}
		if err != nil {
			return p, err
		}
		p.entries = append(p.entries, ep)
	} else {
		for ep, err := range module.DefinedEntryPoints() {
			if err != nil {
				return p, err
			}
			p.entries = append(p.entries, ep)
		}
	}

	components := []slang.Component{module}
	for _, ep := range p.entries {
		components = append(components, ep)
	}
	composite, d, err := session.CreateCompositeComponentType(components...)
	printDiagnostics(diag, d)
	if err != nil {
		return p, err
	}
	defer composite.Release()

	linked, d, err := composite.Link()
	printDiagnostics(diag, d)
	if err != nil {
		return p, err
	}
	p.linked = linked

	shader, d, err := linked.Layout(0)
	printDiagnostics(diag, d)
	if err != nil {
		return p, err
	}
	p.shader = shader
	return p, nil
}

func run(opts *options, logger *zap.Logger, stdout, stderr io.Writer) error {
	p, err := load(opts, logger, stderr)
	defer p.Close()
	if err != nil {
		return err
	}

	switch {
	case opts.json:
		data, err := p.shader.JSON()
		if err != nil {
			return err
		}
		_, err = stdout.Write(data)
		return err
	case opts.bindings:
		layout, err := bindgroup.FromShader(p.shader)
		if err != nil {
			return err
		}
		printBindings(stdout, layout)
		return nil
	case opts.list:
		printReflection(stdout, p.shader)
		return nil
	}

	code, d, err := p.linked.TargetCode(0)
	printDiagnostics(stderr, d)
	if err != nil {
		return err
	}
	defer code.Release()
	data := code.Bytes()
	logger.Debug("code generated", zap.Stringer("target", opts.target), zap.Int("size", len(data)))

	if opts.checkWGSL {
		spirv, err := naga.Compile(string(data))
		if err != nil {
			return fmt.Errorf("wgsl check: %w", err)
		}
		fmt.Fprintf(stderr, "wgsl check: ok (%d bytes of SPIR-V)\n", len(spirv))
	}

	out := opts.outputPath()
	if out == "-" {
		if f, ok := stdout.(*os.File); ok && !textTarget(opts.target) && term.IsTerminal(int(f.Fd())) {
			return fmt.Errorf("refusing to write %s binary to a terminal", opts.target)
		}
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stdout, "code length: %d\nwrote %s\n", len(data), out)
	return nil
}

// printDiagnostics writes each diagnostic line with a prefix and releases
// the blob.
func printDiagnostics(w io.Writer, d *slang.Blob) {
	defer d.Release()
	text := strings.TrimSpace(d.String())
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "diag: %s\n", strings.TrimRight(line, "\r"))
	}
}

func typeName(t *reflection.Type) string {
	if t == nil {
		return "?"
	}
	if name, err := t.FullName(); err == nil {
		return name
	}
	return t.Name()
}

func semantic(v *reflection.VariableLayout) string {
	if s, ok := v.SemanticName(); ok {
		return s
	}
	return "-"
}

func printReflection(w io.Writer, shader *reflection.Shader) {
	for n, ep := range shader.EntryPoints() {
		fmt.Fprintf(w, "ep %d %q %s\n", n, ep.Name(), ep.Stage())
		for np, param := range ep.Parameters() {
			fmt.Fprintf(w, "  param %d %q %s\n", np, typeName(param.Type()), semantic(param))
		}
		if fn := ep.Function(); fn != nil {
			rt := "-"
			if rl := ep.ResultVarLayout(); rl != nil {
				rt = semantic(rl)
			}
			fmt.Fprintf(w, "  rt %q %s\n", typeName(fn.ResultType()), rt)
		}
		if ep.Stage() == abi.StageCompute {
			size := ep.ComputeThreadGroupSize()
			fmt.Fprintf(w, "  numthreads %d %d %d\n", size[0], size[1], size[2])
		}
	}
	for n, param := range shader.Parameters() {
		fmt.Fprintf(w, "param %d %q %q %s %d %d\n", n, param.Name(), typeName(param.Type()),
			semantic(param), param.BindingIndex(), param.BindingSpace())
	}
	fmt.Fprintf(w, "global constant buffer: %d %d\n",
		shader.GlobalConstantBufferBinding(), shader.GlobalConstantBufferSize())
}

func printBindings(w io.Writer, layout *bindgroup.Layout) {
	for _, g := range layout.Groups {
		fmt.Fprintf(w, "group %d\n", g.Index)
		for _, e := range g.Entries {
			fmt.Fprintf(w, "  binding %d visibility %#x %s\n", e.Binding, uint32(e.Visibility), entryKind(e))
		}
	}
	for _, s := range layout.Skipped {
		fmt.Fprintf(w, "skipped %q group %d binding %d (%s)\n", s.Name, s.Group, s.Binding, s.Type)
	}
}

func entryKind(e gputypes.BindGroupLayoutEntry) string {
	switch {
	case e.Buffer != nil:
		return fmt.Sprintf("buffer %v min-size %d", e.Buffer.Type, e.Buffer.MinBindingSize)
	case e.Texture != nil:
		return fmt.Sprintf("texture %v %v", e.Texture.SampleType, e.Texture.ViewDimension)
	case e.Sampler != nil:
		return fmt.Sprintf("sampler %v", e.Sampler.Type)
	}
	return "unknown"
}
