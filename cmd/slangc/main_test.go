package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gputypes"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	slang "github.com/wippyai/slang-go"
	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffitest"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
		check   func(t *testing.T, o *options)
	}{
		{
			name: "defaults",
			args: []string{"-src", "shaders/blit.slang"},
			check: func(t *testing.T, o *options) {
				if o.target != abi.TargetSPIRV {
					t.Errorf("target = %v", o.target)
				}
				if o.moduleName() != "blit" {
					t.Errorf("module name = %q", o.moduleName())
				}
				if o.outputPath() != "blit.spv" {
					t.Errorf("output = %q", o.outputPath())
				}
			},
		},
		{
			name: "repeated flags",
			args: []string{"-module", "lighting", "-I", "a", "-I", "b", "-D", "FAST", "-D", "N=4", "-target", "WGSL"},
			check: func(t *testing.T, o *options) {
				if len(o.includes) != 2 || o.includes[1] != "b" {
					t.Errorf("includes = %v", o.includes)
				}
				macros := o.macros()
				if len(macros) != 2 || macros[0] != (slang.Macro{Name: "FAST"}) || macros[1] != (slang.Macro{Name: "N", Value: "4"}) {
					t.Errorf("macros = %+v", macros)
				}
				if o.outputPath() != "lighting.wgsl" {
					t.Errorf("output = %q", o.outputPath())
				}
			},
		},
		{
			name: "entry with stage",
			args: []string{"-src", "x.slang", "-entry", "main", "-stage", "pixel", "-o", "-"},
			check: func(t *testing.T, o *options) {
				if o.stage != abi.StageFragment || o.entry != "main" || o.outputPath() != "-" {
					t.Errorf("options = %+v", o)
				}
			},
		},
		{name: "no input", args: nil, wantErr: "required"},
		{name: "both inputs", args: []string{"-src", "a.slang", "-module", "a"}, wantErr: "mutually exclusive"},
		{name: "bad target", args: []string{"-src", "a.slang", "-target", "vhdl"}, wantErr: "unknown compile target"},
		{name: "stage without entry", args: []string{"-src", "a.slang", "-stage", "vertex"}, wantErr: "requires -entry"},
		{name: "bad stage", args: []string{"-src", "a.slang", "-entry", "m", "-stage", "tessellation"}, wantErr: "unknown stage"},
		{name: "check needs wgsl", args: []string{"-src", "a.slang", "-check-wgsl"}, wantErr: "requires -target wgsl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := parseFlags(tt.args, io.Discard)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			tt.check(t, o)
		})
	}
}

func TestOutputPathUnknownTarget(t *testing.T) {
	o := &options{module: "m", target: abi.TargetHostVM}
	if got := o.outputPath(); got != "m.out" {
		t.Errorf("outputPath = %q", got)
	}
}

func TestTextTarget(t *testing.T) {
	tests := []struct {
		target abi.CompileTarget
		want   bool
	}{
		{abi.TargetSPIRV, false},
		{abi.TargetSPIRVAsm, true},
		{abi.TargetWGSL, true},
		{abi.TargetDXIL, false},
		{abi.TargetHLSL, true},
	}
	for _, tt := range tests {
		if got := textTarget(tt.target); got != tt.want {
			t.Errorf("textTarget(%v) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestPrintDiagnostics(t *testing.T) {
	ffitest.New(t)

	var buf bytes.Buffer
	printDiagnostics(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("nil blob printed %q", buf.String())
	}

	base := slang.HostObjects().Len()
	d := slang.NewStringBlob("a.slang(1): warning 1: x\r\na.slang(2): error 2: y\n")
	printDiagnostics(&buf, d)
	want := "diag: a.slang(1): warning 1: x\ndiag: a.slang(2): error 2: y\n"
	if buf.String() != want {
		t.Errorf("printed %q, want %q", buf.String(), want)
	}
	if n := slang.HostObjects().Len(); n != base {
		t.Errorf("blob not released: %d host objects, want %d", n, base)
	}
}

func TestEntryKind(t *testing.T) {
	tests := []struct {
		entry gputypes.BindGroupLayoutEntry
		want  string
	}{
		{gputypes.BindGroupLayoutEntry{Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform, MinBindingSize: 16}}, "buffer "},
		{gputypes.BindGroupLayoutEntry{Texture: &gputypes.TextureBindingLayout{}}, "texture "},
		{gputypes.BindGroupLayoutEntry{Sampler: &gputypes.SamplerBindingLayout{}}, "sampler "},
		{gputypes.BindGroupLayoutEntry{}, "unknown"},
	}
	for _, tt := range tests {
		if got := entryKind(tt.entry); !strings.HasPrefix(got, tt.want) {
			t.Errorf("entryKind = %q, want prefix %q", got, tt.want)
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedBrowser() *browserModel {
	m := newBrowserModel(&options{module: "lighting", target: abi.TargetWGSL})
	m.Update(loadedMsg{prog: &program{}, items: []browseItem{
		{kind: itemEntryPoint, name: "vsMain", summary: "vertex", detail: "stage: vertex\n"},
		{kind: itemEntryPoint, name: "fsMain", summary: "fragment", detail: "stage: fragment\n"},
		{kind: itemParameter, name: "albedo", summary: "Texture2D<float4>", detail: "binding: 1 space 0\n"},
	}})
	return m
}

func TestBrowserNavigation(t *testing.T) {
	m := loadedBrowser()
	if len(m.visible) != 3 {
		t.Fatalf("visible = %v", m.visible)
	}

	m.Update(key("down"))
	m.Update(key("down"))
	m.Update(key("down"))
	if m.selected != 2 {
		t.Errorf("selected = %d, want 2", m.selected)
	}

	m.Update(key("enter"))
	if m.state != stateDetail {
		t.Fatalf("state = %v, want detail", m.state)
	}
	if v := m.View(); !strings.Contains(v, "binding: 1 space 0") {
		t.Errorf("detail view missing item detail:\n%s", v)
	}
	m.Update(key("esc"))
	if m.state != stateList {
		t.Errorf("state = %v, want list", m.state)
	}
}

func TestBrowserFilter(t *testing.T) {
	m := loadedBrowser()
	m.selected = 2

	m.Update(key("/"))
	if m.state != stateFilter {
		t.Fatalf("state = %v, want filter", m.state)
	}
	m.Update(key("main"))
	if len(m.visible) != 2 {
		t.Errorf("visible = %v, want the two entry points", m.visible)
	}
	if m.selected != 1 {
		t.Errorf("selected = %d, want clamp to 1", m.selected)
	}
	m.Update(key("enter"))
	if m.state != stateList {
		t.Errorf("state = %v, want list", m.state)
	}
	if v := m.View(); strings.Contains(v, "albedo") {
		t.Errorf("filtered view shows albedo:\n%s", v)
	}
}

func TestBrowserLoadError(t *testing.T) {
	m := newBrowserModel(&options{module: "broken"})
	m.Update(loadedMsg{err: io.ErrUnexpectedEOF})
	if v := m.View(); !strings.Contains(v, "unexpected EOF") {
		t.Errorf("view = %q", v)
	}
}

func TestHostObjectLogger(t *testing.T) {
	ffitest.New(t)
	core, logs := observer.New(zap.DebugLevel)
	unsubscribe := slang.HostObjects().Subscribe(hostObjectLogger(zap.New(core)))
	defer unsubscribe()

	b := slang.NewBlob([]byte("x"))
	b.Release()

	var events []string
	for _, entry := range logs.All() {
		events = append(events, entry.ContextMap()["event"].(string))
	}
	if len(events) < 2 || events[0] != "created" || events[len(events)-1] != "dropped" {
		t.Errorf("events = %v", events)
	}
}
