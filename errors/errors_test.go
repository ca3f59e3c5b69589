package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/slang-go/abi"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name: "native failure",
			err: &Error{
				Phase:       PhaseCompile,
				Kind:        KindFail,
				Path:        []string{"shaders", "main"},
				Op:          "load module",
				Code:        abi.ResultFail,
				Diagnostics: "main.slang(3): error 30015: undefined identifier 'x'\n",
			},
			contains: []string{"[compile]", "fail", "shaders.main", "load module", "0x80004005", "undefined identifier"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseQuery,
				Kind:  KindNoInterface,
			},
			contains: []string{"[query]", "no_interface"},
			excludes: []string{"result", "caused by"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindNotFound,
				Detail: "open libslang.so",
				Cause:  errors.New("no such file"),
			},
			contains: []string{"[load]", "not_found", "open libslang.so", "caused by", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseHost,
		Kind:  KindInvalidInput,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not follow the cause chain")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseLink,
		Kind:  KindFail,
		Code:  abi.ResultFail,
	}

	if !err.Is(&Error{Phase: PhaseLink, Kind: KindFail}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseCompile, Kind: KindFail}) {
		t.Error("Is should not match different phase")
	}
	if !errors.Is(err, &Error{Code: abi.ResultFail}) {
		t.Error("a code-only target should match on the code")
	}
	if errors.Is(err, &Error{Code: abi.ResultNotFound}) {
		t.Error("different codes should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseCodegen, KindFail).
		Path("module", "computeMain").
		Op("get target code").
		Code(abi.ResultInternalFail).
		Diagnostics("internal error").
		Cause(cause).
		Detail("target %d", 6).
		Build()

	if err.Phase != PhaseCodegen || err.Kind != KindFail {
		t.Errorf("Phase/Kind = %v/%v", err.Phase, err.Kind)
	}
	if len(err.Path) != 2 || err.Path[1] != "computeMain" {
		t.Errorf("Path = %v", err.Path)
	}
	if err.Op != "get target code" || err.Detail != "target 6" {
		t.Errorf("Op = %q, Detail = %q", err.Op, err.Detail)
	}
	if err.Code != abi.ResultInternalFail || err.Diagnostics != "internal error" {
		t.Errorf("Code = %v, Diagnostics = %q", err.Code, err.Diagnostics)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
}

func TestFromResultAndCode(t *testing.T) {
	tests := []struct {
		code abi.Result
		kind Kind
	}{
		{abi.ResultFail, KindFail},
		{abi.ResultNotImplemented, KindNotImplemented},
		{abi.ResultNoInterface, KindNoInterface},
		{abi.ResultInvalidArg, KindInvalidArg},
		{abi.ResultOutOfMemory, KindOutOfMemory},
		{abi.ResultBufferTooSmall, KindBufferTooSmall},
		{abi.ResultNotFound, KindNotFound},
		{abi.ResultNotAvailable, KindNotAvailable},
		{abi.Result(-12345), KindFail},
	}

	for _, tt := range tests {
		err := FromResult(PhaseSession, "create session", tt.code)
		if err == nil {
			t.Fatalf("FromResult(%v) = nil", tt.code)
		}
		var e *Error
		if !errors.As(err, &e) || e.Kind != tt.kind {
			t.Errorf("FromResult(%v) kind = %v, want %v", tt.code, e.Kind, tt.kind)
		}
		wrapped := fmt.Errorf("outer: %w", err)
		if got, ok := Code(wrapped); !ok || got != tt.code {
			t.Errorf("Code(%v) = %v, %v", tt.code, got, ok)
		}
	}

	if err := FromResult(PhaseSession, "ok", abi.ResultOK); err != nil {
		t.Errorf("success should not produce an error: %v", err)
	}
	if err := FromResult(PhaseSession, "positive", abi.Result(1)); err != nil {
		t.Errorf("positive results are successes: %v", err)
	}
	if _, ok := Code(errors.New("plain")); ok {
		t.Error("plain errors carry no code")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"Result", Result(PhaseCompile, "load module", abi.ResultFail, "diag"), PhaseCompile, KindFail, "diag"},
		{"NullResult", NullResult(PhaseLink, "specialize type", ""), PhaseLink, KindFail, "specialize type"},
		{"SymbolMissing", SymbolMissing("spGetBuildTagString", nil), PhaseLoad, KindSymbolMissing, "spGetBuildTagString"},
		{"Load", Load("open library", errors.New("x")), PhaseLoad, KindNotFound, "open library"},
		{"Unsupported", Unsupported(PhaseHost, "seek"), PhaseHost, KindUnsupported, "seek"},
		{"NilPointer", NilPointer(PhaseQuery, "session"), PhaseQuery, KindNilPointer, "session is nil"},
		{"NotInitialized", NotInitialized(PhaseLoad, "library"), PhaseLoad, KindNotInitialized, "library not initialized"},
		{"NotFound", NotFound(PhaseCompile, "entry point", "main"), PhaseCompile, KindNotFound, `entry point "main"`},
		{"InvalidInput", InvalidInput(PhaseSession, "empty target list"), PhaseSession, KindInvalidInput, "empty target list"},
		{"Wrap", Wrap(PhaseHost, KindFail, errors.New("io"), "read file"), PhaseHost, KindFail, "read file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("Phase = %v, want %v", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("%q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
