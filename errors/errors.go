package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/wippyai/slang-go/abi"
)

// Phase indicates which stage of the compiler pipeline failed
type Phase string

const (
	PhaseLoad    Phase = "load"    // library loading and symbol resolution
	PhaseSession Phase = "session" // global session and session creation
	PhaseCompile Phase = "compile" // module loading and front end
	PhaseLink    Phase = "link"    // composition, specialization and linking
	PhaseReflect Phase = "reflect" // reflection queries
	PhaseCodegen Phase = "codegen" // target and entry point code
	PhaseQuery   Phase = "query"   // interface queries and casts
	PhaseHost    Phase = "host"    // Go objects handed to the compiler
)

// Kind categorizes the error. For native failures it is derived from the
// result code and only used for display.
type Kind string

const (
	KindFail           Kind = "fail"
	KindNotImplemented Kind = "not_implemented"
	KindNoInterface    Kind = "no_interface"
	KindInvalidArg     Kind = "invalid_arg"
	KindOutOfMemory    Kind = "out_of_memory"
	KindBufferTooSmall Kind = "buffer_too_small"
	KindNotFound       Kind = "not_found"
	KindNotAvailable   Kind = "not_available"
	KindUnsupported    Kind = "unsupported"
	KindInvalidInput   Kind = "invalid_input"
	KindNilPointer     Kind = "nil_pointer"
	KindNotInitialized Kind = "not_initialized"
	KindSymbolMissing  Kind = "symbol_missing"
)

// Error is the structured error type returned by every package of the module
type Error struct {
	Cause       error
	Phase       Phase
	Kind        Kind
	Op          string
	Detail      string
	Diagnostics string
	Path        []string
	Code        abi.Result
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Code != abi.ResultOK {
		fmt.Fprintf(&b, " (result 0x%08x)", uint32(e.Code))
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	if d := strings.TrimSpace(e.Diagnostics); d != "" {
		b.WriteByte('\n')
		b.WriteString(d)
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target carrying a code
// matches on the code alone; otherwise Phase and Kind must both match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Code != abi.ResultOK {
		return e.Code == t.Code
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the object path, e.g. module and entry point names
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Op sets the failing operation name
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Code sets the native result code
func (b *Builder) Code(code abi.Result) *Builder {
	b.err.Code = code
	return b
}

// Diagnostics attaches compiler diagnostics text
func (b *Builder) Diagnostics(text string) *Builder {
	b.err.Diagnostics = text
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// KindOf maps a result code to a display kind.
func KindOf(code abi.Result) Kind {
	switch code {
	case abi.ResultNotImplemented:
		return KindNotImplemented
	case abi.ResultNoInterface:
		return KindNoInterface
	case abi.ResultInvalidArg, abi.ResultInvalidHandle:
		return KindInvalidArg
	case abi.ResultOutOfMemory:
		return KindOutOfMemory
	case abi.ResultBufferTooSmall:
		return KindBufferTooSmall
	case abi.ResultNotFound, abi.ResultCannotOpen:
		return KindNotFound
	case abi.ResultNotAvailable:
		return KindNotAvailable
	case abi.ResultUninitialized:
		return KindNotInitialized
	}
	return KindFail
}

// FromResult returns nil for a succeeding code and an *Error carrying the
// code verbatim otherwise.
func FromResult(phase Phase, op string, code abi.Result) error {
	if code.Succeeded() {
		return nil
	}
	return &Error{Phase: phase, Kind: KindOf(code), Op: op, Code: code}
}

// Code extracts the native result code from err. It reports false when err
// does not wrap an *Error with a code.
func Code(err error) (abi.Result, bool) {
	var e *Error
	if stderrors.As(err, &e) && e.Code != abi.ResultOK {
		return e.Code, true
	}
	return abi.ResultOK, false
}

// Convenience constructors for common error patterns

// Result creates an error for a failing native call with optional diagnostics
func Result(phase Phase, op string, code abi.Result, diagnostics string) *Error {
	return &Error{
		Phase:       phase,
		Kind:        KindOf(code),
		Op:          op,
		Code:        code,
		Diagnostics: diagnostics,
	}
}

// NullResult creates an error for a native call that signals failure only
// by returning a null object.
func NullResult(phase Phase, op string, diagnostics string) *Error {
	return &Error{
		Phase:       phase,
		Kind:        KindFail,
		Op:          op,
		Code:        abi.ResultFail,
		Diagnostics: diagnostics,
	}
}

// SymbolMissing creates an error for an unresolved library export
func SymbolMissing(name string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindSymbolMissing,
		Detail: fmt.Sprintf("symbol %q not found", name),
		Cause:  cause,
	}
}

// Load creates a library loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindNotFound,
		Detail: detail,
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NilPointer creates an error for a call on a released or empty handle
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: fmt.Sprintf("%s is nil or released", what),
	}
}

// NotInitialized creates a not-initialized error
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
