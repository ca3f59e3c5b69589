// Package errors provides structured error types for the slang-go module.
//
// Errors are categorized by Phase (which stage of the pipeline failed) and
// Kind (error category). Failures reported by the compiler keep their
// result code verbatim in Error.Code; the Kind is derived from that code for
// display and never replaces it.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseCodegen, errors.KindFail).
//		Path("shader", "computeMain").
//		Op("get entry point code").
//		Code(code).
//		Diagnostics(diag.String()).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Result(errors.PhaseCompile, "load module", code, diag)
//	err := errors.NotFound(errors.PhaseCompile, "entry point", "main")
//
// The result code can be recovered from any wrapped error:
//
//	if code, ok := errors.Code(err); ok && code == abi.ResultNotFound { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
