package slang

import (
	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

// check turns a native result into an error, attaching diagnostics.
func check(phase errors.Phase, op string, r abi.Result, diag *Blob) error {
	if r.Succeeded() {
		return nil
	}
	return errors.Result(phase, op, r, diag.String())
}

// nullErr reports a call that returned no object without a result code.
func nullErr(phase errors.Phase, op string, diag *Blob) error {
	return errors.NullResult(phase, op, diag.String())
}

// goString copies a native string, "" for null.
func goString(r uintptr) string {
	s, _ := ffi.GoString(ffi.Ptr(r))
	return s
}

// optString copies a native string, reporting false for null.
func optString(r uintptr) (string, bool) {
	return ffi.GoString(ffi.Ptr(r))
}
