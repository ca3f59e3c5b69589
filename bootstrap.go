package slang

import (
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

var (
	procCreateGlobalSession2 = ffi.NewProc("slang_createGlobalSession2")
	procGetBuildTagString    = ffi.NewProc("spGetBuildTagString")
)

// NewGlobalSession creates the root compiler object. A nil desc uses
// abi.DefaultGlobalSessionDesc. Open must have been called.
func NewGlobalSession(desc *abi.GlobalSessionDesc) (*GlobalSession, error) {
	if err := procCreateGlobalSession2.Find(); err != nil {
		return nil, err
	}
	if desc == nil {
		d := abi.DefaultGlobalSessionDesc()
		desc = &d
	}
	var out unsafe.Pointer
	r := ffi.Result(procCreateGlobalSession2.Call(
		uintptr(unsafe.Pointer(desc)), uintptr(unsafe.Pointer(&out))))
	if err := check(errors.PhaseSession, "create global session", r, nil); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nullErr(errors.PhaseSession, "create global session", nil)
	}
	debugf("global session %p created", out)
	return wrap[GlobalSession](out), nil
}

// BuildTagString returns the version tag of the loaded library.
func BuildTagString() (string, error) {
	if err := procGetBuildTagString.Find(); err != nil {
		return "", err
	}
	return goString(procGetBuildTagString.Call()), nil
}
