package abi

import "fmt"

// Int is SlangInt: 64-bit on 64-bit targets, 32-bit otherwise.
// Go's int already follows pointer width on every supported platform.
type Int = int

// UInt is SlangUInt.
type UInt = uint

// Bool is the one-byte C bool used inside transfer structs.
type Bool = bool

// Result is SlangResult. Negative values are failures; zero and positive
// values are successes, possibly carrying extra information.
type Result int32

const errorBit = -0x80000000

// Facilities encoded in bits 16..30 of a failing Result.
const (
	FacilityWinGeneral   = 0
	FacilityWinInterface = 4
	FacilityWinAPI       = 7
	FacilityBase         = 0x200
	FacilityCore         = FacilityBase + 1
	FacilityInternal     = FacilityBase + 2
)

const (
	ResultOK             Result = 0
	ResultFail           Result = errorBit | FacilityWinGeneral<<16 | 0x4005
	ResultNotImplemented Result = errorBit | FacilityWinGeneral<<16 | 0x4001
	ResultNoInterface    Result = errorBit | FacilityWinGeneral<<16 | 0x4002
	ResultAbort          Result = errorBit | FacilityWinGeneral<<16 | 0x4004
	ResultInvalidHandle  Result = errorBit | FacilityWinAPI<<16 | 0x6
	ResultInvalidArg     Result = errorBit | FacilityWinAPI<<16 | 0x57
	ResultOutOfMemory    Result = errorBit | FacilityWinAPI<<16 | 0xe
	ResultBufferTooSmall Result = errorBit | FacilityCore<<16 | 1
	ResultUninitialized  Result = errorBit | FacilityCore<<16 | 2
	ResultPending        Result = errorBit | FacilityCore<<16 | 3
	ResultCannotOpen     Result = errorBit | FacilityCore<<16 | 4
	ResultNotFound       Result = errorBit | FacilityCore<<16 | 5
	ResultInternalFail   Result = errorBit | FacilityCore<<16 | 6
	ResultNotAvailable   Result = errorBit | FacilityCore<<16 | 7
	ResultTimeOut        Result = errorBit | FacilityCore<<16 | 8
)

// Failed reports whether r signals failure.
func (r Result) Failed() bool { return r < 0 }

// Succeeded reports whether r signals success.
func (r Result) Succeeded() bool { return r >= 0 }

// Facility returns the facility bits of r.
func (r Result) Facility() int { return int(uint32(r)>>16) & 0x7fff }

// Code returns the low 16 bits of r.
func (r Result) Code() int { return int(uint32(r) & 0xffff) }

var resultNames = map[Result]string{
	ResultOK:             "ok",
	ResultFail:           "fail",
	ResultNotImplemented: "not implemented",
	ResultNoInterface:    "no interface",
	ResultAbort:          "abort",
	ResultInvalidHandle:  "invalid handle",
	ResultInvalidArg:     "invalid argument",
	ResultOutOfMemory:    "out of memory",
	ResultBufferTooSmall: "buffer too small",
	ResultUninitialized:  "uninitialized",
	ResultPending:        "pending",
	ResultCannotOpen:     "cannot open",
	ResultNotFound:       "not found",
	ResultInternalFail:   "internal failure",
	ResultNotAvailable:   "not available",
	ResultTimeOut:        "time out",
}

func (r Result) String() string {
	if s, ok := resultNames[r]; ok {
		return fmt.Sprintf("%s (0x%08x)", s, uint32(r))
	}
	return fmt.Sprintf("Result(0x%08x)", uint32(r))
}
