package ffi

import "unsafe"

// CString returns a NUL-terminated copy of s in Go memory. The caller
// keeps the result alive across the call that consumes it.
func CString(s string) *byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// CStringArg is CString for use directly in a Call argument list.
// An empty string still yields a valid pointer to a NUL byte.
func CStringArg(s string) unsafe.Pointer {
	return unsafe.Pointer(CString(s))
}

// GoString copies a NUL-terminated native string. A null pointer yields
// "" and false.
func GoString(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n)), true
}

// GoStringN copies n bytes of native memory as a string.
func GoStringN(p unsafe.Pointer, n int) string {
	if p == nil || n <= 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// GoBytes copies n bytes of native memory.
func GoBytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}
