//go:build !windows

package slang

// cLong decodes a C long return, pointer-sized outside Windows.
func cLong(r uintptr) int64 { return int64(int(r)) }
