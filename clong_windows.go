package slang

// cLong decodes a C long return, 32 bits on Windows.
func cLong(r uintptr) int64 { return int64(int32(uint32(r))) }
