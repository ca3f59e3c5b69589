package abi

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// GUID is SlangUUID, the 128-bit interface identifier.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// String formats g as xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (g GUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%02x%02x-%s",
		g.Data1, g.Data2, g.Data3, g.Data4[0], g.Data4[1], hex.EncodeToString(g.Data4[2:]))
}

// ParseGUID parses the registry form produced by String, with or without braces.
func ParseGUID(s string) (GUID, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "{"), "}")
	parts := strings.Split(s, "-")
	if len(parts) != 5 || len(parts[0]) != 8 || len(parts[1]) != 4 ||
		len(parts[2]) != 4 || len(parts[3]) != 4 || len(parts[4]) != 12 {
		return GUID{}, fmt.Errorf("malformed guid %q", s)
	}

	var g GUID
	d1, err := strconv.ParseUint(parts[0], 16, 32)
	if err != nil {
		return GUID{}, fmt.Errorf("guid data1: %w", err)
	}
	d2, err := strconv.ParseUint(parts[1], 16, 16)
	if err != nil {
		return GUID{}, fmt.Errorf("guid data2: %w", err)
	}
	d3, err := strconv.ParseUint(parts[2], 16, 16)
	if err != nil {
		return GUID{}, fmt.Errorf("guid data3: %w", err)
	}
	tail, err := hex.DecodeString(parts[3] + parts[4])
	if err != nil {
		return GUID{}, fmt.Errorf("guid data4: %w", err)
	}

	g.Data1 = uint32(d1)
	g.Data2 = uint16(d2)
	g.Data3 = uint16(d3)
	copy(g.Data4[:], tail)
	return g, nil
}

// Interface identifiers.
var (
	IIDUnknown = GUID{0x00000000, 0x0000, 0x0000,
		[8]byte{0xc0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46}}
	IIDCastable = GUID{0x87ede0e1, 0x4852, 0x44b0,
		[8]byte{0x8b, 0xf2, 0xcb, 0x31, 0x87, 0x4d, 0xe2, 0x39}}
	IIDCloneable = GUID{0x1ec36168, 0xe9f4, 0x430d,
		[8]byte{0xbb, 0x17, 0x04, 0x8a, 0x80, 0x46, 0xb3, 0x1f}}
	IIDBlob = GUID{0x8ba5fb08, 0x5195, 0x40e2,
		[8]byte{0xac, 0x58, 0x0d, 0x98, 0x9c, 0x3a, 0x01, 0x02}}
	IIDFileSystem = GUID{0x003a09fc, 0x3a4d, 0x4ba0,
		[8]byte{0xad, 0x60, 0x1f, 0xd8, 0x63, 0xa9, 0x15, 0xab}}
	IIDSharedLibrary = GUID{0x70dbc7c4, 0xdc3b, 0x4a07,
		[8]byte{0xae, 0x7e, 0x75, 0x2a, 0xf6, 0xa8, 0x15, 0x55}}
	IIDSharedLibraryLoader = GUID{0x6264ab2b, 0xa3e8, 0x4a06,
		[8]byte{0x97, 0xf1, 0x49, 0xbc, 0x2d, 0x2a, 0xb1, 0x4d}}
	IIDWriter = GUID{0xec457f0e, 0x9add, 0x4e6b,
		[8]byte{0x85, 0x1c, 0xd7, 0xfa, 0x71, 0x6d, 0x15, 0xfd}}
	IIDProfiler = GUID{0x197772c7, 0x0155, 0x4b91,
		[8]byte{0x84, 0xe8, 0x66, 0x68, 0xba, 0xff, 0x06, 0x19}}
	IIDGlobalSession = GUID{0xc140b5fd, 0x0c78, 0x452e,
		[8]byte{0xba, 0x7c, 0x1a, 0x1e, 0x70, 0xc7, 0xf7, 0x1c}}
	IIDSession = GUID{0x67618701, 0xd116, 0x468f,
		[8]byte{0xab, 0x3b, 0x47, 0x4b, 0xed, 0xce, 0x0e, 0x3d}}
	IIDMetadata = GUID{0x8044a8a3, 0xddc0, 0x4b7f,
		[8]byte{0xaf, 0x8e, 0x02, 0x6e, 0x90, 0x5d, 0x73, 0x32}}
	IIDCompileResult = GUID{0x5fa9380e, 0xb62f, 0x41e5,
		[8]byte{0x9f, 0x12, 0x4b, 0xad, 0x4d, 0x9e, 0xaa, 0xe4}}
	IIDComponentType = GUID{0x5bc42be8, 0x5c50, 0x4929,
		[8]byte{0x9e, 0x5e, 0xd1, 0x5e, 0x7c, 0x24, 0x01, 0x5f}}
	IIDEntryPoint = GUID{0x8f241361, 0xf5bd, 0x4ca0,
		[8]byte{0xa3, 0xac, 0x02, 0xf7, 0xfa, 0x24, 0x02, 0xb8}}
	IIDTypeConformance = GUID{0x73eb3147, 0xe544, 0x41b5,
		[8]byte{0xb8, 0xf0, 0xa2, 0x44, 0xdf, 0x21, 0x94, 0x0b}}
	IIDComponentType2 = GUID{0x9c2a4b3d, 0x7f68, 0x4e91,
		[8]byte{0xa5, 0x2c, 0x8b, 0x19, 0x3e, 0x45, 0x7a, 0x9f}}
	IIDModule = GUID{0x0c720e64, 0x8722, 0x4d31,
		[8]byte{0x89, 0x90, 0x63, 0x8a, 0x98, 0xb1, 0xc2, 0x79}}
)
