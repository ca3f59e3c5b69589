package resource

import "fmt"

// Kind identifies the COM interface a host object implements.
type Kind uint32

const (
	KindBlob Kind = iota + 1
	KindFileSystem
)

func (k Kind) String() string {
	switch k {
	case KindBlob:
		return "blob"
	case KindFileSystem:
		return "file-system"
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}
