package reflection

import (
	"iter"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Attribute is a user-defined attribute applied to a declaration.
type Attribute abi.ReflectionUserAttribute

// Name returns the attribute name without the trailing "Attribute".
func (a *Attribute) Name() string {
	return str(procAttrGetName.Call(uintptr(unsafe.Pointer(a))))
}

// ArgumentCount returns the number of arguments.
func (a *Attribute) ArgumentCount() int {
	return int(ffi.Uint32(procAttrGetArgumentCount.Call(uintptr(unsafe.Pointer(a)))))
}

// ArgumentType returns the type of argument i.
func (a *Attribute) ArgumentType(i int) (*Type, bool) {
	return opt[Type](procAttrGetArgumentType.Call(uintptr(unsafe.Pointer(a)), uintptr(uint32(i))))
}

// Arguments iterates over argument types.
func (a *Attribute) Arguments() iter.Seq2[int, *Type] {
	return present(a.ArgumentCount, a.ArgumentType)
}

// ArgumentInt returns argument i as an integer.
func (a *Attribute) ArgumentInt(i int) (int32, error) {
	var v int32
	r := procAttrGetArgumentInt.Call(uintptr(unsafe.Pointer(a)), uintptr(uint32(i)), uintptr(unsafe.Pointer(&v)))
	if err := check("attribute argument int", r); err != nil {
		return 0, err
	}
	return v, nil
}

// ArgumentFloat returns argument i as a float.
func (a *Attribute) ArgumentFloat(i int) (float32, error) {
	var v float32
	r := procAttrGetArgumentFloat.Call(uintptr(unsafe.Pointer(a)), uintptr(uint32(i)), uintptr(unsafe.Pointer(&v)))
	if err := check("attribute argument float", r); err != nil {
		return 0, err
	}
	return v, nil
}

// ArgumentString returns argument i as a string, or false if it is not a
// string literal.
func (a *Attribute) ArgumentString(i int) (string, bool) {
	var n uint
	p := procAttrGetArgumentString.Call(uintptr(unsafe.Pointer(a)), uintptr(uint32(i)), uintptr(unsafe.Pointer(&n)))
	if p == 0 {
		return "", false
	}
	return ffi.GoStringN(ffi.Ptr(p), int(n)), true
}
