package abi

// Reflection records are owned by the compiler and only ever reached by
// pointer. The zero-length func array makes the markers zero-sized and
// incomparable so they cannot be meaningfully copied or constructed.

type (
	Reflection               struct{ _ [0]func() }
	ReflectionEntryPoint     struct{ _ [0]func() }
	ReflectionDecl           struct{ _ [0]func() }
	ReflectionModifier       struct{ _ [0]func() }
	ReflectionType           struct{ _ [0]func() }
	ReflectionTypeLayout     struct{ _ [0]func() }
	ReflectionVariable       struct{ _ [0]func() }
	ReflectionVariableLayout struct{ _ [0]func() }
	ReflectionTypeParameter  struct{ _ [0]func() }
	ReflectionFunction       struct{ _ [0]func() }
	ReflectionGeneric        struct{ _ [0]func() }
	ReflectionUserAttribute  struct{ _ [0]func() }
)
