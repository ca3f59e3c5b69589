// Package abi mirrors the Slang compiler's public C ABI.
//
// Nothing in this package calls into the native library. It only declares
// the memory layouts that both sides must agree on:
//
//	types.go     pointer-width integers, Result codes, C bool
//	enums.go     open enumerations (newtype over the native integer)
//	guid.go      128-bit interface identifiers
//	structs.go   transfer structs passed by pointer (SessionDesc, TargetDesc, ...)
//	vtables.go   COM-style vtable layouts, base vtable embedded first
//	opaque.go    zero-sized markers for compiler-owned reflection records
//
// # Open Enumerations
//
// Every classification axis is a named integer type with constants rather
// than a closed set. Newer compiler builds may return values this package
// has no name for; those values survive a round trip unchanged and print
// as TypeName(n).
//
// # Structure Size
//
// Transfer structs carry a StructureSize field. The Default* constructors
// seed it with unsafe.Sizeof of the Go struct so the compiler can detect a
// layout mismatch. Layout changes in this package must keep the golden
// sizes in abi_test.go in sync with the native header.
//
// # Vtables
//
// Interfaces derive from one another by embedding the base vtable as the
// first field:
//
//	UnknownVtbl
//	├── CastableVtbl
//	│   ├── CloneableVtbl
//	│   ├── FileSystemVtbl, SharedLibraryVtbl
//	│   └── MetadataVtbl, CompileResultVtbl
//	├── BlobVtbl, WriterVtbl, ProfilerVtbl, SharedLibraryLoaderVtbl
//	├── GlobalSessionVtbl, SessionVtbl, ComponentType2Vtbl
//	└── ComponentTypeVtbl
//	    └── EntryPointVtbl, TypeConformanceVtbl, ModuleVtbl
//
// A pointer to a derived vtable is therefore also a valid pointer to each
// of its bases.
package abi
