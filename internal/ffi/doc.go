// Package ffi is the native boundary of the module.
//
// It opens the Slang shared library, resolves its exports lazily and
// performs every call through a single trampoline:
//
//	Open / SetDefault   load the library and install it process-wide
//	Proc                 an exported free function (spReflection*, slang_*)
//	Call + Vtbl          vtable slot calls on interface pointers
//	NewCallback          Go functions exposed to the library as C pointers
//
// All arguments and returns are pointer-sized integers. Helpers decode the
// narrower C return types (Result, Bool, Int32) from the raw register.
//
// The trampoline, resolver and callback factory can each be replaced so
// tests can drive the higher layers without the native library.
package ffi
