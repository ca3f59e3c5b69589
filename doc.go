// Package slang binds the Slang shader compiler through its COM-style C ABI.
//
// The compiler ships as a shared library. This package loads it at run
// time without cgo, wraps every interface pointer it hands out in a
// reference-counted Go handle, and forwards each method to the matching
// vtable slot. No compilation happens in Go.
//
// # Architecture Overview
//
//	slang/               Handles, bootstrap, session configuration, host objects
//	├── abi/             Enums, GUIDs, transfer structs and vtable layouts
//	├── reflection/      Borrowed views over shader reflection records
//	├── bindgroup/       WebGPU bind group layouts derived from reflection
//	├── resource/        Table of Go values exposed as COM objects
//	├── errors/          Structured errors carrying the native result code
//	├── internal/ffi/    Library loading and the call trampoline
//	└── cmd/slangc/      Command line compiler and reflection browser
//
// # Quick Start
//
//	if err := slang.Open(); err != nil {
//	    log.Fatal(err)
//	}
//
//	global, err := slang.NewGlobalSession(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer global.Release()
//
//	session, err := global.CreateSession(&slang.SessionConfig{
//	    Targets: []slang.Target{{Format: abi.TargetSPIRV, Profile: global.FindProfile("spirv_1_5")}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer session.Release()
//
//	module, diags, err := session.LoadModule("shaders/blur")
//	if diags != nil {
//	    log.Print(diags.String())
//	    diags.Release()
//	}
//
// # Ownership
//
// Every handle owns exactly one native reference. Release drops it; a
// second Release is a no-op. Clone adds a reference and returns a new
// handle that must be released separately. Handles are not released by
// the garbage collector: call Release on every exit path, usually with
// defer.
//
// Interface pointers the compiler returns without a reference, such as
// Session.GlobalSession, are add-ref'd when wrapped so that the rule above
// holds for every handle.
//
// Reflection records (package reflection) are borrowed. They are never
// released and stay valid only while the component type that produced the
// layout is alive.
//
// # Errors and diagnostics
//
// Failing calls return an *errors.Error holding the native result code
// unchanged; errors.Code recovers it. Methods that compile or link also
// return the compiler's diagnostics blob. It is nil when the compiler
// reported nothing and may be present on success, typically carrying
// warnings.
//
// # Thread Safety
//
// No locks are taken around native calls. Whether one session may be used
// from several goroutines is decided by the compiler, not by this package.
package slang
