// Package resource tracks Go values that are exposed to the native compiler
// as COM objects.
//
// The native side holds such objects by reference count, not by Go pointer
// reachability, so every host object is registered in a Table for as long
// as any reference is outstanding. The table keeps the value alive and maps
// the small integer handle stored in the object's memory back to it.
//
// # Lifecycle
//
//	h := table.Insert(resource.KindBlob, value) // one reference, owned by the caller
//	table.Retain(h)                             // native AddRef
//	table.Release(h)                            // native Release
//	table.Release(h)                            // last reference: value dropped
//
// A value implementing Dropper is notified exactly once, when its last
// reference is released or when the table is closed.
//
// # Observers
//
// Observers receive lifecycle events:
//
//	table.Subscribe(resource.ObserverFunc(func(e resource.Event) {
//	    if e.Type == resource.EventDropped {
//	        log.Printf("%s %d dropped", e.Kind, e.Handle)
//	    }
//	}))
//
// Events are delivered synchronously on the goroutine that caused them,
// which for Retain and Release is usually a thread owned by the native
// library.
package resource
