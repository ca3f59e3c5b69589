package slang

import (
	"iter"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Profiler exposes the compiler's internal timing counters.
type Profiler struct{ object }

func (*Profiler) iid() abi.GUID { return abi.IIDProfiler }

func (p *Profiler) vt() *abi.ProfilerVtbl { return ffi.Vtbl[abi.ProfilerVtbl](p.live()) }

// Clone adds a reference and returns a new handle.
func (p *Profiler) Clone() *Profiler { return clone(p) }

// EntryCount returns the number of profiled functions.
func (p *Profiler) EntryCount() int {
	return int(ffi.Call(p.vt().GetEntryCount, uintptr(p.ptr)))
}

// EntryName returns the name of entry i.
func (p *Profiler) EntryName(i int) string {
	return goString(ffi.Call(p.vt().GetEntryName, uintptr(p.ptr), uintptr(uint32(i))))
}

// EntryTimeMS returns the accumulated time of entry i in milliseconds.
func (p *Profiler) EntryTimeMS(i int) int64 {
	return cLong(ffi.Call(p.vt().GetEntryTimeMS, uintptr(p.ptr), uintptr(uint32(i))))
}

// EntryInvocationTimes returns how often entry i ran.
func (p *Profiler) EntryInvocationTimes(i int) uint32 {
	return ffi.Uint32(ffi.Call(p.vt().GetEntryInvocationTimes, uintptr(p.ptr), uintptr(uint32(i))))
}

// ProfileEntry is a snapshot of one profiler entry.
type ProfileEntry struct {
	Name        string
	TimeMS      int64
	Invocations uint32
}

// Entries iterates over all entries in index order.
func (p *Profiler) Entries() iter.Seq2[int, ProfileEntry] {
	return func(yield func(int, ProfileEntry) bool) {
		n := p.EntryCount()
		for i := 0; i < n; i++ {
			e := ProfileEntry{
				Name:        p.EntryName(i),
				TimeMS:      p.EntryTimeMS(i),
				Invocations: p.EntryInvocationTimes(i),
			}
			if !yield(i, e) {
				return
			}
		}
	}
}
