package ffi

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/slang-go/errors"
)

// Library is a loaded native shared library.
type Library struct {
	path   string
	handle uintptr

	mu      sync.Mutex
	symbols map[string]uintptr
}

// Open loads the shared library at path. The library stays mapped for the
// lifetime of the process unless Close is called.
func Open(path string) (*Library, error) {
	handle, err := dlopen(path)
	if err != nil {
		return nil, errors.Load("open "+path, err)
	}
	Logger().Debug("library loaded", zap.String("path", path))
	return &Library{path: path, handle: handle, symbols: make(map[string]uintptr)}, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string { return l.path }

// Lookup resolves an exported symbol. Results are cached per library.
func (l *Library) Lookup(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if addr, ok := l.symbols[name]; ok {
		return addr, nil
	}
	if l.handle == 0 {
		return 0, errors.NotInitialized(errors.PhaseLoad, "library "+l.path)
	}
	addr, err := dlsym(l.handle, name)
	if err != nil {
		return 0, errors.SymbolMissing(name, err)
	}
	if addr == 0 {
		return 0, errors.SymbolMissing(name, nil)
	}
	debugf("resolved %s at %#x", name, addr)
	l.symbols[name] = addr
	return addr, nil
}

// Close unloads the library. Handles obtained from it must not be used
// afterwards.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == 0 {
		return nil
	}
	err := dlclose(l.handle)
	l.handle = 0
	clear(l.symbols)
	return err
}

var (
	defaultLib atomic.Pointer[Library]
	generation atomic.Uint64
	resolver   atomic.Pointer[func(string) (uintptr, error)]
)

// Default returns the process-wide library, or nil if none is installed.
func Default() *Library {
	return defaultLib.Load()
}

// SetDefault installs lib as the process-wide library used by Proc.
func SetDefault(lib *Library) {
	defaultLib.Store(lib)
	generation.Add(1)
}

// SetResolver replaces symbol resolution for every Proc. Passing nil
// restores resolution against the default library. It returns a function
// that reinstates the previous resolver.
func SetResolver(fn func(name string) (uintptr, error)) (restore func()) {
	var prev *func(string) (uintptr, error)
	if fn == nil {
		prev = resolver.Swap(nil)
	} else {
		prev = resolver.Swap(&fn)
	}
	generation.Add(1)
	return func() {
		resolver.Store(prev)
		generation.Add(1)
	}
}

func resolve(name string) (uintptr, error) {
	if fn := resolver.Load(); fn != nil {
		return (*fn)(name)
	}
	lib := Default()
	if lib == nil {
		return 0, errors.NotInitialized(errors.PhaseLoad, "slang library")
	}
	return lib.Lookup(name)
}
