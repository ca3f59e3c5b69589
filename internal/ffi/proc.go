package ffi

import "sync"

// Proc is an exported function of the native library, resolved on first
// use and re-resolved whenever the default library or resolver changes.
type Proc struct {
	name string

	mu   sync.Mutex
	gen  uint64
	addr uintptr
}

// NewProc declares a lazily resolved export.
func NewProc(name string) *Proc {
	return &Proc{name: name}
}

// Name returns the exported symbol name.
func (p *Proc) Name() string { return p.name }

// Find resolves the symbol without calling it.
func (p *Proc) Find() error {
	_, err := p.find()
	return err
}

func (p *Proc) find() (uintptr, error) {
	g := generation.Load()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.addr != 0 && p.gen == g {
		return p.addr, nil
	}
	addr, err := resolve(p.name)
	if err != nil {
		return 0, err
	}
	p.addr, p.gen = addr, g
	return addr, nil
}

// Addr returns the resolved address. A missing export is a broken contract
// with the native library and panics with an *errors.Error.
func (p *Proc) Addr() uintptr {
	addr, err := p.find()
	if err != nil {
		panic(err)
	}
	return addr
}

// Call invokes the export with the platform C calling convention.
//
//go:uintptrescapes
func (p *Proc) Call(args ...uintptr) uintptr {
	return invoke(p.Addr(), args...)
}
