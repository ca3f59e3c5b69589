package slang

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffi"
)

// Environment variables consulted by Open when no path option is given.
const (
	// EnvLibFullPath names the library file, or the directory holding it.
	EnvLibFullPath = "SLANG_LIB_FULLPATH"
	// EnvDir names a Slang installation; the library is looked up in its
	// lib directory (bin on Windows).
	EnvDir = "SLANG_DIR"
)

// Option configures Open.
type Option func(*openConfig)

type openConfig struct {
	path   string
	getenv func(string) string
	stat   func(string) (os.FileInfo, error)
	goos   string
}

// WithLibraryPath loads the library from path, which may be the file
// itself or the directory holding it. It takes precedence over the
// environment.
func WithLibraryPath(path string) Option {
	return func(c *openConfig) { c.path = path }
}

var (
	openMu  sync.Mutex
	openLib *ffi.Library
)

// Open loads the native compiler library. It is safe to call more than
// once; only the first successful call loads anything.
func Open(opts ...Option) error {
	openMu.Lock()
	defer openMu.Unlock()

	if openLib != nil {
		return nil
	}

	path := ResolveLibraryPath(opts...)
	lib, err := ffi.Open(path)
	if err != nil {
		return err
	}
	ffi.SetDefault(lib)
	openLib = lib
	Logger().Debug("slang library opened", zap.String("path", path))
	return nil
}

// Loaded reports whether Open has succeeded.
func Loaded() bool {
	openMu.Lock()
	defer openMu.Unlock()
	return openLib != nil
}

// Close unloads the library. Every handle obtained from it must have been
// released.
func Close() error {
	openMu.Lock()
	defer openMu.Unlock()

	if openLib == nil {
		return nil
	}
	err := openLib.Close()
	ffi.SetDefault(nil)
	openLib = nil
	if err != nil {
		return errors.Load("close library", err)
	}
	return nil
}

// ResolveLibraryPath returns the file Open would load: the explicit path,
// then SLANG_LIB_FULLPATH, then SLANG_DIR, then the bare platform name so
// the system loader searches its default paths.
func ResolveLibraryPath(opts ...Option) string {
	cfg := openConfig{getenv: os.Getenv, stat: os.Stat, goos: runtime.GOOS}
	for _, opt := range opts {
		opt(&cfg)
	}
	name := libraryName(cfg.goos)

	if cfg.path != "" {
		return fileOrDir(cfg, cfg.path, name)
	}
	if p := cfg.getenv(EnvLibFullPath); p != "" {
		return fileOrDir(cfg, p, name)
	}
	if dir := cfg.getenv(EnvDir); dir != "" {
		sub := "lib"
		if cfg.goos == "windows" {
			sub = "bin"
		}
		return filepath.Join(dir, sub, name)
	}
	return name
}

func fileOrDir(cfg openConfig, p, name string) string {
	if fi, err := cfg.stat(p); err == nil && fi.IsDir() {
		return filepath.Join(p, name)
	}
	return p
}

func libraryName(goos string) string {
	switch goos {
	case "windows":
		return "slang.dll"
	case "darwin", "ios":
		return "libslang.dylib"
	}
	return "libslang.so"
}
