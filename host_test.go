package slang

import (
	"testing"
	"testing/fstest"
	"unsafe"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/errors"
	"github.com/wippyai/slang-go/internal/ffitest"
)

func TestHostBlob(t *testing.T) {
	ffitest.New(t)
	base := HostObjects().Len()

	b := NewBlob([]byte("spirv"))
	if HostObjects().Len() != base+1 {
		t.Fatalf("host objects = %d, want %d", HostObjects().Len(), base+1)
	}
	if got := string(b.Bytes()); got != "spirv" {
		t.Errorf("Bytes = %q", got)
	}
	if b.Size() != 5 {
		t.Errorf("Size = %d", b.Size())
	}

	c := b.Clone()
	if n := b.Release(); n != 1 {
		t.Errorf("Release = %d, want 1", n)
	}
	if got := c.String(); got != "spirv" {
		t.Errorf("clone String = %q", got)
	}
	c.Release()
	if HostObjects().Len() != base {
		t.Errorf("host objects = %d after release, want %d", HostObjects().Len(), base)
	}
}

func TestHostStringBlobTerminated(t *testing.T) {
	ffitest.New(t)
	b := NewStringBlob("main")
	defer b.Release()

	if b.Size() != 4 {
		t.Errorf("Size = %d, want 4", b.Size())
	}
	if nul := *(*byte)(unsafe.Add(b.Pointer(), 4)); nul != 0 {
		t.Errorf("byte after text = %#x, want NUL", nul)
	}
}

func TestHostEmptyBlob(t *testing.T) {
	ffitest.New(t)
	b := NewBlob(nil)
	defer b.Release()

	if b.Pointer() != nil || b.Size() != 0 || b.String() != "" {
		t.Error("empty host blob is not empty")
	}
}

func TestHostQueryInterface(t *testing.T) {
	ffitest.New(t)
	b := NewBlob([]byte{1})
	defer b.Release()

	u, ok := Query[Unknown](b)
	if !ok {
		t.Fatal("host blob does not answer IUnknown")
	}
	if u.Ptr() != b.Ptr() {
		t.Error("query returned another object")
	}
	u.Release()

	if _, ok := Query[Session](b); ok {
		t.Error("host blob answered ISession")
	}
}

func TestFileSystem(t *testing.T) {
	ffitest.New(t)
	base := HostObjects().Len()

	fsys := NewFileSystem(fstest.MapFS{
		"shaders/common.slang": {Data: []byte("module common;")},
	})

	tests := []struct {
		path string
		want string
		code abi.Result
	}{
		{"shaders/common.slang", "module common;", abi.ResultOK},
		{"/shaders/common.slang", "module common;", abi.ResultOK},
		{`shaders\common.slang`, "module common;", abi.ResultOK},
		{"./shaders/../shaders/common.slang", "module common;", abi.ResultOK},
		{"shaders/missing.slang", "", abi.ResultNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			blob, err := fsys.LoadFile(tt.path)
			if tt.code != abi.ResultOK {
				if code, _ := errors.Code(err); code != tt.code {
					t.Fatalf("LoadFile error = %v, want code %v", err, tt.code)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			defer blob.Release()
			if got := blob.String(); got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}

	if c, ok := Cast[FileSystem](fsys); !ok {
		t.Error("castAs file system failed")
	} else {
		c.Release()
	}

	fsys.Release()
	if HostObjects().Len() != base {
		t.Errorf("host objects = %d after release, want %d", HostObjects().Len(), base)
	}
}

func TestFSPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"a.slang", "a.slang", true},
		{"/a/b.slang", "a/b.slang", true},
		{"./a/b.slang", "a/b.slang", true},
		{`a\b.slang`, "a/b.slang", true},
		{"../a.slang", "a.slang", true},
		{"", ".", true},
		{"/", ".", true},
	}

	for _, tt := range tests {
		got, ok := FSPath(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("FSPath(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
