package slang

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/slang-go/abi"
	"github.com/wippyai/slang-go/internal/ffitest"
)

func observeLogs(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	prev := Logger()
	core, logs := observer.New(level)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestHandleLifecycleLogging(t *testing.T) {
	logs := observeLogs(t, zapcore.DebugLevel)

	h := ffitest.New(t)
	obj := ffitest.NewObject[abi.UnknownVtbl](h)
	u := WrapUnknown(obj.Ptr())
	c := u.Clone()
	c.Release()
	u.Release()

	var acquired, released int
	for _, e := range logs.All() {
		if e.Level != zapcore.DebugLevel {
			continue
		}
		switch {
		case strings.HasPrefix(e.Message, "acquire "):
			acquired++
		case strings.HasPrefix(e.Message, "release "):
			released++
		}
	}
	if acquired != 1 {
		t.Errorf("acquire entries = %d, want 1", acquired)
	}
	if released != 2 {
		t.Errorf("release entries = %d, want 2", released)
	}
}

func TestHandleLoggingFilteredByLevel(t *testing.T) {
	logs := observeLogs(t, zapcore.InfoLevel)

	h := ffitest.New(t)
	obj := ffitest.NewObject[abi.UnknownVtbl](h)
	WrapUnknown(obj.Ptr()).Release()

	if n := logs.Len(); n != 0 {
		t.Errorf("entries at info level = %d, want 0", n)
	}
}

func TestSetLoggerNil(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
	debugf("no panic with %s", "nop logger")
}
