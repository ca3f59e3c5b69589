package ffi

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	debugf("resolved %s at %#x", "spCreateGlobalSession", 0x1000)

	entries := logs.FilterMessage("resolved spCreateGlobalSession at 0x1000").All()
	if len(entries) != 1 || entries[0].Level != zapcore.DebugLevel {
		t.Errorf("debug entries = %v", logs.All())
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("Logger() = nil after SetLogger(nil)")
	}
}
