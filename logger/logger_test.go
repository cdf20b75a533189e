package logger

import (
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected format json, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %s", cfg.Output)
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	l := New(&Config{Level: "nonsense"}, "test")
	if l == nil {
		t.Fatal("expected logger")
	}
	// Should not panic when logging.
	l.Info("hello")
}

func TestFields_PairsAndOddInput(t *testing.T) {
	m := Fields("a", 1, "b", "two", "dangling")
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(m))
	}
	if m["a"] != 1 || m["b"] != "two" {
		t.Errorf("unexpected map contents: %v", m)
	}
}

func TestWithComponent_DoesNotMutateParent(t *testing.T) {
	parent := NewDefault("test")
	child := parent.WithComponent("auth")
	if child == parent {
		t.Error("WithComponent should return a new logger")
	}
}

func TestGlobalLogger_LazyInit(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily created global logger")
	}
}
