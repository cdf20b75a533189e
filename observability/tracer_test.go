package observability

import (
	"context"
	"testing"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Endpoint != "localhost:4318" {
		t.Errorf("unexpected endpoint: %s", cfg.Endpoint)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("unexpected sample rate: %f", cfg.SampleRate)
	}
}

func TestStartSpan_NoopProvider(t *testing.T) {
	ctx, span := StartSpan(context.Background(), "test.operation")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected context")
	}
	// The no-op provider records nothing; SetSpanError must be safe.
	SetSpanError(ctx, context.Canceled)
}
