package log_test

import (
	"context"
	"testing"

	"voice-worklog/pkg/log"
)

func TestRequestID(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestID(ctx); got != "req-1" {
		t.Errorf("RequestID() = %q, want %q", got, "req-1")
	}
	if got := log.RequestID(context.Background()); got != "" {
		t.Errorf("RequestID() on empty ctx = %q, want empty", got)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "console debug", cfg: log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true}},
		{name: "json production", cfg: log.ZapConfig{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON}},
		{name: "invalid level falls back", cfg: log.ZapConfig{Level: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("Init() returned nil")
			}
			l.Debugf(log.WithRequestID(context.Background(), "x"), "hello %s", "world")
		})
	}
}
