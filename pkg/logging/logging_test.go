package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		" WARN": zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected unknown level error")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("verbose"); err == nil {
		t.Fatalf("expected error")
	}
	if logger, err := New("debug"); err != nil || logger == nil {
		t.Fatalf("expected logger, got %v %v", logger, err)
	}
}

func TestFromZapKeepsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.Debugw("hidden")
	logger.Infow("view registered", "name", "users", "path", "/users")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if entries[0].Message != "view registered" || fields["name"] != "users" || fields["path"] != "/users" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}
}

func TestNopDiscards(t *testing.T) {
	logger := Nop()
	logger.Errorw("ignored", "k", "v")
	if FromZap(nil) == nil {
		t.Fatalf("expected nop logger for nil zap logger")
	}
}
