package logsy

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"Info", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"OFF", LevelOff, false},
		{"  info  ", LevelInfo, false},
		{"verbose", LevelInfo, true},
		{"", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAdmitsMonotonic(t *testing.T) {
	order := []slog.Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}
	filters := append([]slog.Level{LevelOff}, order...)
	ctx := context.Background()

	for _, filter := range filters {
		b := New()
		b.SetLevel(filter)

		admittedLower := false
		for _, level := range order {
			admitted := b.Enabled(ctx, level)
			if admitted != (level >= filter) {
				t.Errorf("filter %v: Enabled(%v) = %v, want %v", filter, level, admitted, level >= filter)
			}
			if admittedLower && !admitted {
				t.Errorf("filter %v: %v rejected after a less severe level was admitted", filter, level)
			}
			if admitted {
				admittedLower = true
			}
		}
		if filter == LevelOff && admittedLower {
			t.Error("Off filter admitted a record")
		}
	}
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO "},
		{LevelWarn, "WARN "},
		{LevelError, "ERROR"},
		{slog.LevelInfo + 2, "INFO+2"},
	}
	for _, tt := range tests {
		if got := levelLabel(tt.level); got != tt.want {
			t.Errorf("levelLabel(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
