package tinge

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLogHandler_Handle(t *testing.T) {
	restoreGlobal(t)
	Disable()

	fixedTime := time.Date(2026, 1, 17, 12, 34, 56, 0, time.UTC)

	tests := []struct {
		name     string
		logLevel slog.Level
		message  string
		attrs    []slog.Attr
		want     string
	}{
		{
			name:     "debug_level",
			logLevel: slog.LevelDebug,
			message:  "probing terminal",
			want:     "2026-01-17 12:34:56.000 [DEBUG] probing terminal\n",
		},
		{
			name:     "info_level_with_attr",
			logLevel: slog.LevelInfo,
			message:  "stripped",
			attrs:    []slog.Attr{slog.String("path", "out.log")},
			want:     "2026-01-17 12:34:56.000 [INFO] stripped path=out.log\n",
		},
		{
			name:     "warn_level",
			logLevel: slog.LevelWarn,
			message:  "no files matched",
			want:     "2026-01-17 12:34:56.000 [WARN] no files matched\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			handler := NewLogHandler(&buf, slog.LevelDebug)

			record := slog.NewRecord(fixedTime, tt.logLevel, tt.message, 0)
			record.AddAttrs(tt.attrs...)

			if err := handler.Handle(context.Background(), record); err != nil {
				t.Fatalf("Handle() error: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogHandler_StyledLevelTag(t *testing.T) {
	restoreGlobal(t)
	Enable()

	var buf bytes.Buffer
	handler := NewLogHandler(&buf, slog.LevelDebug)
	record := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)

	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, StyleError.Prefix()+"[ERROR]") {
		t.Errorf("level tag not styled: %q", got)
	}
}

func TestLogHandler_Enabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		handlerLevel slog.Level
		logLevel     slog.Level
		want         bool
	}{
		{
			name:         "debug_handler_enables_debug",
			handlerLevel: slog.LevelDebug,
			logLevel:     slog.LevelDebug,
			want:         true,
		},
		{
			name:         "info_handler_disables_debug",
			handlerLevel: slog.LevelInfo,
			logLevel:     slog.LevelDebug,
			want:         false,
		},
		{
			name:         "warn_handler_enables_error",
			handlerLevel: slog.LevelWarn,
			logLevel:     slog.LevelError,
			want:         true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := NewLogHandler(nil, tt.handlerLevel)
			if got := handler.Enabled(context.Background(), tt.logLevel); got != tt.want {
				t.Errorf("Enabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogHandler_WithAttrs(t *testing.T) {
	restoreGlobal(t)
	Disable()

	fixedTime := time.Date(2026, 1, 17, 12, 34, 56, 0, time.UTC)

	var buf bytes.Buffer
	handler := NewLogHandler(&buf, slog.LevelDebug)
	withAttrs := handler.WithAttrs([]slog.Attr{slog.String("cmd", "strip")})

	record := slog.NewRecord(fixedTime, slog.LevelDebug, "test message", 0)
	if err := withAttrs.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	want := "2026-01-17 12:34:56.000 [DEBUG] test message cmd=strip\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// The original handler must be unaffected.
	buf.Reset()
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	want = "2026-01-17 12:34:56.000 [DEBUG] test message\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLevelStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level slog.Level
		want  Style
	}{
		{slog.LevelDebug, StyleDebug},
		{slog.LevelInfo, StyleInfo},
		{slog.LevelWarn, StyleWarn},
		{slog.LevelError, StyleError},
		{slog.LevelError + 4, StyleError},
	}

	for _, tt := range tests {
		if got := levelStyle(tt.level); !got.Equal(tt.want) {
			t.Errorf("levelStyle(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestNewNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNopLogger()
	if logger == nil {
		t.Fatal("NewNopLogger() returned nil")
	}

	// Should not panic when logging
	logger.Debug("test debug")
	logger.Info("test info")
	logger.Warn("test warn")
	logger.Error("test error")
}

func TestVerbosityToLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, slog.LevelDebug}, // -vvv treated same as -vv
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}
