package tinge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync"
)

// Level tag styles used by LogHandler. Package-level so applications can
// reuse them for their own output.
var (
	StyleDebug = NewStyle().BrightBlack()
	StyleInfo  = NewStyle().Green()
	StyleWarn  = NewStyle().Yellow().Bold()
	StyleError = NewStyle().Red().Bold()
)

// LogHandler is a slog.Handler that outputs plain text for CLI usage, with
// the level tag styled through this package. Styling follows the usual
// gating, so piping the log to a file yields clean text.
// Format: "2006-01-02 15:04:05.000 [LEVEL] message key=value"
type LogHandler struct {
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
	mu    sync.Mutex
}

// NewLogHandler creates a LogHandler that writes to w.
// Only messages at or above the specified level are output.
func NewLogHandler(w io.Writer, level slog.Level) *LogHandler {
	return &LogHandler{w: w, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes a log record to the handler's writer.
func (h *LogHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(r.Time.Format("2006-01-02 15:04:05.000"))
	sb.WriteString(" ")
	tag := "[" + strings.ToUpper(r.Level.String()) + "]"
	sb.WriteString(Styled(tag, levelStyle(r.Level)).String())
	sb.WriteString(" ")
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, a)
		return true
	})
	sb.WriteString("\n")

	_, err := io.WriteString(h.w, sb.String())
	return err
}

func writeAttr(sb *strings.Builder, a slog.Attr) {
	sb.WriteString(" ")
	sb.WriteString(Styled(a.Key, StyleDebug).String())
	sb.WriteString("=")
	sb.WriteString(fmt.Sprint(a.Value))
}

func levelStyle(level slog.Level) Style {
	switch {
	case level >= slog.LevelError:
		return StyleError
	case level >= slog.LevelWarn:
		return StyleWarn
	case level >= slog.LevelInfo:
		return StyleInfo
	default:
		return StyleDebug
	}
}

// WithAttrs returns a new handler that includes the given attributes in
// every record it handles.
func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandler{
		w:     h.w,
		level: h.level,
		attrs: append(slices.Clone(h.attrs), attrs...),
	}
}

// WithGroup returns a new handler with the given group name.
// Currently not implemented: group is ignored.
func (h *LogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// NewNopLogger creates a logger that discards all output.
// Used as the default logger when no logging is needed.
func NewNopLogger() *slog.Logger {
	// LevelError+1 sets threshold above all log levels, filtering everything
	return slog.New(NewLogHandler(io.Discard, slog.LevelError+1))
}

// VerbosityToLevel converts a verbosity count to a slog.Level.
//
//	0 (no flag): LevelWarn - errors and warnings only
//	1 (-v):      LevelInfo - detailed results
//	2+ (-vv):    LevelDebug - trace output
func VerbosityToLevel(verbosity int) slog.Level {
	switch {
	case verbosity >= 2:
		return slog.LevelDebug
	case verbosity == 1:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
