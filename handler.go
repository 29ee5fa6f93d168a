package logsy

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"
)

var _ slog.Handler = (*Backend)(nil)

// Enabled reports whether a record at the given level would be written.
// It costs one atomic load, so callers can guard expensive argument
// construction with it.
func (b *Backend) Enabled(_ context.Context, level slog.Level) bool {
	return b.admits(level)
}

// Handle formats the record once per needed style and writes it to every
// enabled sink. A failed sink write never stops the remaining sinks and
// never reaches the logging call site; it is counted and dropped.
func (b *Backend) Handle(_ context.Context, r slog.Record) error {
	if !b.admits(r.Level) {
		return nil
	}

	t := r.Time
	if t.IsZero() {
		t = time.Now()
	}
	target := recordTarget(r.PC)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.emitted.Add(1)
	if b.console {
		line := formatLine(t, r.Level, target, r.Message, b.timestamps, b.styledLocked())
		if _, err := io.WriteString(b.consoleW, line); err != nil {
			b.reportDrop(err)
		}
	}
	if b.file != nil {
		line := formatLine(t, r.Level, target, r.Message, b.timestamps, false)
		if _, err := b.file.WriteString(line); err != nil {
			b.reportDrop(err)
		}
	}
	return nil
}

// WithAttrs returns the receiver: attribute pairs have no slot in the fixed
// line layout and are not rendered.
func (b *Backend) WithAttrs(attrs []slog.Attr) slog.Handler {
	return b
}

// WithGroup returns the receiver, like WithAttrs.
func (b *Backend) WithGroup(name string) slog.Handler {
	return b
}

// recordTarget resolves the short package name of the emitting call site
// from the record's program counter. Records built without a PC carry an
// empty target, which renders as an empty field.
func recordTarget(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	fn := f.Function
	if fn == "" {
		return ""
	}
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.IndexByte(fn, '.'); i >= 0 {
		fn = fn[:i]
	}
	return fn
}
