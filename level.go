package logsy

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Severity constants on the slog scale. Trace sits one step below slog's
// debug floor; Off is a sentinel, and a filter set to it admits nothing.
const (
	LevelTrace = slog.LevelDebug - 4
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
	LevelOff   = slog.Level(math.MaxInt32)
)

// ParseLevel decodes a severity name, case-insensitively. WARNING is
// accepted as an alias for WARN.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "OFF":
		return LevelOff, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// levelLabel returns the upper-case label padded to the five columns the
// line layout reserves for it. Levels between the named ones keep slog's
// own notation (e.g. INFO+2).
func levelLabel(l slog.Level) string {
	var name string
	switch l {
	case LevelTrace:
		name = "TRACE"
	case LevelDebug:
		name = "DEBUG"
	case LevelInfo:
		name = "INFO"
	case LevelWarn:
		name = "WARN"
	case LevelError:
		name = "ERROR"
	default:
		name = l.String()
	}
	return fmt.Sprintf("%-5s", name)
}
