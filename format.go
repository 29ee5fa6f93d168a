package logsy

import (
	"log/slog"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ColorMode controls when console output carries ANSI styling.
type ColorMode int

const (
	// ColorAuto styles console output only when the console writer is a
	// terminal.
	ColorAuto ColorMode = iota
	// ColorAlways styles console output unconditionally.
	ColorAlways
	// ColorNever keeps console output plain.
	ColorNever
)

// timeLayout pins the timestamp field: RFC3339 in UTC with a six-digit
// fraction, so a rendered stamp always carries ".dddddd" before the zone.
const timeLayout = "2006-01-02T15:04:05.000000Z07:00"

var (
	levelColors = map[slog.Level]*color.Color{
		LevelTrace: styled(color.FgMagenta, color.Bold),
		LevelDebug: styled(color.FgBlue, color.Bold),
		LevelInfo:  styled(color.FgGreen, color.Bold),
		LevelWarn:  styled(color.FgYellow, color.Bold),
		LevelError: styled(color.FgRed, color.Bold),
	}
	frameColor    = styled(color.FgHiBlack)
	targetColor   = styled(color.FgHiBlack, color.Italic)
	stampColor    = styled(color.FgHiBlack, color.Faint)
	fractionColor = styled(color.FgHiBlack, color.Faint, color.Italic)
)

// styled builds a Color with output forced on. The color package disables
// itself globally off-terminal; whether a line is styled is decided per
// sink here, not by the package.
func styled(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// levelColor picks the display color for a level, bucketing unnamed levels
// to the nearest named one below them.
func levelColor(l slog.Level) *color.Color {
	if c, ok := levelColors[l]; ok {
		return c
	}
	switch {
	case l >= LevelError:
		return levelColors[LevelError]
	case l >= LevelWarn:
		return levelColors[LevelWarn]
	case l >= LevelInfo:
		return levelColors[LevelInfo]
	case l >= LevelDebug:
		return levelColors[LevelDebug]
	}
	return levelColors[LevelTrace]
}

// formatLine renders one record as one newline-terminated line:
//
//	[<timestamp> <LEVEL> <target>] <message>
//
// The timestamp (with its trailing space) appears only while stamps are on.
// The message passes through verbatim, embedded newlines included.
func formatLine(t time.Time, level slog.Level, target, msg string, stamp, styledOut bool) string {
	if !styledOut {
		var b strings.Builder
		b.WriteByte('[')
		if stamp {
			b.WriteString(t.UTC().Format(timeLayout))
			b.WriteByte(' ')
		}
		b.WriteString(levelLabel(level))
		b.WriteByte(' ')
		b.WriteString(target)
		b.WriteString("] ")
		b.WriteString(msg)
		b.WriteByte('\n')
		return b.String()
	}

	var b strings.Builder
	b.WriteString(frameColor.Sprint("["))
	if stamp {
		ts := t.UTC().Format(timeLayout)
		i := strings.IndexByte(ts, '.')
		b.WriteString(stampColor.Sprint(ts[:i]))
		b.WriteString(fractionColor.Sprint(ts[i : i+7]))
		b.WriteString(stampColor.Sprint(ts[i+7:]))
		b.WriteByte(' ')
	}
	b.WriteString(levelColor(level).Sprint(levelLabel(level)))
	b.WriteByte(' ')
	if target != "" {
		b.WriteString(targetColor.Sprint(target))
	}
	b.WriteString(frameColor.Sprint("]"))
	b.WriteByte(' ')
	b.WriteString(msg)
	b.WriteByte('\n')
	return b.String()
}
