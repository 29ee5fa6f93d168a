package logsy

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-isatty"
)

// Stats counts records handled by a Backend.
type Stats struct {
	Emitted uint64 // records admitted by the filter and dispatched
	Dropped uint64 // sink writes that failed and were discarded
}

// Backend routes formatted log lines to an optional console sink and an
// optional file sink. It implements slog.Handler, so an instance can be
// wired into a logger directly; the package-level functions drive a shared
// process-wide instance instead.
type Backend struct {
	level atomic.Int32 // minimum admitted level

	mu         sync.Mutex // guards the fields below and serializes sink writes
	console    bool
	consoleW   io.Writer
	consoleTTY bool
	file       *os.File // nil while the file sink is off
	timestamps bool
	colors     ColorMode

	emitted  atomic.Uint64
	dropped  atomic.Uint64
	dropNote sync.Once
}

// New returns a Backend with the Info filter, timestamps on, automatic
// color detection, and no sinks enabled.
func New() *Backend {
	b := &Backend{
		consoleW:   os.Stderr,
		consoleTTY: isTerminal(os.Stderr),
		timestamps: true,
	}
	b.level.Store(int32(LevelInfo))
	return b
}

// ToConsole enables the console sink, os.Stderr unless redirected.
// Enabling it again changes nothing.
func (b *Backend) ToConsole() {
	b.mu.Lock()
	b.console = true
	b.mu.Unlock()
}

// DisableConsole turns the console sink off. The writer is kept, so a later
// ToConsole picks up where it left off.
func (b *Backend) DisableConsole() {
	b.mu.Lock()
	b.console = false
	b.mu.Unlock()
}

// ToFile routes records to the given file, creating missing parent
// directories first. With append false any existing content is truncated.
// On failure the error is returned and every previously configured sink is
// left untouched; on success a previously open file handle is closed before
// ToFile returns.
func (b *Backend) ToFile(path string, append bool) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	b.mu.Lock()
	old := b.file
	b.file = f
	b.mu.Unlock()

	if old != nil {
		old.Close()
	}
	return nil
}

// DisableFile turns the file sink off and closes its handle. Calling it
// with no file sink active is a no-op.
func (b *Backend) DisableFile() error {
	b.mu.Lock()
	old := b.file
	b.file = nil
	b.mu.Unlock()

	if old == nil {
		return nil
	}
	if err := old.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// SetLevel sets the minimum severity a record needs to be written. The new
// filter applies to every admission check that happens after the store.
func (b *Backend) SetLevel(level slog.Level) {
	b.level.Store(int32(level))
}

// SetTimestamps controls the leading RFC3339 timestamp field, on by default.
func (b *Backend) SetTimestamps(on bool) {
	b.mu.Lock()
	b.timestamps = on
	b.mu.Unlock()
}

// SetColorMode controls console styling; the file sink is always plain.
func (b *Backend) SetColorMode(m ColorMode) {
	b.mu.Lock()
	b.colors = m
	b.mu.Unlock()
}

// SetConsoleWriter redirects the console sink and re-resolves automatic
// color detection against the new writer.
func (b *Backend) SetConsoleWriter(w io.Writer) {
	b.mu.Lock()
	b.consoleW = w
	b.consoleTTY = isTerminal(w)
	b.mu.Unlock()
}

// Stats returns a snapshot of the write counters.
func (b *Backend) Stats() Stats {
	return Stats{Emitted: b.emitted.Load(), Dropped: b.dropped.Load()}
}

func (b *Backend) admits(level slog.Level) bool {
	filter := slog.Level(b.level.Load())
	return filter != LevelOff && level >= filter
}

// styledLocked resolves whether console output is styled right now.
// Callers hold b.mu.
func (b *Backend) styledLocked() bool {
	switch b.colors {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return b.consoleTTY
}

// reportDrop tallies a failed sink write. The first failure leaves a notice
// on stderr; later ones are silent.
func (b *Backend) reportDrop(err error) {
	b.dropped.Add(1)
	b.dropNote.Do(func() {
		fmt.Fprintf(os.Stderr, "logsy: dropping log write: %v\n", err)
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
