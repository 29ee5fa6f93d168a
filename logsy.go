package logsy

import (
	"log/slog"
	"os"
	"sync"
)

// EnvVar names the environment variable consulted once, at installation,
// for the starting filter. Unparseable values leave the Info default.
const EnvVar = "LOGSY_LOG"

var (
	std         = New()
	installOnce sync.Once
)

// install makes the shared Backend slog's default handler, exactly once.
// Every package-level configuration function goes through here first, so
// the first of them to run performs the registration.
func install() {
	installOnce.Do(func() {
		if level, ok := envLevel(); ok {
			std.SetLevel(level)
		}
		slog.SetDefault(slog.New(std))
	})
}

// envLevel reads EnvVar. The second result is false when the variable is
// unset or holds no known level name.
func envLevel() (slog.Level, bool) {
	v, ok := os.LookupEnv(EnvVar)
	if !ok {
		return LevelInfo, false
	}
	level, err := ParseLevel(v)
	if err != nil {
		return LevelInfo, false
	}
	return level, true
}

// Default returns the shared Backend the package-level functions configure,
// installing it if no configuration call has run yet.
func Default() *Backend {
	install()
	return std
}

// ToConsole enables the shared Backend's console sink.
func ToConsole() {
	install()
	std.ToConsole()
}

// ToFile routes the shared Backend's output to the given file; see
// Backend.ToFile for the append and failure semantics.
func ToFile(path string, append bool) error {
	install()
	return std.ToFile(path, append)
}

// SetLevel sets the shared Backend's filter.
func SetLevel(level slog.Level) {
	install()
	std.SetLevel(level)
}

// DisableConsole turns the shared Backend's console sink off.
func DisableConsole() {
	install()
	std.DisableConsole()
}

// DisableFile turns the shared Backend's file sink off and closes it.
func DisableFile() error {
	install()
	return std.DisableFile()
}

// SetTimestamps toggles the shared Backend's timestamp field.
func SetTimestamps(on bool) {
	install()
	std.SetTimestamps(on)
}

// SetColorMode sets the shared Backend's console styling mode.
func SetColorMode(m ColorMode) {
	install()
	std.SetColorMode(m)
}
