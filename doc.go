// Package logsy is a small logging backend for log/slog: it filters records
// by severity and writes one formatted text line per record to a console
// sink (stderr), a file sink, or both.
//
// The first package-level configuration call installs the shared Backend as
// slog's default logger, so setup is two lines:
//
//	logsy.ToConsole()
//	logsy.SetLevel(logsy.LevelDebug)
//	slog.Debug("ready")
//
// Every line follows one fixed layout,
//
//	[<timestamp> <LEVEL> <target>] <message>
//
// with the timestamp in RFC3339 UTC at microsecond precision, the level
// label padded to five columns, and the short package name of the call site
// as the target. Console lines are colorized when the writer is a terminal;
// file lines are always plain. Attribute pairs attached to records are not
// rendered; the message carries the line's content.
//
// Isolated instances come from New and plug into slog directly, which keeps
// tests and secondary pipelines away from the process-wide state:
//
//	logger := slog.New(logsy.New())
//
// A LOGSY_LOG environment variable holding trace, debug, info, warn, error
// or off picks the starting filter; anything else is ignored and the Info
// default stays.
package logsy
