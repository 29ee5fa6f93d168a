package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jarjk/logsy"
)

func main() {
	logsy.ToConsole()
	logsy.SetLevel(logsy.LevelTrace)

	slog.Log(context.Background(), logsy.LevelTrace, "spawned background worker")
	slog.Debug("resolving upstream address")
	slog.Info("application has just started")
	slog.Warn("config file missing, using defaults")
	slog.Error("upstream refused the connection")

	if err := logsy.ToFile("logs/colors.log", true); err != nil {
		slog.Error(fmt.Sprintf("file sink unavailable: %v", err))
		return
	}
	slog.Info("now also appending to logs/colors.log")
}
