package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/histogrammer/cmd/histogrammer"
	"github.com/dasdy/histogrammer/logging"
)

func main() {
	// Replaced once flags and config are known; this one only covers startup.
	slog.SetDefault(logging.NewLogger(os.Stderr, slog.LevelWarn))

	histogrammer.Execute()
}
