// Package xlog is the module's thin structured-logging wrapper. The
// containers in hashset, intset, and heap never import it — spec.md §5
// requires no operation to suspend or perform I/O on the hot path — it
// is used only by cmd/hppcbench to report sizing/mixing diagnostics.
//
// No example repo in the retrieval pack pulls a third-party structured
// logger as a direct, deliberate top-level dependency for a CLI this
// small (cockroachdb and cue both carry loggers like zap/logr/klog only
// as indirect transitive dependencies of unrelated subsystems, never
// chosen for a use this narrow), so this wraps log/slog rather than
// inventing a dependency the pack never actually reaches for on
// purpose; see DESIGN.md.
package xlog

import (
	"fmt"
	"log/slog"
	"os"
)

var base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetLevel adjusts the minimum level emitted by the package logger.
func SetLevel(level slog.Level) {
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Infof logs a formatted informational message.
func Infof(format string, args ...any) {
	base.Info(fmt.Sprintf(format, args...))
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	base.Debug(fmt.Sprintf(format, args...))
}

// Warnf logs a formatted warning message.
func Warnf(format string, args ...any) {
	base.Warn(fmt.Sprintf(format, args...))
}
