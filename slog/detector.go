package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingDetector implements docindex.FrameworkDetector.
var _ docindex.FrameworkDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a FrameworkDetector with logging of the detected
// framework.
type LoggingDetector struct {
	next   docindex.FrameworkDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next docindex.FrameworkDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the result.
func (d *LoggingDetector) Detect(html string) docindex.Framework {
	begin := time.Now()
	framework := d.next.Detect(html)
	name := string(framework)
	if framework == docindex.FrameworkUnknown {
		name = "(unknown)"
	}
	d.logger.Info("framework detection",
		"framework", name,
		"duration", time.Since(begin),
	)
	return framework
}
