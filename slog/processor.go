package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingProcessor implements docindex.Processor.
var _ docindex.Processor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a Processor with debug logging.
type LoggingProcessor struct {
	next   docindex.Processor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next docindex.Processor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// ProcessDocument delegates to the wrapped processor and logs the operation.
func (p *LoggingProcessor) ProcessDocument(r io.Reader, path string) (docs []*docindex.Document, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		p.logger.Log(context.Background(), level, "process document",
			"path", path,
			"records", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ProcessDocument(r, path)
}
