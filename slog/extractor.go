// Package slog provides logging decorators for cardex services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cardex"
)

// Ensure LoggingExtractor implements cardex.Extractor.
var _ cardex.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next    cardex.Extractor
	profile string
	logger  *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. profile names the page
// kind in log lines.
func NewLoggingExtractor(next cardex.Extractor, profile string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, profile: profile, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(raw []byte) (rows []cardex.Row, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extraction",
			"profile", e.profile,
			"bytes", len(raw),
			"rows", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(raw)
}
