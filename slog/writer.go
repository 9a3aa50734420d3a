package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cardex"
)

// Ensure LoggingTableWriter implements cardex.TableWriter.
var _ cardex.TableWriter = (*LoggingTableWriter)(nil)

// LoggingTableWriter wraps a TableWriter with logging.
type LoggingTableWriter struct {
	next   cardex.TableWriter
	logger *slog.Logger
}

// NewLoggingTableWriter creates a new LoggingTableWriter.
func NewLoggingTableWriter(next cardex.TableWriter, logger *slog.Logger) *LoggingTableWriter {
	return &LoggingTableWriter{next: next, logger: logger}
}

// WriteTable delegates to the wrapped writer and logs the operation.
func (w *LoggingTableWriter) WriteTable(ctx context.Context, t *cardex.Table) (err error) {
	defer func(begin time.Time) {
		w.logger.Debug("write table",
			"table", t.Name,
			"rows", len(t.Rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteTable(ctx, t)
}
