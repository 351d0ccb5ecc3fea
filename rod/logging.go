package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczak/linktray"
)

// Ensure LoggingAccessor implements linktray.PageAccessor.
var _ linktray.PageAccessor = (*LoggingAccessor)(nil)

// LoggingAccessor wraps a PageAccessor with debug logging.
type LoggingAccessor struct {
	next   linktray.PageAccessor
	logger *slog.Logger
}

// NewLoggingAccessor creates a new LoggingAccessor.
func NewLoggingAccessor(next linktray.PageAccessor, logger *slog.Logger) *LoggingAccessor {
	return &LoggingAccessor{next: next, logger: logger}
}

// ActiveTab logs the resolved tab and delegates to the wrapped accessor.
func (a *LoggingAccessor) ActiveTab(ctx context.Context) (tab *linktray.Tab, err error) {
	defer func(begin time.Time) {
		url := ""
		if tab != nil {
			url = tab.URL
		}
		a.logger.Info("active tab",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.ActiveTab(ctx)
}

// Extract logs the capture attempt and delegates to the wrapped accessor.
func (a *LoggingAccessor) Extract(ctx context.Context, tab *linktray.Tab, capture linktray.CaptureContext) (link *linktray.Link, err error) {
	defer func(begin time.Time) {
		url := ""
		if link != nil {
			url = link.URL
		}
		a.logger.Info("extract",
			"kind", int(capture.Kind),
			"tab", tab.ID,
			"result", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Extract(ctx, tab, capture)
}

// Close delegates to the wrapped accessor.
func (a *LoggingAccessor) Close() error {
	return a.next.Close()
}
