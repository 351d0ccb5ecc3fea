// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwalczak/linktray"
)

// Ensure LoggingStore implements linktray.LinkStore.
var _ linktray.LinkStore = (*LoggingStore)(nil)

// LoggingStore wraps a LinkStore with debug logging for every mutation.
type LoggingStore struct {
	next   linktray.LinkStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next linktray.LinkStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Add logs the capture and delegates to the wrapped store.
func (s *LoggingStore) Add(ctx context.Context, link linktray.Link) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store add",
			"url", link.URL,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Add(ctx, link)
}

// Links delegates to the wrapped store.
func (s *LoggingStore) Links(ctx context.Context) ([]linktray.Link, error) {
	return s.next.Links(ctx)
}

// RemoveAt logs the removal and delegates to the wrapped store.
func (s *LoggingStore) RemoveAt(ctx context.Context, index int) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store remove",
			"index", index,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RemoveAt(ctx, index)
}

// Clear logs the wipe and delegates to the wrapped store.
func (s *LoggingStore) Clear(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store clear",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Clear(ctx)
}

// Subscribe delegates to the wrapped store.
func (s *LoggingStore) Subscribe(fn func(links []linktray.Link)) (cancel func()) {
	return s.next.Subscribe(fn)
}
