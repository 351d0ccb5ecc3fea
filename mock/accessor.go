package mock

import (
	"context"

	"github.com/mwalczak/linktray"
)

var _ linktray.PageAccessor = (*PageAccessor)(nil)

// PageAccessor is a mock implementation of linktray.PageAccessor.
type PageAccessor struct {
	ActiveTabFn func(ctx context.Context) (*linktray.Tab, error)
	ExtractFn   func(ctx context.Context, tab *linktray.Tab, capture linktray.CaptureContext) (*linktray.Link, error)
	CloseFn     func() error
}

func (a *PageAccessor) ActiveTab(ctx context.Context) (*linktray.Tab, error) {
	return a.ActiveTabFn(ctx)
}

func (a *PageAccessor) Extract(ctx context.Context, tab *linktray.Tab, capture linktray.CaptureContext) (*linktray.Link, error) {
	return a.ExtractFn(ctx, tab, capture)
}

func (a *PageAccessor) Close() error {
	if a.CloseFn == nil {
		return nil
	}
	return a.CloseFn()
}
