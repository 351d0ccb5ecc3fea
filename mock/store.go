package mock

import (
	"context"

	"github.com/mwalczak/linktray"
)

var _ linktray.LinkStore = (*LinkStore)(nil)

// LinkStore is a mock implementation of linktray.LinkStore.
type LinkStore struct {
	AddFn       func(ctx context.Context, link linktray.Link) error
	LinksFn     func(ctx context.Context) ([]linktray.Link, error)
	RemoveAtFn  func(ctx context.Context, index int) error
	ClearFn     func(ctx context.Context) error
	SubscribeFn func(fn func(links []linktray.Link)) func()
}

func (s *LinkStore) Add(ctx context.Context, link linktray.Link) error {
	return s.AddFn(ctx, link)
}

func (s *LinkStore) Links(ctx context.Context) ([]linktray.Link, error) {
	return s.LinksFn(ctx)
}

func (s *LinkStore) RemoveAt(ctx context.Context, index int) error {
	return s.RemoveAtFn(ctx, index)
}

func (s *LinkStore) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}

func (s *LinkStore) Subscribe(fn func(links []linktray.Link)) func() {
	if s.SubscribeFn == nil {
		return func() {}
	}
	return s.SubscribeFn(fn)
}
