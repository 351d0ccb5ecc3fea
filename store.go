package linktray

import "context"

// LinkStore is an ordered, URL-deduplicated collection of captured links.
// The backing storage is session-scoped: the list starts empty at session
// start and is discarded when the browser session ends. Nothing here is
// durably persisted.
type LinkStore interface {
	// Add appends link unless a link with the same URL already exists
	// (exact, case-sensitive match); duplicates are a no-op. The link must
	// pass validation. Captures are best-effort: callers log and swallow
	// the returned error rather than surfacing it to the user.
	Add(ctx context.Context, link Link) error

	// Links returns a snapshot of the list in insertion order.
	Links(ctx context.Context) ([]Link, error)

	// RemoveAt deletes the link at position index, shifting subsequent
	// entries. Out-of-range indexes are a silent no-op; concurrent panel
	// surfaces may race on deletes and that is acceptable.
	RemoveAt(ctx context.Context, index int) error

	// Clear empties the list.
	Clear(ctx context.Context) error

	// Subscribe registers fn to be invoked with the new list after every
	// change, at least once per change, with no ordering guarantee
	// relative to other subscribers. The returned func cancels the
	// subscription.
	Subscribe(fn func(links []Link)) (cancel func())
}
