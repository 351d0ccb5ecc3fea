package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/mwalczak/linktray"
)

// Compile-time interface verification.
var _ linktray.LinkStore = (*LinkService)(nil)

// LinkService implements linktray.LinkStore using SQLite.
//
// Reads and writes against the database are not atomic across concurrent
// processes; two near-simultaneous captures can race on the position
// counter. This is accepted for the single-user, low-frequency interaction
// pattern the tool serves.
type LinkService struct {
	db *DB

	mu   sync.Mutex
	subs map[int]func(links []linktray.Link)
	next int
}

// NewLinkService creates a new LinkService.
func NewLinkService(db *DB) *LinkService {
	return &LinkService{db: db, subs: make(map[int]func(links []linktray.Link))}
}

// Add appends link unless a link with the same URL already exists.
// Duplicates are a no-op and keep the title from the first add.
func (s *LinkService) Add(ctx context.Context, link linktray.Link) error {
	if err := link.Validate(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO links (url, title, position, added_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM links), ?)
		ON CONFLICT(url) DO NOTHING
	`, link.URL, link.Title, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.notify(ctx)
	}
	return nil
}

// Links returns a snapshot of the list in insertion order.
func (s *LinkService) Links(ctx context.Context) ([]linktray.Link, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT url, title FROM links ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []linktray.Link
	for rows.Next() {
		var link linktray.Link
		if err := rows.Scan(&link.URL, &link.Title); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	return links, rows.Err()
}

// RemoveAt deletes the link at position index. Out-of-range indexes are a
// silent no-op; another panel surface may have deleted the entry first.
func (s *LinkService) RemoveAt(ctx context.Context, index int) error {
	if index < 0 {
		return nil
	}

	var url string
	err := s.db.QueryRowContext(ctx, `
		SELECT url FROM links ORDER BY position LIMIT 1 OFFSET ?
	`, index).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		// No row at that position.
		return nil
	} else if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM links WHERE url = ?`, url)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.notify(ctx)
	}
	return nil
}

// Clear empties the list.
func (s *LinkService) Clear(ctx context.Context) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM links`)
	if err != nil {
		return err
	}

	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.notify(ctx)
	}
	return nil
}

// Subscribe registers fn to receive the new list after every change.
func (s *LinkService) Subscribe(fn func(links []linktray.Link)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// notify delivers the current snapshot to all subscribers. Delivery order
// across subscribers is unspecified.
func (s *LinkService) notify(ctx context.Context) {
	links, err := s.Links(ctx)
	if err != nil {
		return
	}

	s.mu.Lock()
	fns := make([]func(links []linktray.Link), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(links)
	}
}
