package linktray

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

// CaptureKind identifies how a capture was triggered.
type CaptureKind int

const (
	// CaptureLink is a context-menu click on an anchor element.
	CaptureLink CaptureKind = iota

	// CaptureSelection is a context-menu click on selected text.
	CaptureSelection

	// CaptureShortcut is the keyboard shortcut. There is no menu context;
	// the page's hover and selection state must be inspected directly.
	CaptureShortcut
)

// CaptureContext describes a single capture trigger. Exactly one variant is
// active per capture: LinkURL for CaptureLink, SelectionText for
// CaptureSelection, and neither for CaptureShortcut.
type CaptureContext struct {
	Kind          CaptureKind
	LinkURL       string
	SelectionText string
}

// Tab identifies a browser page that a capture runs against.
type Tab struct {
	ID    string
	URL   string
	Title string
}

// PageAccessor runs link extraction inside a page. Implementations send the
// CaptureContext across the page boundary and receive a plain Link (or
// nothing) back; no callbacks cross the boundary and no page state is
// retained. Extract must only be invoked for http(s) pages.
type PageAccessor interface {
	// ActiveTab returns the currently focused page.
	ActiveTab(ctx context.Context) (*Tab, error)

	// Extract evaluates the capture against the tab's document. A nil Link
	// with a nil error means there was nothing to capture; that covers
	// both "nothing selected" and "selection is not a URL".
	Extract(ctx context.Context, tab *Tab, capture CaptureContext) (*Link, error)

	// Close releases browser resources.
	Close() error
}

// Capturer orchestrates a single capture attempt: scheme check, extraction,
// store append. Every failure mode is non-fatal; errors are logged and
// swallowed so a capture never interrupts the surrounding process. No
// operation is retried.
type Capturer struct {
	Pages  PageAccessor
	Store  LinkStore
	Logger *slog.Logger

	// Limiter, when set, drops capture bursts. A held-down shortcut fires
	// key-repeat events; dropped captures are not retried.
	Limiter *rate.Limiter
}

// Capture runs one capture attempt against tab. An attempt that finds
// nothing to capture is a silent no-op, as is one against a non-web page.
func (c *Capturer) Capture(ctx context.Context, tab *Tab, capture CaptureContext) {
	logger := c.logger()

	if c.Limiter != nil && !c.Limiter.Allow() {
		logger.Debug("capture dropped by rate limit", "tab", tab.ID)
		return
	}

	// Capture never runs on privileged or non-web pages.
	if !IsWebURL(tab.URL) {
		logger.Debug("capture skipped on non-web page", "url", tab.URL)
		return
	}

	link, err := c.Pages.Extract(ctx, tab, capture)
	if err != nil {
		logger.Error("page extraction failed", "tab", tab.ID, "err", err)
		return
	}
	if link == nil || link.URL == "" {
		logger.Debug("nothing to capture", "tab", tab.ID)
		return
	}

	if err := c.Store.Add(ctx, *link); err != nil {
		logger.Error("saving captured link failed", "url", link.URL, "err", err)
	}
}

func (c *Capturer) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
