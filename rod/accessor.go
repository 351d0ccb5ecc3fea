// Package rod provides browser page access using Chrome DevTools automation.
package rod

import (
	"context"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mwalczak/linktray"
	"github.com/mwalczak/linktray/goquery"
)

// Ensure Accessor implements linktray.PageAccessor at compile time.
var _ linktray.PageAccessor = (*Accessor)(nil)

// hoverStateJS reads the page's hover and selection state. It runs inside
// the page and returns a plain value; nothing else crosses the boundary.
// querySelectorAll("a:hover") returns the hovered anchor's ancestor chain,
// so the last element is the innermost anchor under the pointer.
const hoverStateJS = `() => {
	const anchors = document.querySelectorAll("a[href]:hover");
	const anchor = anchors.length ? anchors[anchors.length - 1] : null;
	if (anchor) {
		return { href: anchor.href, text: anchor.textContent || "" };
	}
	const selection = String(window.getSelection() || "");
	if (selection.trim()) {
		return { selection: selection };
	}
	return null;
}`

// Accessor runs link extraction against pages of a Chrome browser.
// Accessor is safe for concurrent use by multiple goroutines.
type Accessor struct {
	browser  *rod.Browser
	launcher *launcher.Launcher // nil when attached to an existing browser
}

// NewAccessor connects to the browser at controlURL (a DevTools host:port or
// websocket URL). With an empty controlURL it launches a browser against the
// user's own profile instead. Close must be called when the Accessor is no
// longer needed.
func NewAccessor(controlURL string) (*Accessor, error) {
	if controlURL != "" {
		u, err := launcher.ResolveURL(controlURL)
		if err != nil {
			return nil, fmt.Errorf("resolving control URL: %w", err)
		}
		browser := rod.New().ControlURL(u)
		if err := browser.Connect(); err != nil {
			return nil, fmt.Errorf("connecting to browser: %w", err)
		}
		return &Accessor{browser: browser}, nil
	}

	l := launcher.NewUserMode()
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Accessor{browser: browser, launcher: l}, nil
}

// ActiveTab returns the currently focused page, preferring the page whose
// document is visible and falling back to the first open page.
func (a *Accessor) ActiveTab(ctx context.Context) (*linktray.Tab, error) {
	pages, err := a.browser.Pages()
	if err != nil {
		return nil, err
	}

	var fallback *linktray.Tab
	for _, p := range pages {
		p = p.Context(ctx)

		info, err := p.Info()
		if err != nil {
			continue
		}

		// Privileged and blank pages are never capture targets.
		if !linktray.IsWebURL(info.URL) {
			continue
		}

		tab := &linktray.Tab{ID: string(info.TargetID), URL: info.URL, Title: info.Title}
		if fallback == nil {
			fallback = tab
		}

		res, err := p.Eval(`() => document.visibilityState`)
		if err == nil && res.Value.Str() == "visible" {
			return tab, nil
		}
	}

	if fallback == nil {
		return nil, linktray.Errorf(linktray.ENOTFOUND, "no open web pages")
	}
	return fallback, nil
}

// Extract evaluates the capture against the tab's document.
func (a *Accessor) Extract(ctx context.Context, tab *linktray.Tab, capture linktray.CaptureContext) (*linktray.Link, error) {
	switch capture.Kind {
	case linktray.CaptureSelection:
		// The selection text came with the trigger; no page access needed.
		return linktray.LinkFromSelection(capture.SelectionText), nil
	case linktray.CaptureLink:
		return a.extractLink(ctx, tab, capture.LinkURL)
	case linktray.CaptureShortcut:
		return a.extractHoverOrSelection(ctx, tab)
	}
	return nil, linktray.Errorf(linktray.EINVALID, "unknown capture kind %d", capture.Kind)
}

// Close releases browser resources. A browser launched by the Accessor is
// shut down; a browser it attached to is left running.
func (a *Accessor) Close() error {
	if a.launcher == nil {
		return nil
	}
	err := a.browser.Close()
	a.launcher.Kill()
	return err
}

// extractLink titles a right-clicked link from the page's matching anchor
// text, falling back to a domain-derived title. The URL is kept verbatim.
func (a *Accessor) extractLink(ctx context.Context, tab *linktray.Tab, linkURL string) (*linktray.Link, error) {
	page, err := a.page(ctx, tab)
	if err != nil {
		return nil, err
	}

	html, err := page.HTML()
	if err != nil {
		return nil, err
	}

	text, err := goquery.AnchorText(html, tab.URL, linkURL)
	if err != nil {
		return nil, err
	}

	link := linktray.NewLink(linkURL, text)
	return &link, nil
}

// extractHoverOrSelection checks the hovered anchor first, then the current
// text selection. Returns nil when neither yields a capturable link.
func (a *Accessor) extractHoverOrSelection(ctx context.Context, tab *linktray.Tab) (*linktray.Link, error) {
	page, err := a.page(ctx, tab)
	if err != nil {
		return nil, err
	}

	res, err := page.Eval(hoverStateJS)
	if err != nil {
		return nil, err
	}

	v := res.Value
	switch {
	case v.Nil():
		return nil, nil
	case v.Get("href").Str() != "":
		link := linktray.NewLink(v.Get("href").Str(), v.Get("text").Str())
		return &link, nil
	default:
		return linktray.LinkFromSelection(v.Get("selection").Str()), nil
	}
}

func (a *Accessor) page(ctx context.Context, tab *linktray.Tab) (*rod.Page, error) {
	page, err := a.browser.PageFromTarget(proto.TargetTargetID(tab.ID))
	if err != nil {
		return nil, linktray.Errorf(linktray.EUNAVAILABLE, "page not accessible: %v", err)
	}
	return page.Context(ctx), nil
}
