package main

import (
	"github.com/mwalczak/linktray"
)

// Run executes the capture command. A capture that finds nothing, or that
// cannot reach the page, is a silent no-op: failures are logged and must
// never interrupt whatever invoked the shortcut.
func (c *CaptureCmd) Run(deps *Dependencies) error {
	capture := linktray.CaptureContext{Kind: linktray.CaptureShortcut}
	switch {
	case c.Link != "":
		capture = linktray.CaptureContext{Kind: linktray.CaptureLink, LinkURL: c.Link}
	case c.Selection != "":
		capture = linktray.CaptureContext{Kind: linktray.CaptureSelection, SelectionText: c.Selection}
	}

	tab, err := deps.Pages.ActiveTab(deps.Ctx)
	if err != nil {
		deps.Logger.Error("no active tab", "err", err)
		return nil
	}

	deps.Capturer.Capture(deps.Ctx, tab, capture)
	return nil
}
