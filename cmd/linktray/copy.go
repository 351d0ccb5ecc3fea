package main

import (
	"fmt"

	"github.com/mwalczak/linktray"
)

// Run executes the copy command.
func (c *CopyCmd) Run(deps *Dependencies) error {
	links, err := deps.Store.Links(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linktray.ErrorMessage(err))
		return err
	}

	var text string
	count := len(links)
	switch {
	case c.Position > 0:
		if c.Position > len(links) {
			fmt.Fprintf(deps.Stderr, "error: no link at position %d\n", c.Position)
			return linktray.Errorf(linktray.ENOTFOUND, "no link at position %d", c.Position)
		}
		text = linktray.FormatLink(links[c.Position-1], c.Markdown)
		count = 1
	case c.Bulleted:
		text = linktray.FormatLinksBulleted(links, c.Markdown)
	default:
		text = linktray.FormatLinks(links, c.Markdown)
	}

	// Clipboard failures are logged, never surfaced as user-facing errors.
	if err := deps.Clip.Write(text); err != nil {
		deps.Logger.Error("clipboard write failed", "err", err)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Copied %d link(s)\n", count)
	return nil
}
