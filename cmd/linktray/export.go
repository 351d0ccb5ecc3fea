package main

import (
	"fmt"

	"github.com/mwalczak/linktray"
	"github.com/mwalczak/linktray/etree"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	links, err := deps.Store.Links(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linktray.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "xbel":
		return etree.WriteXBEL(deps.Stdout, "linktray session", links)
	case "markdown":
		fmt.Fprintln(deps.Stdout, linktray.FormatLinksBulleted(links, true))
	default:
		fmt.Fprintln(deps.Stdout, linktray.FormatLinks(links, false))
	}

	return nil
}
