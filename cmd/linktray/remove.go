package main

import (
	"fmt"

	"github.com/mwalczak/linktray"
)

// Run executes the remove command. Positions past the end of the list are a
// no-op in the store, so this still reports success.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	if c.Position < 1 {
		fmt.Fprintf(deps.Stderr, "error: position must be 1 or greater\n")
		return linktray.Errorf(linktray.EINVALID, "position must be 1 or greater")
	}

	if err := deps.Store.RemoveAt(deps.Ctx, c.Position-1); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linktray.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Removed position %d\n", c.Position)
	return nil
}
