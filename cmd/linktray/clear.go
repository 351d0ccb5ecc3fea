package main

import (
	"fmt"

	"github.com/mwalczak/linktray"
)

// Run executes the clear command.
func (c *ClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return linktray.Errorf(linktray.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Store.Clear(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linktray.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Deleted all links")

	if c.Session {
		id, err := deps.DB.ResetSession(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", linktray.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Started session %s\n", id)
	}

	return nil
}
