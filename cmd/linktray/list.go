package main

import (
	"fmt"

	"github.com/mwalczak/linktray"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	links, err := deps.Store.Links(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", linktray.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "No links captured. Use 'linktray capture' to add one.")
		return nil
	}

	for i, l := range links {
		fmt.Fprintf(deps.Stdout, "%2d  %s  %s\n", i+1, l.Title, l.URL)
	}

	return nil
}
