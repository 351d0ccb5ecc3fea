// Package clipboard provides the system clipboard collaborator.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/mwalczak/linktray"
)

// Ensure Clipboard implements linktray.Clipboard at compile time.
var _ linktray.Clipboard = (*Clipboard)(nil)

// Clipboard writes text to the system clipboard using the platform's
// native clipboard facility.
type Clipboard struct{}

// New creates a new Clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Write places text on the system clipboard.
func (c *Clipboard) Write(text string) error {
	return clipboard.WriteAll(text)
}
