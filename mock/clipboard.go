package mock

import "github.com/mwalczak/linktray"

var _ linktray.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of linktray.Clipboard.
type Clipboard struct {
	WriteFn func(text string) error
}

func (c *Clipboard) Write(text string) error {
	return c.WriteFn(text)
}
