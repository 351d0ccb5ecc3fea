package linktray

// Clipboard places text on the system clipboard. Write failures are logged
// by callers and never surfaced as user-facing errors.
type Clipboard interface {
	Write(text string) error
}
