package linktray

import (
	"net/url"
	"strings"
)

// Link represents a captured link. Identity for deduplication is the URL
// alone; two links with the same URL and different titles are the same link.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Validate returns an error if the link contains invalid fields.
func (l *Link) Validate() error {
	if strings.TrimSpace(l.Title) == "" {
		return Errorf(EINVALID, "link title required")
	}
	if !IsWebURL(l.URL) {
		return Errorf(EINVALID, "link URL must be an absolute http(s) URL")
	}
	return nil
}

// IsWebURL reports whether s is an absolute http or https URL.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// DomainTitle derives a fallback title from a URL: the hostname with a
// leading "www." label stripped. A URL that does not parse yields the
// literal "Link" (should not happen after prior validation).
func DomainTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "Link"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// NewLink builds a Link from a URL and a candidate title. A candidate is
// accepted only if non-empty after trimming; otherwise the title falls back
// to DomainTitle. The URL is kept verbatim.
func NewLink(rawURL, title string) Link {
	t := strings.TrimSpace(title)
	if t == "" {
		t = DomainTitle(rawURL)
	}
	return Link{Title: t, URL: rawURL}
}

// LinkFromSelection interprets selected text as a link. The text is trimmed
// and must parse as an absolute http(s) URL; anything else returns nil.
// Selected text that is not a URL is deliberately ignored, not an error.
func LinkFromSelection(text string) *Link {
	trimmed := strings.TrimSpace(text)
	if !IsWebURL(trimmed) {
		return nil
	}
	l := NewLink(trimmed, "")
	return &l
}
