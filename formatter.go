package linktray

import "strings"

// FormatLink renders a single link. With markdown it produces
// "[title](url)"; otherwise just the URL. Markdown special characters in
// the title are not escaped.
func FormatLink(link Link, markdown bool) string {
	if markdown {
		return "[" + link.Title + "](" + link.URL + ")"
	}
	return link.URL
}

// FormatLinks renders links one per line, in list order.
func FormatLinks(links []Link, markdown bool) string {
	lines := make([]string, 0, len(links))
	for _, l := range links {
		lines = append(lines, FormatLink(l, markdown))
	}
	return strings.Join(lines, "\n")
}

// FormatLinksBulleted is FormatLinks with each line prefixed by "- ".
func FormatLinksBulleted(links []Link, markdown bool) string {
	lines := make([]string, 0, len(links))
	for _, l := range links {
		lines = append(lines, "- "+FormatLink(l, markdown))
	}
	return strings.Join(lines, "\n")
}
