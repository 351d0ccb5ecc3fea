// Package goquery provides HTML anchor matching on top of PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalczak/linktray"
)

// AnchorText scans html for anchor elements whose href, resolved against
// baseURL, equals target, and returns the trimmed text of the first match
// that has non-empty text. An empty result means no matching anchor carried
// text; callers fall back to a domain-derived title.
//
// Matching resolves every candidate href instead of querying on the raw
// attribute value, so hrefs containing selector metacharacters need no
// escaping.
func AnchorText(html, baseURL, target string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", linktray.Errorf(linktray.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", linktray.Errorf(linktray.EINVALID, "failed to parse HTML: %v", err)
	}

	var text string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return true
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return true
		}
		if base.ResolveReference(ref).String() != target {
			return true
		}

		if t := strings.TrimSpace(sel.Text()); t != "" {
			text = t
			return false
		}
		return true
	})

	return text, nil
}
