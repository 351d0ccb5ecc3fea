// Package etree renders the link list as XBEL bookmark documents.
package etree

import (
	"io"

	"github.com/beevik/etree"

	"github.com/mwalczak/linktray"
)

// WriteXBEL writes links as an XBEL 1.0 document to w, in list order.
// XBEL is the XML Bookmark Exchange Language understood by most browsers'
// bookmark importers.
func WriteXBEL(w io.Writer, title string, links []linktray.Link) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("xbel")
	root.CreateAttr("version", "1.0")
	if title != "" {
		root.CreateElement("title").SetText(title)
	}

	for _, l := range links {
		bookmark := root.CreateElement("bookmark")
		bookmark.CreateAttr("href", l.URL)
		bookmark.CreateElement("title").SetText(l.Title)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}
