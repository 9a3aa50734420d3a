// Package goquery implements the HTML side of cardex: view-source
// reconstruction, the heading-driven tree walk, table classification and
// row extraction.
package goquery

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardex"
	"golang.org/x/net/html/charset"
)

// lineContentSelector matches the per-line cells of a browser view-source capture.
const lineContentSelector = "table td.line-content"

// ParseDocument parses raw page bytes into a document. Browser "view-source"
// captures, where each source line sits in its own td.line-content cell, are
// unwrapped first: the cell texts are joined with newlines and the result is
// parsed as the captured page. Other input is parsed as is.
func ParseDocument(raw []byte) (*goquery.Document, error) {
	doc, err := parse(decode(raw))
	if err != nil {
		return nil, err
	}

	cells := doc.Find(lineContentSelector)
	if cells.Length() == 0 {
		return doc, nil
	}

	lines := make([]string, 0, cells.Length())
	cells.Each(func(_ int, cell *goquery.Selection) {
		// Text keeps the line exactly as captured, indentation included.
		lines = append(lines, cell.Text())
	})
	return parse(strings.Join(lines, "\n"))
}

// IsViewSource reports whether doc is a view-source capture.
func IsViewSource(doc *goquery.Document) bool {
	return doc.Find(lineContentSelector).Length() > 0
}

func parse(text string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, cardex.Errorf(cardex.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// decode converts raw bytes to UTF-8 text. A BOM is always honored. A meta
// tag or a sniffed guess applies only when raw is not valid UTF-8, so a
// UTF-8 page that misdeclares its charset is kept as is. Invalid sequences
// are dropped.
func decode(raw []byte) string {
	enc, name, certain := charset.DetermineEncoding(raw, "text/html")
	if name != "utf-8" && (certain || !utf8.Valid(raw)) {
		if b, err := enc.NewDecoder().Bytes(raw); err == nil {
			return string(b)
		}
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	return strings.ToValidUTF8(string(raw), "")
}
