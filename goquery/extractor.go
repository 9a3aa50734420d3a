package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Extractor implements cardex.Extractor at compile time.
var _ cardex.Extractor = (*Extractor)(nil)

// Extractor walks a wiki page once, in document order, feeding headings to
// a context tracker and data tables to the classifier and row extractor.
type Extractor struct {
	profile *cardex.Profile
}

// NewExtractor creates a new Extractor for the given profile.
func NewExtractor(p *cardex.Profile) *Extractor {
	return &Extractor{profile: p}
}

// Extract parses raw and returns the rows of every data table in document
// order. Returns ENOTFOUND if the page has no content root.
func (e *Extractor) Extract(raw []byte) ([]cardex.Row, error) {
	doc, err := ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	root := contentRoot(doc, e.profile.ContentSelector)
	if root == nil {
		return nil, cardex.Errorf(cardex.ENOTFOUND, "no content root found")
	}

	w := &walker{profile: e.profile, tracker: cardex.NewTracker(e.profile)}
	w.walk(root)
	return w.rows, nil
}

// contentRoot returns the main content region, falling back to the body.
func contentRoot(doc *goquery.Document, selector string) *html.Node {
	if selector != "" {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel.Get(0)
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body.Get(0)
	}
	return nil
}

// walker holds the state of a single traversal.
type walker struct {
	profile *cardex.Profile
	tracker *cardex.Tracker
	rows    []cardex.Row
}

// walk visits the descendants of n depth-first in document order.
func (w *walker) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			w.visit(c)
		}
		w.walk(c)
	}
}

func (w *walker) visit(n *html.Node) {
	if level := headingLevel(n); level > 0 {
		if w.profile.TracksLevel(level) {
			w.tracker.Observe(headingOf(n, level))
		}
		return
	}

	if n.DataAtom != atom.Table {
		return
	}
	if w.profile.TableClass != "" && !hasClass(n, w.profile.TableClass) {
		return
	}

	ctx := w.tracker.Context()
	if !w.profile.Accepts(ctx) {
		return
	}
	table := goquery.NewDocumentFromNode(n).Selection
	layout := w.profile.Layout(ctx.Category)
	cls := Classify(table, layout)
	w.rows = append(w.rows, ExtractRows(table, w.profile, layout, cls, ctx)...)
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return int(n.Data[1] - '0')
	}
	return 0
}

// headingOf builds a Heading from a heading element. MediaWiki wraps the
// title in span.mw-headline next to "[edit]" links, so that span is
// preferred when present.
func headingOf(n *html.Node, level int) cardex.Heading {
	h := cardex.Heading{Level: level, Text: nodeText(n), ID: attr(n, "id")}
	if span := findHeadline(n); span != nil {
		h.Text = nodeText(span)
		if id := attr(span, "id"); id != "" {
			h.ID = id
		}
	}
	return h
}

func findHeadline(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.DataAtom == atom.Span && hasClass(c, "mw-headline") {
			return c
		}
		if found := findHeadline(c); found != nil {
			return found
		}
	}
	return nil
}
