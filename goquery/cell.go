package goquery

import (
	"strings"

	"github.com/fwojciec/cardex"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// nodeText returns the normalized text of n with its text runs joined by spaces.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return cardex.NormalizeText(strings.Join(parts, " "))
}

// nodeLines returns the text of n with each logical line normalized on its
// own. Lines break at <br> and around block elements. Multiple non-empty
// lines are joined with cardex.LineSeparator.
func nodeLines(n *html.Node) string {
	var lines []string
	var cur []string
	flush := func() {
		if line := cardex.NormalizeText(strings.Join(cur, " ")); line != "" {
			lines = append(lines, line)
		}
		cur = cur[:0]
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			cur = append(cur, n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style:
				return
			case atom.Br:
				flush()
				return
			}
		}
		block := isBlock(n)
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	flush()

	return strings.Join(lines, cardex.LineSeparator)
}

func isBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Li, atom.Ul, atom.Ol:
		return true
	}
	return false
}

// hasClass reports whether n carries class in its class attribute.
func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
