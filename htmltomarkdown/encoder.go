// Package htmltomarkdown renders tables as Markdown using html-to-markdown.
package htmltomarkdown

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/cardex"
)

// Ensure Encoder implements cardex.TableEncoder at compile time.
var _ cardex.TableEncoder = (*Encoder)(nil)

// Encoder writes a table as a Markdown document: a level one heading with
// the table name followed by a pipe table.
type Encoder struct {
	conv *converter.Converter
}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Encoder{conv: conv}
}

// Encode writes t to w.
func (e *Encoder) Encode(w io.Writer, t *cardex.Table) error {
	if err := t.Validate(); err != nil {
		return err
	}

	md, err := e.conv.ConvertString(renderHTML(t))
	if err != nil {
		return fmt.Errorf("convert table: %w", err)
	}

	_, err = io.WriteString(w, strings.TrimSpace(md)+"\n")
	return err
}

// renderHTML builds an HTML document holding t as a single table.
func renderHTML(t *cardex.Table) string {
	var b strings.Builder
	b.WriteString("<h1>")
	b.WriteString(html.EscapeString(t.Name))
	b.WriteString("</h1>\n<table>\n<thead><tr>")
	for _, f := range t.Fields {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(f))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, rec := range t.Records() {
		b.WriteString("<tr>")
		for _, v := range rec {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(v))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}
