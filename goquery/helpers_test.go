package goquery_test

import (
	"fmt"
	"html"
	"strings"
)

// wikiPage wraps body in the markup of a saved wiki article.
func wikiPage(body string) string {
	return `<!DOCTYPE html>
<html>
<head><title>Wiki</title></head>
<body>
<nav><table class="article-table"><tr><th>Name</th><th>Number</th><th>Play</th><th>Effect</th></tr>
<tr><td>Navigation</td><td>1</td><td>Action</td><td>Not a card</td></tr></table></nav>
<div class="mw-parser-output">
` + body + `
</div>
</body>
</html>`
}

// viewSource renders page the way a browser saves its "view source" tab:
// every source line escaped inside its own td.line-content cell.
func viewSource(page string) string {
	var b strings.Builder
	b.WriteString(`<html><head><meta charset="utf-8"><title>view-source</title></head><body><table><tbody>`)
	for i, line := range strings.Split(page, "\n") {
		fmt.Fprintf(&b, `<tr><td class="line-number" value="%d"></td><td class="line-content"><span class="html-tag">%s</span></td></tr>`,
			i+1, html.EscapeString(line))
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}
