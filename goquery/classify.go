package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardex"
)

// Classify decides whether table is a data table for layout and which
// columns carry which fields. Header keywords are tried first; positional
// shapes are the fallback for tables without usable headers.
func Classify(table *goquery.Selection, layout *cardex.Layout) cardex.Classification {
	if layout == nil {
		return cardex.Classification{}
	}
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return cardex.Classification{}
	}

	if layout.HasHeaderRoles() {
		if cols, ok := classifyHeader(rows.First(), layout); ok {
			return cardex.Classification{
				Understood: true,
				Mode:       cardex.ModeHeader,
				Columns:    cols,
			}
		}
	}

	for _, shape := range layout.Shapes {
		if hasShapedRow(rows, shape, layout) {
			return cardex.Classification{
				Understood: true,
				Mode:       cardex.ModeShape,
				Columns:    shapeColumns(shape),
				Shape:      shape,
			}
		}
	}

	return cardex.Classification{}
}

// headerLabels returns the lower-cased labels of a header row.
func headerLabels(tr *goquery.Selection) []string {
	cells := tr.ChildrenFiltered("th, td").Nodes
	labels := make([]string, len(cells))
	for i, c := range cells {
		labels[i] = strings.ToLower(nodeText(c))
	}
	return labels
}

func classifyHeader(tr *goquery.Selection, layout *cardex.Layout) (map[string]int, bool) {
	labels := headerLabels(tr)
	cols := make(map[string]int)
	for _, role := range layout.Roles {
		idx, ok := findColumn(labels, role)
		if ok {
			cols[role.Field] = idx
			continue
		}
		if !role.Optional {
			return nil, false
		}
	}
	return cols, true
}

// findColumn returns the first label index matching any of the role's keywords.
func findColumn(labels []string, role cardex.Role) (int, bool) {
	for i, label := range labels {
		for _, kw := range role.Keywords {
			if keywordMatches(label, kw, role.Match) {
				return i, true
			}
		}
	}
	return 0, false
}

func keywordMatches(label, keyword string, mode cardex.KeywordMatch) bool {
	switch mode {
	case cardex.MatchExact:
		return label == keyword
	case cardex.MatchPrefix:
		return strings.HasPrefix(label, keyword)
	}
	return strings.Contains(label, keyword)
}

// hasShapedRow reports whether some row fits shape with every positioned
// cell non-empty and every numeric cell a bare integer.
func hasShapedRow(rows *goquery.Selection, shape cardex.Shape, layout *cardex.Layout) bool {
	found := false
	rows.EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.ChildrenFiltered("td").Nodes
		if !shape.Fits(len(cells)) {
			return true
		}
		for i, field := range shape.Columns {
			if field == "" {
				continue
			}
			text := nodeText(cells[i])
			if text == "" {
				return true
			}
			if role, ok := layout.Role(field); ok && role.Numeric != cardex.NumericNone && !cardex.IsInteger(text) {
				return true
			}
		}
		found = true
		return false
	})
	return found
}

func shapeColumns(shape cardex.Shape) map[string]int {
	cols := make(map[string]int, len(shape.Columns))
	for i, field := range shape.Columns {
		if field != "" {
			cols[field] = i
		}
	}
	return cols
}
