package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardex"
	"golang.org/x/net/html"
)

// ExtractRows returns the valid rows of a classified table, stamped with ctx.
// Rows missing a required cell or carrying a malformed number are dropped.
func ExtractRows(table *goquery.Selection, p *cardex.Profile, layout *cardex.Layout, cls cardex.Classification, ctx cardex.ExtractionContext) []cardex.Row {
	if !cls.Understood || layout == nil {
		return nil
	}

	var rows []cardex.Row
	add := func(cells []*html.Node) {
		if row, ok := buildRow(cells, p, layout, cls.Columns, ctx); ok {
			rows = append(rows, row)
		}
	}

	trs := table.Find("tr")
	switch cls.Mode {
	case cardex.ModeHeader:
		if trs.Length() < 2 {
			return nil
		}
		need := requiredIndex(layout, cls.Columns)
		trs.Slice(1, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
			cells := tr.ChildrenFiltered("th, td").Nodes
			if len(cells) == 0 || len(cells) <= need {
				return
			}
			add(cells)
		})
	case cardex.ModeShape:
		trs.Each(func(_ int, tr *goquery.Selection) {
			cells := tr.ChildrenFiltered("td").Nodes
			if !cls.Shape.Fits(len(cells)) {
				return
			}
			add(cells)
		})
	}
	return rows
}

// requiredIndex returns the highest column index of a non-optional role.
func requiredIndex(layout *cardex.Layout, cols map[string]int) int {
	need := -1
	for _, role := range layout.Roles {
		if role.Optional {
			continue
		}
		if idx, ok := cols[role.Field]; ok && idx > need {
			need = idx
		}
	}
	return need
}

func buildRow(cells []*html.Node, p *cardex.Profile, layout *cardex.Layout, cols map[string]int, ctx cardex.ExtractionContext) (cardex.Row, bool) {
	values := make(map[string]string, len(p.Fields))

	for field, idx := range cols {
		if idx >= len(cells) {
			continue
		}
		role, ok := layout.Role(field)
		if !ok {
			values[field] = nodeText(cells[idx])
			continue
		}
		text, ok := cellValue(cells[idx], role)
		if !ok {
			return nil, false
		}
		values[field] = text
	}

	for k, v := range layout.Defaults {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}
	for k, v := range ctx.Attrs {
		if _, ok := values[k]; !ok {
			values[k] = v
		}
	}
	values["version"] = ctx.Version
	if p.CategoryField != "" {
		values[p.CategoryField] = ctx.Category
	}

	row := make(cardex.Row, len(p.Fields))
	for _, f := range p.Fields {
		row[f] = values[f]
	}
	return row, true
}

// cellValue reads and validates one cell for role.
func cellValue(cell *html.Node, role cardex.Role) (string, bool) {
	var text string
	if role.MultiLine {
		text = nodeLines(cell)
	} else {
		text = nodeText(cell)
	}

	if role.Required && text == "" {
		return "", false
	}
	switch role.Numeric {
	case cardex.NumericExact:
		if !cardex.IsInteger(text) {
			return "", false
		}
	case cardex.NumericLeading:
		n, ok := cardex.LeadingInteger(text)
		if !ok {
			return "", false
		}
		text = n
	}

	if role.Format != nil {
		text = role.Format(text)
	}
	return text, true
}
