package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardex"
	"github.com/fwojciec/cardex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func firstTable(t *testing.T, markup string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	table := doc.Find("table").First()
	require.Equal(t, 1, table.Length())
	return table
}

func TestClassify(t *testing.T) {
	t.Parallel()

	action := cardex.ActionCardsProfile().Layout("action")
	exploration := cardex.ExplorationProfile().Layout("blue")
	relic := cardex.ExplorationProfile().Layout("relic")

	t.Run("maps header keywords to columns", func(t *testing.T) {
		t.Parallel()

		table := firstTable(t, `<table>
<tr><th>Effect</th><th>Name</th><th>Play</th><th>Quantity</th></tr>
<tr><td>e</td><td>n</td><td>p</td><td>1</td></tr></table>`)

		cls := goquery.Classify(table, action)

		assert.True(t, cls.Understood)
		assert.Equal(t, cardex.ModeHeader, cls.Mode)
		assert.Equal(t, map[string]int{"effect": 0, "name": 1, "timing": 2, "quantity": 3}, cls.Columns)
	})

	t.Run("rejects tables missing a required header", func(t *testing.T) {
		t.Parallel()

		table := firstTable(t, `<table>
<tr><th>Name</th><th>Quantity</th></tr>
<tr><td>n</td><td>1</td></tr></table>`)

		cls := goquery.Classify(table, action)

		assert.False(t, cls.Understood)
		assert.Equal(t, cardex.ModeNone, cls.Mode)
	})

	t.Run("falls back to the positional shape", func(t *testing.T) {
		t.Parallel()

		table := firstTable(t, `<table>
<tr><th>Card</th><th>#</th><th>Text</th></tr>
<tr><td>Freelancers</td><td>3</td><td>Produce 1 unit.</td></tr></table>`)

		cls := goquery.Classify(table, exploration)

		require.True(t, cls.Understood)
		assert.Equal(t, cardex.ModeShape, cls.Mode)
		assert.Equal(t, map[string]int{"name": 0, "quantity": 1, "effect": 2}, cls.Columns)
	})

	t.Run("requires a bare integer in numeric positions", func(t *testing.T) {
		t.Parallel()

		table := firstTable(t, `<table>
<tr><td>Freelancers</td><td>three</td><td>Produce 1 unit.</td></tr></table>`)

		cls := goquery.Classify(table, exploration)

		assert.False(t, cls.Understood)
	})

	t.Run("requires every positioned cell to be filled", func(t *testing.T) {
		t.Parallel()

		table := firstTable(t, `<table>
<tr><td>Freelancers</td><td>3</td><td> </td></tr></table>`)

		cls := goquery.Classify(table, exploration)

		assert.False(t, cls.Understood)
	})

	t.Run("tries shapes in order", func(t *testing.T) {
		t.Parallel()

		table := firstTable(t, `<table>
<tr><td>Dominus Orb</td><td>Purge this card.</td></tr></table>`)

		cls := goquery.Classify(table, relic)

		require.True(t, cls.Understood)
		assert.Equal(t, []string{"name", "effect"}, cls.Shape.Columns)
	})

	t.Run("understands nothing without rows", func(t *testing.T) {
		t.Parallel()

		table := firstTable(t, `<table></table>`)

		assert.False(t, goquery.Classify(table, action).Understood)
		assert.False(t, goquery.Classify(table, nil).Understood)
	})
}

func TestExtractRows(t *testing.T) {
	t.Parallel()

	p := cardex.ExplorationProfile()
	layout := p.Layout("relic")
	table := firstTable(t, `<table>
<tr><td>Dominus Orb</td><td>Purge this card.</td></tr>
<tr><td>Three</td><td>cells</td><td>here</td></tr>
<tr><td>Shard of the Throne</td><td>Gain 1   victory&nbsp;point.</td></tr>
</table>`)
	ctx := cardex.ExtractionContext{Version: "pok", Category: "relic"}

	rows := goquery.ExtractRows(table, p, layout, goquery.Classify(table, layout), ctx)

	require.Len(t, rows, 2)
	assert.Equal(t, cardex.Row{
		"name":     "Shard of the Throne",
		"type":     "relic",
		"quantity": "1",
		"effect":   "Gain 1 victory point.",
		"version":  "pok",
	}, rows[1])
}
