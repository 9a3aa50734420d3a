package cardex_test

import (
	"regexp"
	"testing"

	"github.com/fwojciec/cardex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heading(text string) cardex.Heading {
	return cardex.Heading{Level: 2, Text: text}
}

func TestTracker(t *testing.T) {
	t.Parallel()

	t.Run("starts from the profile defaults", func(t *testing.T) {
		t.Parallel()

		tr := cardex.NewTracker(cardex.ObjectivesProfile())

		ctx := tr.Context()
		assert.Equal(t, "base game", ctx.Version)
		assert.Empty(t, ctx.Category)
		assert.Equal(t, "status phase", ctx.Attrs["when to score"])
	})

	t.Run("ignores unrecognized headings", func(t *testing.T) {
		t.Parallel()

		tr := cardex.NewTracker(cardex.ActionCardsProfile())
		require.True(t, tr.Observe(heading("Prophecy of Kings")))
		before := tr.Context()

		assert.False(t, tr.Observe(heading("Notes")))
		assert.Equal(t, before, tr.Context())
	})

	t.Run("suppression lasts until a recognized heading", func(t *testing.T) {
		t.Parallel()

		tr := cardex.NewTracker(cardex.ActionCardsProfile())
		tr.Observe(heading("Base Game"))

		assert.True(t, tr.Observe(heading("Twilight's Fall Variant")))
		assert.True(t, tr.Context().Suppressed)
		assert.Empty(t, tr.Context().Category)

		tr.Observe(heading("Card List"))
		assert.True(t, tr.Context().Suppressed)

		tr.Observe(heading("Prophecy of Kings"))
		ctx := tr.Context()
		assert.False(t, ctx.Suppressed)
		assert.Equal(t, "action", ctx.Category)
		assert.Equal(t, "pok", ctx.Version)
	})

	t.Run("keeps suppression through subsection headings", func(t *testing.T) {
		t.Parallel()

		tr := cardex.NewTracker(cardex.AgendasProfile())

		require.True(t, tr.Observe(heading("Twilight's Fall Variant")))
		assert.True(t, tr.Observe(heading("Laws")))
		ctx := tr.Context()
		assert.True(t, ctx.Suppressed)
		assert.Empty(t, ctx.Category)
		assert.Equal(t, "Law", ctx.Attrs["type"])

		assert.True(t, tr.Observe(heading("Agenda Cards")))
		ctx = tr.Context()
		assert.False(t, ctx.Suppressed)
		assert.Equal(t, "agenda", ctx.Category)
		assert.Empty(t, ctx.Attrs["type"])
	})

	t.Run("applies only the first matching rule per target", func(t *testing.T) {
		t.Parallel()

		p := &cardex.Profile{
			Rules: []cardex.HeadingRule{
				{Kind: cardex.RuleVersion, Match: cardex.ContainsAll("first", "edition")},
				{Kind: cardex.RuleVersion, Match: cardex.ContainsAll("second", "edition")},
				{Kind: cardex.RuleCategory, Match: cardex.ContainsAll("cards", "edition")},
			},
		}
		tr := cardex.NewTracker(p)

		tr.Observe(heading("Fourth Edition"))

		assert.Equal(t, "first", tr.Context().Version)
		assert.Equal(t, "cards", tr.Context().Category)
	})

	t.Run("rule attributes travel with the rule", func(t *testing.T) {
		t.Parallel()

		tr := cardex.NewTracker(cardex.ObjectivesProfile())

		tr.Observe(cardex.Heading{Level: 2, ID: "Secret_Objectives"})
		tr.Observe(cardex.Heading{Level: 3, ID: "Agenda_Phase"})
		assert.Equal(t, "agenda phase", tr.Context().Attrs["when to score"])

		tr.Observe(cardex.Heading{Level: 2, ID: "Stage_I_Objectives"})
		ctx := tr.Context()
		assert.Equal(t, "stage 1 public", ctx.Category)
		assert.Equal(t, "status phase", ctx.Attrs["when to score"])
	})

	t.Run("snapshots are independent", func(t *testing.T) {
		t.Parallel()

		tr := cardex.NewTracker(cardex.ObjectivesProfile())
		snap := tr.Context()
		snap.Attrs["when to score"] = "changed"

		assert.Equal(t, "status phase", tr.Context().Attrs["when to score"])
	})
}

func TestMatchers(t *testing.T) {
	t.Parallel()

	t.Run("ContainsAll is case insensitive", func(t *testing.T) {
		t.Parallel()

		v, ok := cardex.ContainsAll("pok", "prophecy of kings")(heading("PROPHECY OF KINGS Expansion"))
		assert.True(t, ok)
		assert.Equal(t, "pok", v)
	})

	t.Run("TitleIs matches whole titles", func(t *testing.T) {
		t.Parallel()

		m := cardex.TitleIs("", "agendas")
		_, ok := m(heading("Agendas"))
		assert.True(t, ok)
		_, ok = m(heading("Agendas by Type"))
		assert.False(t, ok)
	})

	t.Run("Pattern expands submatches", func(t *testing.T) {
		t.Parallel()

		m := cardex.Pattern(regexp.MustCompile(`codex\s*(\d)`), "codex $1")
		v, ok := m(heading("Codex 3: Vigil"))
		assert.True(t, ok)
		assert.Equal(t, "codex 3", v)
	})

	t.Run("id matchers", func(t *testing.T) {
		t.Parallel()

		h := cardex.Heading{ID: "Prophecy_of_Kings_Expansion_2"}

		_, ok := cardex.IDPrefix("pok", "Prophecy_of_Kings_Expansion")(h)
		assert.True(t, ok)
		_, ok = cardex.IDContains("pok", "Kings")(h)
		assert.True(t, ok)
		_, ok = cardex.IDIs("pok", "Prophecy_of_Kings_Expansion")(h)
		assert.False(t, ok)
		_, ok = cardex.IDContains("x", "")(cardex.Heading{})
		assert.False(t, ok)
	})
}
