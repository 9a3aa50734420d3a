package cardex_test

import (
	"testing"

	"github.com/fwojciec/cardex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProfile(t *testing.T) {
	t.Parallel()

	for _, name := range cardex.ProfileNames() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p, err := cardex.FindProfile(name)
			require.NoError(t, err)
			assert.Equal(t, name, p.Name)
			assert.Contains(t, p.Fields, "version")
			assert.NotNil(t, p.Layout(""))
		})
	}

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()

		_, err := cardex.FindProfile("planets")
		assert.Equal(t, cardex.ENOTFOUND, cardex.ErrorCode(err))
	})
}

func TestProfileNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"action_cards", "agendas", "exploration", "objectives"}, cardex.ProfileNames())
}

func TestFindProfile_ReturnsFreshProfiles(t *testing.T) {
	t.Parallel()

	a, err := cardex.FindProfile("objectives")
	require.NoError(t, err)
	a.Defaults.Attrs["when to score"] = "changed"

	b, err := cardex.FindProfile("objectives")
	require.NoError(t, err)
	assert.Equal(t, "status phase", b.Defaults.Attrs["when to score"])
}

func TestProfile_Accepts(t *testing.T) {
	t.Parallel()

	action := cardex.ActionCardsProfile()
	assert.False(t, action.Accepts(cardex.ExtractionContext{Category: "action"}))
	assert.True(t, action.Accepts(cardex.ExtractionContext{Category: "action", Version: "pok"}))
	assert.False(t, action.Accepts(cardex.ExtractionContext{Category: "action", Version: "pok", Suppressed: true}))

	exploration := cardex.ExplorationProfile()
	assert.False(t, exploration.Accepts(cardex.ExtractionContext{Version: "pok"}))
	assert.True(t, exploration.Accepts(cardex.ExtractionContext{Version: "pok", Category: "red"}))
}

func TestProfile_Layout(t *testing.T) {
	t.Parallel()

	p := cardex.ExplorationProfile()

	assert.Equal(t, "1", p.Layout("relic").Defaults["quantity"])
	assert.Same(t, p.Layout(""), p.Layout("green"))
}

func TestFormatForAgainst(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "both outcomes",
			in:   "For: Each player draws 1 action card. Against: Each player discards 1 action card.",
			want: "FOR: Each player draws 1 action card. | AGAINST: Each player discards 1 action card.",
		},
		{
			name: "against only",
			in:   "Against: Nothing happens.",
			want: "AGAINST: Nothing happens.",
		},
		{
			name: "across lines",
			in:   "For: Gain 1 command token. • Against: Lose 1 command token.",
			want: "FOR: Gain 1 command token. | AGAINST: Lose 1 command token.",
		},
		{
			name: "no markers",
			in:   "Elected player gains 1 victory point.",
			want: "Elected player gains 1 victory point.",
		},
		{
			name: "marker inside a word",
			in:   "Perform a tactical action before fortune.",
			want: "Perform a tactical action before fortune.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cardex.FormatForAgainst(tt.in))
		})
	}
}
