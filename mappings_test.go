package cardex_test

import (
	"testing"

	"github.com/fwojciec/cardex"
	"github.com/stretchr/testify/assert"
)

func TestMappings_FactionID(t *testing.T) {
	t.Parallel()

	m := cardex.DefaultMappings()

	assert.Equal(t, "barony", m.FactionID("letnev"))
	assert.Equal(t, "keleres", m.FactionID("KeleresM"))
	assert.Equal(t, "sol", m.FactionID(" sol "))
	assert.Empty(t, m.FactionID(""))
}

func TestMappings_Version(t *testing.T) {
	t.Parallel()

	m := cardex.DefaultMappings()

	assert.Equal(t, "base game", m.Version("base"))
	assert.Equal(t, "codex 3", m.Version("Codex3"))
	assert.Equal(t, "codex 7", m.Version("codex7"))
	assert.Equal(t, "thunders edge", m.Version("thunders_edge"))
	assert.Equal(t, "discordant stars", m.Version("discordant_stars"))
	assert.Empty(t, m.Version(""))
}

func TestMappings_Merge(t *testing.T) {
	t.Parallel()

	base := cardex.DefaultMappings()
	merged := base.Merge(&cardex.Mappings{
		FactionAliases: map[string]string{"letnev": "letnev", "custom": "mine"},
		SourceVersions: map[string]string{"base": "core"},
	})

	assert.Equal(t, "letnev", merged.FactionID("letnev"))
	assert.Equal(t, "mine", merged.FactionID("custom"))
	assert.Equal(t, "core", merged.Version("base"))
	assert.Equal(t, "pok", merged.Version("pok"))

	// The receiver is left untouched.
	assert.Equal(t, "barony", base.FactionID("letnev"))
	assert.Equal(t, "base game", base.Version("base"))
}

func TestMappings_MergeNil(t *testing.T) {
	t.Parallel()

	merged := (&cardex.Mappings{}).Merge(nil)

	assert.NotNil(t, merged.FactionAliases)
	assert.NotNil(t, merged.SourceVersions)
}
