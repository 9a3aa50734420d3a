package cardex

import (
	"maps"
	"strings"
)

// Mappings translates identifiers used by the JSON exports into the ids and
// version names used in the output tables.
type Mappings struct {
	// FactionAliases maps export faction ids to output faction ids.
	FactionAliases map[string]string `yaml:"factionAliases"`

	// SourceVersions maps export source names to version names.
	SourceVersions map[string]string `yaml:"sourceVersions"`
}

// DefaultMappings returns the built-in mapping tables.
func DefaultMappings() *Mappings {
	return &Mappings{
		FactionAliases: map[string]string{
			"letnev":   "barony",
			"ghost":    "ghosts",
			"l1z1x":    "lizix",
			"naaz":     "nra",
			"ralnel":   "lizards",
			"keleresa": "keleres",
			"keleresm": "keleres",
			"keleresx": "keleres",
		},
		SourceVersions: map[string]string{
			"base":          "base game",
			"pok":           "pok",
			"codex1":        "codex 1",
			"codex2":        "codex 2",
			"codex3":        "codex 3",
			"codex4":        "codex 4",
			"thunders_edge": "thunders edge",
		},
	}
}

// Merge returns a copy of m with the entries of other layered on top.
func (m *Mappings) Merge(other *Mappings) *Mappings {
	out := &Mappings{
		FactionAliases: maps.Clone(m.FactionAliases),
		SourceVersions: maps.Clone(m.SourceVersions),
	}
	if out.FactionAliases == nil {
		out.FactionAliases = map[string]string{}
	}
	if out.SourceVersions == nil {
		out.SourceVersions = map[string]string{}
	}
	if other != nil {
		maps.Copy(out.FactionAliases, other.FactionAliases)
		maps.Copy(out.SourceVersions, other.SourceVersions)
	}
	return out
}

// FactionID returns the output faction id for an export faction id.
func (m *Mappings) FactionID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	if alias, ok := m.FactionAliases[strings.ToLower(id)]; ok {
		return alias
	}
	return id
}

// Version returns the version name for an export source, e.g. "codex3"
// becomes "codex 3" and "thunders_edge" becomes "thunders edge".
func (m *Mappings) Version(source string) string {
	s := strings.ToLower(strings.TrimSpace(source))
	if s == "" {
		return ""
	}
	if v, ok := m.SourceVersions[s]; ok {
		return v
	}
	if rest, ok := strings.CutPrefix(s, "codex"); ok && rest != "" {
		return "codex " + rest
	}
	return strings.ReplaceAll(s, "_", " ")
}
