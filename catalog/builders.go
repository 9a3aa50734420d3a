package catalog

import (
	"slices"
	"strings"

	"github.com/fwojciec/cardex"
)

var techTypes = map[string]string{
	"UNITUPGRADE": "unit upgrade",
	"NONE":        "unit upgrade",
	"BIOTIC":      "green",
	"WARFARE":     "red",
	"PROPULSION":  "blue",
	"CYBERNETIC":  "yellow",
}

var requirementColors = map[rune]string{
	'B': "blue",
	'G': "green",
	'R': "red",
	'Y': "yellow",
}

type technology struct {
	Name         string   `json:"name"`
	Faction      string   `json:"faction"`
	Types        []string `json:"types"`
	Requirements string   `json:"requirements"`
	Text         string   `json:"text"`
	Source       string   `json:"source"`
}

// Technologies builds the technologies table. The unit column is reserved
// and left empty.
func (b *Builder) Technologies() (*cardex.Table, error) {
	techs, err := readSources(b.Dir, []source{
		{path: "technologies/pok.json"},
		{path: "technologies/te_techs.json"},
	}, func(t technology) string { return t.Faction })
	if err != nil {
		return nil, err
	}

	t := cardex.NewTable(KindTechnologies, []string{"name", "faction id", "type", "unit", "prerequisites", "effect", "version"})
	for _, tech := range techs {
		t.Rows = append(t.Rows, cardex.Row{
			"name":          strings.TrimSpace(tech.Name),
			"faction id":    b.Mappings.FactionID(tech.Faction),
			"type":          techType(tech.Types),
			"unit":          "",
			"prerequisites": prerequisites(tech.Requirements),
			"effect":        strings.TrimSpace(tech.Text),
			"version":       b.Mappings.Version(tech.Source),
		})
	}
	sortRows(t.Rows, "faction id", "type", "name")
	return t, nil
}

func techType(types []string) string {
	if len(types) == 0 {
		return ""
	}
	typ := strings.ToUpper(strings.TrimSpace(types[0]))
	if v, ok := techTypes[typ]; ok {
		return v
	}
	return strings.ToLower(typ)
}

// prerequisites converts requirement letters such as "BBY" to "[blue,blue,yellow]".
func prerequisites(req string) string {
	var colors []string
	for _, r := range strings.ToUpper(req) {
		if c, ok := requirementColors[r]; ok {
			colors = append(colors, c)
		}
	}
	return colorList(colors)
}

type breakthrough struct {
	Faction string   `json:"faction"`
	Name    string   `json:"name"`
	Synergy []string `json:"synergy"`
	Text    string   `json:"text"`
}

// Breakthroughs builds the breakthroughs table. Records without a faction
// are skipped.
func (b *Builder) Breakthroughs() (*cardex.Table, error) {
	items, err := readSources(b.Dir, []source{
		{path: "breakthroughs/te_breakthroughs.json"},
	}, func(bt breakthrough) string { return bt.Faction })
	if err != nil {
		return nil, err
	}

	t := cardex.NewTable(KindBreakthroughs, []string{"faction id", "name", "synergy", "effect"})
	for _, bt := range items {
		faction := b.Mappings.FactionID(bt.Faction)
		if faction == "" {
			continue
		}
		t.Rows = append(t.Rows, cardex.Row{
			"faction id": faction,
			"name":       strings.TrimSpace(bt.Name),
			"synergy":    synergy(bt.Synergy),
			"effect":     strings.TrimSpace(bt.Text),
		})
	}
	sortRows(t.Rows, "faction id", "name")
	return t, nil
}

// synergy maps tech types to colors. Unknown types, including NONE, are dropped.
func synergy(types []string) string {
	var colors []string
	for _, s := range types {
		typ := strings.ToUpper(strings.TrimSpace(s))
		if typ == "UNITUPGRADE" || typ == "NONE" {
			continue
		}
		if c, ok := techTypes[typ]; ok {
			colors = append(colors, c)
		}
	}
	return colorList(colors)
}

type ability struct {
	ID              string `json:"id"`
	Faction         string `json:"faction"`
	Name            string `json:"name"`
	PermanentEffect string `json:"permanentEffect"`
	Window          string `json:"window"`
	WindowEffect    string `json:"windowEffect"`
}

// FactionAbilities builds the faction abilities table for the given output
// faction ids. The "other" export contributes keleres only.
// Returns EINVALID if factionIDs is empty.
func (b *Builder) FactionAbilities(factionIDs []string) (*cardex.Table, error) {
	if len(factionIDs) == 0 {
		return nil, cardex.Errorf(cardex.EINVALID, "faction ids required")
	}
	items, err := readSources(b.Dir, []source{
		{path: "abilities/base.json"},
		{path: "abilities/pok.json"},
		{path: "abilities/te_abilities.json"},
		{path: "abilities/other.json", faction: "keleres"},
	}, func(a ability) string { return a.Faction })
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(factionIDs))
	for _, id := range factionIDs {
		wanted[id] = true
	}

	t := cardex.NewTable(KindFactionAbilities, []string{"faction id", "name", "text"})
	seen := make(map[[2]string]bool)
	for _, ab := range items {
		faction := b.Mappings.FactionID(ab.Faction)
		if !wanted[faction] {
			continue
		}
		key := [2]string{faction, ab.ID}
		if seen[key] {
			continue
		}
		seen[key] = true
		t.Rows = append(t.Rows, cardex.Row{
			"faction id": faction,
			"name":       strings.TrimSpace(ab.Name),
			"text":       abilityText(ab),
		})
	}
	sortRows(t.Rows, "faction id", "name")
	return t, nil
}

// abilityText joins the permanent effect with "window. window effect".
func abilityText(ab ability) string {
	var parts []string
	if p := strings.TrimSpace(ab.PermanentEffect); p != "" {
		parts = append(parts, p)
	}
	window := strings.TrimSpace(ab.Window)
	effect := strings.TrimSpace(ab.WindowEffect)
	switch {
	case window != "" && effect != "":
		parts = append(parts, window+". "+effect)
	case window != "":
		parts = append(parts, window)
	case effect != "":
		parts = append(parts, effect)
	}
	return strings.Join(parts, " ")
}

var leaderTypes = []string{"agent", "commander", "hero"}

type leader struct {
	Faction         string `json:"faction"`
	Type            string `json:"type"`
	Name            string `json:"name"`
	UnlockCondition string `json:"unlockCondition"`
	AbilityName     string `json:"abilityName"`
	AbilityWindow   string `json:"abilityWindow"`
	AbilityText     string `json:"abilityText"`
	Source          string `json:"source"`
}

// FactionLeaders builds the faction leaders table. Only agents, commanders
// and heroes are kept; the ability name is reported for heroes only.
func (b *Builder) FactionLeaders() (*cardex.Table, error) {
	items, err := readSources(b.Dir, []source{
		{path: "leaders/pok.json"},
		{path: "leaders/te_leaders.json"},
	}, func(l leader) string { return l.Faction })
	if err != nil {
		return nil, err
	}

	t := cardex.NewTable(KindFactionLeaders, []string{"faction id", "type", "name", "unlock condition", "ability name", "ability", "version"})
	for _, l := range items {
		faction := b.Mappings.FactionID(l.Faction)
		typ := strings.ToLower(strings.TrimSpace(l.Type))
		if faction == "" || !slices.Contains(leaderTypes, typ) {
			continue
		}
		var abilityName string
		if typ == "hero" {
			abilityName = strings.TrimSpace(l.AbilityName)
		}
		t.Rows = append(t.Rows, cardex.Row{
			"faction id":       faction,
			"type":             typ,
			"name":             strings.TrimSpace(l.Name),
			"unlock condition": strings.TrimSpace(l.UnlockCondition),
			"ability name":     abilityName,
			"ability":          joinNonEmpty(l.AbilityWindow, l.AbilityText),
			"version":          b.Mappings.Version(l.Source),
		})
	}
	sortRows(t.Rows, "faction id", "type", "name")
	return t, nil
}

func joinNonEmpty(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

type promissoryNote struct {
	Name    string `json:"name"`
	Faction string `json:"faction"`
	Text    string `json:"text"`
	Source  string `json:"source"`
}

// PromissoryNotes builds the promissory notes table. Records without a name
// or faction are skipped and duplicate rows are dropped.
func (b *Builder) PromissoryNotes() (*cardex.Table, error) {
	items, err := readSources(b.Dir, []source{
		{path: "promissory_notes/promissory_notes.json"},
		{path: "promissory_notes/thunders_edge.json"},
	}, func(pn promissoryNote) string { return pn.Faction })
	if err != nil {
		return nil, err
	}

	t := cardex.NewTable(KindPromissoryNotes, []string{"name", "faction id", "effect", "version"})
	seen := make(map[[4]string]bool)
	for _, pn := range items {
		name := strings.TrimSpace(pn.Name)
		faction := b.Mappings.FactionID(pn.Faction)
		if name == "" || faction == "" {
			continue
		}
		row := cardex.Row{
			"name":       name,
			"faction id": faction,
			"effect":     strings.TrimSpace(pn.Text),
			"version":    b.Mappings.Version(pn.Source),
		}
		key := [4]string{row["name"], row["faction id"], row["effect"], row["version"]}
		if seen[key] {
			continue
		}
		seen[key] = true
		t.Rows = append(t.Rows, row)
	}
	sortRows(t.Rows, "version", "faction id", "name")
	return t, nil
}

// sortRows stably sorts rows by the given fields, case-insensitively.
func sortRows(rows []cardex.Row, fields ...string) {
	key := func(r cardex.Row) []string {
		k := make([]string, len(fields))
		for i, f := range fields {
			k[i] = r[f]
		}
		return k
	}
	slices.SortStableFunc(rows, func(a, b cardex.Row) int {
		return compareFold(key(a), key(b))
	})
}
