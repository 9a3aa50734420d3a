package cardex

import (
	"regexp"
	"strings"
)

const (
	wikiContentSelector = "div.mw-parser-output"
	wikiTableClass      = "article-table"
)

var wikiHeadingLevels = []int{2, 3, 4}

// ActionCardsProfile extracts the action card deck tables.
func ActionCardsProfile() *Profile {
	return &Profile{
		Name:            "action_cards",
		Fields:          []string{"name", "quantity", "timing", "effect", "version"},
		HeadingLevels:   wikiHeadingLevels,
		ContentSelector: wikiContentSelector,
		TableClass:      wikiTableClass,
		Defaults:        ExtractionContext{Category: "action"},
		RequireVersion:  true,
		Rules: []HeadingRule{
			{Kind: RuleSuppress, Match: ContainsAll("", "twilight", "fall", "variant")},
			{Kind: RuleVersion, Match: ContainsAll("pok", "prophecy of kings")},
			{Kind: RuleVersion, Match: Pattern(regexp.MustCompile(`\bcodex\s*(i|1)\b`), "codex 1")},
			{Kind: RuleVersion, Match: Pattern(regexp.MustCompile(`\bthunder.?s edge\b`), "thunders edge")},
			{Kind: RuleVersion, Match: ContainsAll("base game", "twilight imperium", "fourth edition")},
			{Kind: RuleVersion, Match: ContainsAll("base game", "base", "game")},
		},
		Layouts: map[string]*Layout{
			"": {
				Roles: []Role{
					{Field: "name", Keywords: []string{"name"}, Required: true},
					{Field: "quantity", Keywords: []string{"number in deck", "quantity", "number"}, Numeric: NumericLeading},
					{Field: "timing", Keywords: []string{"play"}},
					{Field: "effect", Keywords: []string{"effect"}, Required: true},
				},
			},
		},
	}
}

// AgendasProfile extracts law and directive agenda tables.
func AgendasProfile() *Profile {
	return &Profile{
		Name:            "agendas",
		Fields:          []string{"name", "type", "elect", "effect", "version"},
		HeadingLevels:   wikiHeadingLevels,
		ContentSelector: wikiContentSelector,
		TableClass:      wikiTableClass,
		Defaults:        ExtractionContext{Category: "agenda", Version: "base game"},
		Rules: []HeadingRule{
			{Kind: RuleSuppress, Match: ContainsAll("", "twilight", "fall", "variant")},
			{Kind: RuleVersion, Match: ContainsAll("pok", "prophecy of kings")},
			{Kind: RuleVersion, Match: ContainsAll("base game", "twilight imperium", "fourth edition")},
			{Kind: RuleVersion, Match: ContainsAll("base game", "base game")},
			{Kind: RuleAttr, Key: "type", Match: TitleIs("", "agenda cards", "agendas")},
			{Kind: RuleAttr, Key: "type", Match: ContainsAll("Law", "law"), KeepSuppressed: true},
			{Kind: RuleAttr, Key: "type", Match: ContainsAll("Directive", "directive"), KeepSuppressed: true},
		},
		Layouts: map[string]*Layout{
			"": {
				Roles: []Role{
					{Field: "name", Keywords: []string{"name"}, Match: MatchExact, Required: true, MultiLine: true},
					{Field: "type", Keywords: []string{"type"}, Match: MatchExact, Optional: true, MultiLine: true},
					{Field: "elect", Keywords: []string{"elect"}, Match: MatchPrefix, MultiLine: true},
					{Field: "effect", Keywords: []string{"effect"}, Match: MatchExact, Required: true, MultiLine: true, Format: FormatForAgainst},
				},
			},
		},
	}
}

// ExplorationProfile extracts exploration deck and relic tables.
func ExplorationProfile() *Profile {
	deck := Shape{Columns: []string{"name", "quantity", "effect"}}
	roles := []Role{
		{Field: "name", Required: true},
		{Field: "quantity", Numeric: NumericExact},
		{Field: "effect", Required: true},
	}
	return &Profile{
		Name:            "exploration",
		Fields:          []string{"name", "type", "quantity", "effect", "version"},
		HeadingLevels:   wikiHeadingLevels,
		ContentSelector: wikiContentSelector,
		TableClass:      wikiTableClass,
		Defaults:        ExtractionContext{Version: "pok"},
		Rules: []HeadingRule{
			{Kind: RuleVersion, Match: Pattern(regexp.MustCompile(`\bcodex\s*(?:volume\s*)?(\d)\b`), "codex $1")},
			{Kind: RuleVersion, Match: ContainsAll("thunders edge", "thunder", "edge")},
			{Kind: RuleVersion, Match: ContainsAll("pok", "prophecy of kings")},
			{Kind: RuleCategory, Match: ContainsAll("green", "industrial exploration")},
			{Kind: RuleCategory, Match: ContainsAll("red", "hazardous exploration")},
			{Kind: RuleCategory, Match: ContainsAll("blue", "cultural exploration")},
			{Kind: RuleCategory, Match: ContainsAll("frontier", "frontier", "exploration")},
			{Kind: RuleCategory, Match: ContainsAll("relic", "relic")},
		},
		Layouts: map[string]*Layout{
			"": {Roles: roles, Shapes: []Shape{deck}},
			"relic": {
				Roles:    roles,
				Shapes:   []Shape{deck, {Columns: []string{"name", "effect"}}},
				Defaults: map[string]string{"quantity": "1"},
			},
		},
		CategoryField: "type",
	}
}

// ObjectivesProfile extracts public and secret objective tables. Its
// sections are recognized by heading anchors rather than text.
func ObjectivesProfile() *Profile {
	const when = "when to score"
	statusPhase := map[string]string{when: "status phase"}
	return &Profile{
		Name:            "objectives",
		Fields:          []string{"name", "condition", "points", "type", when, "version"},
		HeadingLevels:   wikiHeadingLevels,
		ContentSelector: wikiContentSelector,
		TableClass:      wikiTableClass,
		Defaults: ExtractionContext{
			Version: "base game",
			Attrs:   map[string]string{when: "status phase"},
		},
		Rules: []HeadingRule{
			{Kind: RuleCategory, Match: IDContains("stage 1 public", "Stage_I_Objectives"), Also: statusPhase},
			{Kind: RuleCategory, Match: IDContains("stage 2 public", "Stage_II_Objectives"), Also: statusPhase},
			{Kind: RuleCategory, Match: IDContains("secret", "Secret_Objectives"), Also: statusPhase},
			{Kind: RuleAttr, Key: when, Match: IDIs("action phase", "Action_Phase")},
			{Kind: RuleAttr, Key: when, Match: IDIs("agenda phase", "Agenda_Phase")},
			{Kind: RuleAttr, Key: when, Match: IDIs("status phase", "Status_Phase")},
			{Kind: RuleVersion, Match: IDPrefix("base game", "Twilight_Imperium_Fourth_Edition")},
			{Kind: RuleVersion, Match: IDPrefix("pok", "Prophecy_of_Kings_Expansion")},
		},
		Layouts: map[string]*Layout{
			"": {
				Roles: []Role{
					{Field: "name", Required: true},
					{Field: "condition", Required: true},
					{Field: "points", Numeric: NumericExact},
				},
				Shapes: []Shape{{Columns: []string{"name", "condition", "points"}, AllowExtra: true}},
			},
		},
		CategoryField: "type",
	}
}

var (
	forRe     = regexp.MustCompile(`(?i)\bfor\b[:\-]?\s*`)
	againstRe = regexp.MustCompile(`(?i)\bagainst\b[:\-]?\s*`)
)

// FormatForAgainst rewrites agenda outcomes so that both sides survive
// flattening: "For: A Against: B" becomes "FOR: A | AGAINST: B". Text
// without either marker is returned unchanged.
func FormatForAgainst(text string) string {
	var parts []string

	if loc := forRe.FindStringIndex(text); loc != nil && loc[1] < len(text) {
		end := len(text)
		for _, a := range againstRe.FindAllStringIndex(text, -1) {
			if a[0] > loc[1] {
				end = a[0]
				break
			}
		}
		parts = append(parts, "FOR: "+outcome(text[loc[1]:end]))
	}

	for _, a := range againstRe.FindAllStringIndex(text, -1) {
		if a[1] < len(text) {
			parts = append(parts, "AGAINST: "+outcome(text[a[1]:]))
			break
		}
	}

	if len(parts) == 0 {
		return text
	}
	return strings.Join(parts, " | ")
}

// outcome normalizes one side of an agenda vote, dropping line separators
// left dangling at its edges.
func outcome(s string) string {
	return strings.Trim(NormalizeText(s), strings.TrimSpace(LineSeparator)+" ")
}
