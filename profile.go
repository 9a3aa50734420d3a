package cardex

import (
	"slices"
	"sort"
)

// Profile configures extraction for one family of wiki pages.
type Profile struct {
	Name   string
	Fields []string

	// HeadingLevels are the heading ranks that update the context.
	HeadingLevels []int

	// ContentSelector locates the main content region.
	ContentSelector string

	// TableClass marks data tables; tables without it are never classified.
	TableClass string

	Defaults ExtractionContext

	// RequireVersion skips tables while no version is known.
	RequireVersion bool

	Rules []HeadingRule

	// Layouts are keyed by category; the "" entry applies to any category.
	Layouts map[string]*Layout

	// CategoryField receives the context category; empty means the category
	// is not emitted.
	CategoryField string
}

// TracksLevel reports whether headings of the given level update the context.
func (p *Profile) TracksLevel(level int) bool {
	return slices.Contains(p.HeadingLevels, level)
}

// Layout returns the layout for a category.
func (p *Profile) Layout(category string) *Layout {
	if l, ok := p.Layouts[category]; ok {
		return l
	}
	return p.Layouts[""]
}

// Accepts reports whether tables should be processed under ctx.
func (p *Profile) Accepts(ctx ExtractionContext) bool {
	if ctx.Suppressed || ctx.Category == "" {
		return false
	}
	return !p.RequireVersion || ctx.Version != ""
}

// NewTable returns an empty table named after the profile.
func (p *Profile) NewTable() *Table {
	return NewTable(p.Name, p.Fields)
}

var profiles = map[string]func() *Profile{
	"action_cards": ActionCardsProfile,
	"agendas":      AgendasProfile,
	"exploration":  ExplorationProfile,
	"objectives":   ObjectivesProfile,
}

// FindProfile returns a fresh profile by name.
// Returns ENOTFOUND if no such profile exists.
func FindProfile(name string) (*Profile, error) {
	fn, ok := profiles[name]
	if !ok {
		return nil, Errorf(ENOTFOUND, "unknown page kind %q", name)
	}
	return fn(), nil
}

// ProfileNames returns the names of all built-in profiles, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
