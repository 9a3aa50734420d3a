// Package catalog builds card tables from the JSON data exports: technologies,
// breakthroughs, faction abilities, faction leaders and promissory notes.
package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/cardex"
)

// Catalog kinds.
const (
	KindTechnologies     = "technologies"
	KindBreakthroughs    = "breakthroughs"
	KindFactionAbilities = "faction_abilities"
	KindFactionLeaders   = "faction_leaders"
	KindPromissoryNotes  = "promissory_notes"
)

// Kinds returns the names of all catalog kinds, sorted.
func Kinds() []string {
	return []string{
		KindBreakthroughs,
		KindFactionAbilities,
		KindFactionLeaders,
		KindPromissoryNotes,
		KindTechnologies,
	}
}

// Builder reads JSON exports below Dir.
type Builder struct {
	Dir      string
	Mappings *cardex.Mappings
}

// NewBuilder creates a new Builder. A nil m selects the default mappings.
func NewBuilder(dir string, m *cardex.Mappings) *Builder {
	if m == nil {
		m = cardex.DefaultMappings()
	}
	return &Builder{Dir: dir, Mappings: m}
}

// Build builds the table for kind. factionIDs is only used by faction abilities.
// Returns ENOTFOUND for unknown kinds.
func (b *Builder) Build(kind string, factionIDs []string) (*cardex.Table, error) {
	switch kind {
	case KindTechnologies:
		return b.Technologies()
	case KindBreakthroughs:
		return b.Breakthroughs()
	case KindFactionAbilities:
		return b.FactionAbilities(factionIDs)
	case KindFactionLeaders:
		return b.FactionLeaders()
	case KindPromissoryNotes:
		return b.PromissoryNotes()
	}
	return nil, cardex.Errorf(cardex.ENOTFOUND, "unknown catalog kind %q", kind)
}

// source is one export file, optionally restricted to a single faction.
type source struct {
	path    string
	faction string
}

// readSources decodes every existing source file into records of type T. A
// file holding a single object counts as one record. Returns ENOTFOUND if
// none of the files exist.
func readSources[T any](dir string, sources []source, factionOf func(T) string) ([]T, error) {
	var out []T
	found := 0
	for _, src := range sources {
		path := filepath.Join(dir, filepath.FromSlash(src.path))
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", src.path, err)
		}
		found++

		records, err := decodeRecords[T](data)
		if err != nil {
			return nil, cardex.Errorf(cardex.EINVALID, "invalid JSON in %s: %v", src.path, err)
		}
		for _, r := range records {
			if src.faction != "" && factionOf(r) != src.faction {
				continue
			}
			out = append(out, r)
		}
	}
	if found == 0 {
		names := make([]string, len(sources))
		for i, s := range sources {
			names[i] = s.path
		}
		return nil, cardex.Errorf(cardex.ENOTFOUND, "no source files found in %s (looked for %s)", dir, strings.Join(names, ", "))
	}
	return out, nil
}

func decodeRecords[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var one T
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, err
		}
		return []T{one}, nil
	}
	var many []T
	if err := json.Unmarshal(data, &many); err != nil {
		return nil, err
	}
	return many, nil
}

// ReadFactionIDs reads the id column of a factions CSV file with a header row.
// Returns EINVALID if the header has no id column.
func ReadFactionIDs(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, cardex.Errorf(cardex.EINVALID, "factions file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read factions header: %w", err)
	}
	col := slices.IndexFunc(header, func(h string) bool {
		return strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")) == "id"
	})
	if col < 0 {
		return nil, cardex.Errorf(cardex.EINVALID, "factions file has no id column")
	}

	var ids []string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read factions: %w", err)
		}
		if col >= len(rec) {
			continue
		}
		if id := strings.TrimSpace(rec[col]); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// colorList renders colors as an unquoted list, e.g. "[blue,green]".
func colorList(colors []string) string {
	return "[" + strings.Join(colors, ",") + "]"
}

// compareFold compares keys case-insensitively, in order.
func compareFold(a, b []string) int {
	for i := range a {
		if c := strings.Compare(strings.ToLower(a[i]), strings.ToLower(b[i])); c != 0 {
			return c
		}
	}
	return 0
}
