// Package yaml loads mapping overrides from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/cardex"
	yaml "gopkg.in/yaml.v3"
)

// LoadMappings reads the YAML file at path and layers it over the built-in
// mappings. Keys are lower-cased to match the case-insensitive lookups.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be parsed.
func LoadMappings(path string) (*cardex.Mappings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, cardex.Errorf(cardex.ENOTFOUND, "mappings file %q not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read mappings: %w", err)
	}
	return ParseMappings(data)
}

// ParseMappings parses YAML mapping overrides and layers them over the
// built-in mappings. Unknown keys are rejected.
func ParseMappings(data []byte) (*cardex.Mappings, error) {
	var m cardex.Mappings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, cardex.Errorf(cardex.EINVALID, "invalid mappings: %v", err)
	}
	m.FactionAliases = lowerKeys(m.FactionAliases)
	m.SourceVersions = lowerKeys(m.SourceVersions)
	return cardex.DefaultMappings().Merge(&m), nil
}

func lowerKeys(in map[string]string) map[string]string {
	if in == nil {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return out
}
