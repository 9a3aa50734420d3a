package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/cardex"
	"github.com/fwojciec/cardex/catalog"
	"github.com/fwojciec/cardex/yaml"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	table, err := c.build()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}

	if err := writeTable(deps, table, outputPath(c.Output, c.Kind), c.Format); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *BuildCmd) build() (*cardex.Table, error) {
	mappings := cardex.DefaultMappings()
	if c.Mappings != "" {
		m, err := yaml.LoadMappings(c.Mappings)
		if err != nil {
			return nil, err
		}
		mappings = m
	}

	var factionIDs []string
	if c.Factions != "" {
		f, err := os.Open(c.Factions)
		if err != nil {
			return nil, fmt.Errorf("open factions: %w", err)
		}
		defer f.Close()
		if factionIDs, err = catalog.ReadFactionIDs(f); err != nil {
			return nil, err
		}
	}
	if c.Kind == catalog.KindFactionAbilities && c.Factions == "" {
		return nil, cardex.Errorf(cardex.EINVALID, "--factions is required for %s", c.Kind)
	}

	return catalog.NewBuilder(c.Data, mappings).Build(c.Kind, factionIDs)
}
