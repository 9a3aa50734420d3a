package main

import (
	"fmt"

	"github.com/fwojciec/cardex"
	"github.com/fwojciec/cardex/catalog"
)

// Run executes the kinds command.
func (c *KindsCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Page kinds (cardex extract):")
	for _, name := range cardex.ProfileNames() {
		fmt.Fprintf(deps.Stdout, "  %s\n", name)
	}
	fmt.Fprintln(deps.Stdout, "Catalog kinds (cardex build):")
	for _, name := range catalog.Kinds() {
		fmt.Fprintf(deps.Stdout, "  %s\n", name)
	}
	return nil
}
