package main

import (
	"fmt"

	"github.com/fwojciec/cardex"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	store, closeFn, err := tableStore(c.DB)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}
	defer closeFn()

	if c.Table == "" {
		names, err := store.FindTableNames(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(deps.Stdout, "No tables found. Use 'cardex extract' or 'cardex build' with a .db output.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(deps.Stdout, name)
		}
		return nil
	}

	table, err := store.FindTable(deps.Ctx, c.Table)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}

	path := outputPath(c.Output, table.Name)
	format, err := resolveFormat(path, c.Format)
	if err == nil && format == FormatSQLite {
		err = cardex.Errorf(cardex.EINVALID, "export to sqlite is not supported")
	}
	if err == nil {
		err = writeTable(deps, table, path, format)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}
	return nil
}
