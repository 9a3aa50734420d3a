package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/cardex"
	"github.com/fwojciec/cardex/goquery"
	"github.com/fwojciec/cardex/slog"
	"golang.org/x/sync/errgroup"
)

// Run executes the extract command. Inputs are extracted in parallel, each
// with its own walker, and their rows are concatenated in argument order.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	profile, err := cardex.FindProfile(c.Kind)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}

	table, err := c.extract(deps, profile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}

	if err := writeTable(deps, table, outputPath(c.Output, profile.Name), c.Format); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardex.ErrorMessage(err))
		return err
	}
	return nil
}

func (c *ExtractCmd) extract(deps *Dependencies, profile *cardex.Profile) (*cardex.Table, error) {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	// stdin can only be consumed once, so it is read before fanning out.
	var stdin []byte
	for _, in := range c.Inputs {
		if in == "-" {
			data, err := io.ReadAll(deps.Stdin)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}
			stdin = data
			break
		}
	}

	results := make([][]cardex.Row, len(c.Inputs))
	g, gctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, in := range c.Inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			raw := stdin
			if in != "-" {
				data, err := os.ReadFile(in)
				if err != nil {
					return fmt.Errorf("read %s: %w", in, err)
				}
				raw = data
			}

			e := slog.NewLoggingExtractor(goquery.NewExtractor(profile), profile.Name, deps.Logger.With("input", in))
			rows, err := e.Extract(raw)
			if err != nil {
				return fmt.Errorf("extract %s: %w", in, err)
			}
			results[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	table := profile.NewTable()
	for _, rows := range results {
		table.Rows = append(table.Rows, rows...)
	}
	return table, nil
}
