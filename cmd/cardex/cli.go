package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract a card table from saved wiki pages"`
	Build   BuildCmd   `cmd:"" help:"Build a card table from JSON data exports"`
	Export  ExportCmd  `cmd:"" help:"Export a table stored in a SQLite database"`
	Kinds   KindsCmd   `cmd:"" help:"List page and catalog kinds"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Kind        string   `arg:"" help:"Page kind (see 'cardex kinds')"`
	Inputs      []string `arg:"" name:"input" help:"Saved HTML or view-source pages; '-' reads stdin"`
	Output      string   `short:"o" help:"Output path (default <kind>.csv)"`
	Format      string   `short:"f" help:"Output format: csv, xlsx, markdown or sqlite (default from extension)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Kind     string `arg:"" help:"Catalog kind (see 'cardex kinds')"`
	Data     string `required:"" type:"existingdir" help:"Directory holding the JSON exports"`
	Factions string `help:"factions.csv with an id column (faction_abilities only)"`
	Mappings string `help:"YAML file overriding faction and version mappings"`
	Output   string `short:"o" help:"Output path (default <kind>.csv)"`
	Format   string `short:"f" help:"Output format: csv, xlsx, markdown or sqlite (default from extension)"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	DB     string `arg:"" name:"db" type:"existingfile" help:"SQLite database written by extract or build"`
	Table  string `arg:"" optional:"" help:"Table to export; lists tables when omitted"`
	Output string `short:"o" help:"Output path (default <table>.csv)"`
	Format string `short:"f" help:"Output format: csv, xlsx or markdown (default from extension)"`
}

// KindsCmd is the "kinds" subcommand.
type KindsCmd struct{}
