package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/asyncstorage-go/internal/storage"
	"github.com/yndnr/asyncstorage-go/internal/storage/export"
	"github.com/yndnr/asyncstorage-go/internal/telemetry/logger"
)

// ExportResult reports a finished export.
type ExportResult struct {
	Entries     int    `json:"entries" yaml:"entries"`
	Destination string `json:"destination" yaml:"destination"`
	Kind        string `json:"kind" yaml:"kind"`
}

// ExportCommand returns the export command.
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Copy every resolved entry into a Badger directory or SQLite file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "badger",
				Usage: "Badger directory to write",
			},
			&cli.StringFlag{
				Name:  "sqlite",
				Usage: "SQLite database file to write",
			},
		},
		Action: exportEntries,
	}
}

func exportEntries(c *cli.Context) error {
	badgerDir, sqlitePath := c.String("badger"), c.String("sqlite")
	if (badgerDir == "") == (sqlitePath == "") {
		return cli.Exit("export needs exactly one of --badger or --sqlite", 2)
	}

	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}
	log := logger.L(c.Context)

	var (
		sink   export.Sink
		result ExportResult
	)
	if badgerDir != "" {
		sink, err = export.OpenBadger(badgerDir, rt.Logger.Slog())
		result = ExportResult{Destination: badgerDir, Kind: "badger"}
	} else {
		sink, err = export.OpenSQLite(sqlitePath)
		result = ExportResult{Destination: sqlitePath, Kind: "sqlite"}
	}
	if err != nil {
		return err
	}

	n, runErr := export.Run(c.Context, rt.NewReader(), sink)
	closeErr := sink.Close()
	if runErr != nil {
		return fmt.Errorf("export: %w", runErr)
	}
	if closeErr != nil {
		return fmt.Errorf("export: %w", closeErr)
	}

	result.Entries = n
	log.Info("export complete", "entries", n, "kind", result.Kind, "destination", result.Destination)
	return rt.Formatter().Format(stdout(c), result)
}

// InspectCommand returns the inspect command.
func InspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "List the entries stored in a Badger export",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "badger",
				Usage:    "Badger directory written by export",
				Required: true,
			},
		},
		Action: inspectBadger,
	}
}

func inspectBadger(c *cli.Context) error {
	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}

	dir := c.String("badger")
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return cli.Exit(fmt.Sprintf("%s: not a Badger export directory", dir), 1)
	}

	entries := []storage.Entry{}
	err = export.ReadBadger(dir, rt.Logger.Slog(), func(rec export.Record) error {
		v, err := decodeValue(rec.Value)
		if err != nil {
			return fmt.Errorf("decode %q: %w", rec.Key, err)
		}
		entries = append(entries, storage.Entry{Key: rec.Key, Source: rec.Source, Value: v})
		return nil
	})
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	return rt.Formatter().Format(stdout(c), entries)
}

// decodeValue decodes an exported JSON value, keeping numbers exact.
func decodeValue(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
