package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/asyncstorage-go/internal/cli/output"
	"github.com/yndnr/asyncstorage-go/internal/storage"
)

// valueTypes maps --type names to typed lookups.
var valueTypes = map[string]func(*storage.Reader, string) (any, storage.Source, bool){
	"any":    storage.Lookup,
	"string": typed[string],
	"int":    typed[int64],
	"float":  typed[float64],
	"bool":   typed[bool],
}

func typed[T any](r *storage.Reader, key string) (any, storage.Source, bool) {
	v, src, ok := storage.LookupAs[T](r, key)
	return v, src, ok
}

// GetCommand returns the get command.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Print the value stored under a key",
		ArgsUsage: "<key>",
		Description: "Looks the key up in manifest.json, then in the value file named by\n" +
			"the key's MD5 hash. Exits with status 1 when the key has no value of\n" +
			"the requested type.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Required value type: any, string, int, float, bool",
				Value:   "any",
			},
		},
		Action: getValue,
	}
}

func getValue(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: get <key>", 2)
	}
	key := c.Args().First()

	lookup, ok := valueTypes[c.String("type")]
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown type %q (want any, string, int, float or bool)", c.String("type")), 2)
	}

	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}

	v, src, ok := lookup(rt.NewReader(), key)
	if !ok {
		return cli.Exit(fmt.Sprintf("%s: not found", key), 1)
	}

	if rt.Format == output.FormatText {
		return rt.Formatter().Format(stdout(c), v)
	}
	return rt.Formatter().Format(stdout(c), storage.Entry{Key: key, Source: src, Value: v})
}
