package command

import (
	"github.com/urfave/cli/v2"
)

// KeysCommand returns the keys command.
func KeysCommand() *cli.Command {
	return &cli.Command{
		Name:   "keys",
		Usage:  "List the keys in manifest.json",
		Action: listKeys,
	}
}

// DumpCommand returns the dump command.
func DumpCommand() *cli.Command {
	return &cli.Command{
		Name:   "dump",
		Usage:  "Print every manifest key with its resolved value",
		Action: dumpEntries,
	}
}

func listKeys(c *cli.Context) error {
	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}
	return rt.Formatter().Format(stdout(c), rt.NewReader().Keys())
}

func dumpEntries(c *cli.Context) error {
	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}
	return rt.Formatter().Format(stdout(c), rt.NewReader().Entries())
}
