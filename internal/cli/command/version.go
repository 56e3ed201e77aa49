package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/asyncstorage-go/internal/cli/output"
	"github.com/yndnr/asyncstorage-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(c *cli.Context) error {
			rt, err := RuntimeFrom(c)
			if err != nil {
				return err
			}
			if rt.Format == output.FormatText {
				return rt.Formatter().Format(stdout(c), buildinfo.String())
			}
			return rt.Formatter().Format(stdout(c), buildinfo.Get())
		},
	}
}
