package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/asyncstorage-go/internal/cli/output"
	"github.com/yndnr/asyncstorage-go/pkg/keyhash"
)

// Paths describes where the storage files live.
type Paths struct {
	StorageDir string `json:"storage_dir" yaml:"storage_dir"`
	Manifest   string `json:"manifest" yaml:"manifest"`
}

// KeyPath describes the value file for one key.
type KeyPath struct {
	Key  string `json:"key" yaml:"key"`
	Hash string `json:"hash" yaml:"hash"`
	Path string `json:"path" yaml:"path"`
}

// PathCommand returns the path command.
func PathCommand() *cli.Command {
	return &cli.Command{
		Name:      "path",
		Usage:     "Print the storage directory, or the value-file path for a key",
		ArgsUsage: "[key]",
		Action:    showPath,
	}
}

// HashCommand returns the hash command.
func HashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "Print the value-file name for a key",
		ArgsUsage: "<key>",
		Action:    showHash,
	}
}

func showPath(c *cli.Context) error {
	if c.NArg() > 1 {
		return cli.Exit("usage: path [key]", 2)
	}

	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}
	r := rt.NewReader()

	if c.NArg() == 1 {
		key := c.Args().First()
		p, ok := r.PathForKey(key)
		if !ok {
			return cli.Exit("storage directory cannot be resolved", 1)
		}
		if rt.Format == output.FormatText {
			return rt.Formatter().Format(stdout(c), p)
		}
		return rt.Formatter().Format(stdout(c), KeyPath{Key: key, Hash: keyhash.Hash(key), Path: p})
	}

	dir, ok := r.StorageDir()
	if !ok {
		return cli.Exit("storage directory cannot be resolved", 1)
	}
	manifest, _ := r.ManifestPath()
	return rt.Formatter().Format(stdout(c), Paths{StorageDir: dir, Manifest: manifest})
}

func showHash(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: hash <key>", 2)
	}
	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}

	key := c.Args().First()
	if rt.Format == output.FormatText {
		return rt.Formatter().Format(stdout(c), keyhash.Hash(key))
	}
	return rt.Formatter().Format(stdout(c), map[string]string{"key": key, "hash": keyhash.Hash(key)})
}
