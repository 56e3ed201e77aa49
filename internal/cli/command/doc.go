// Package command provides CLI command definitions for asyncstorage-cli.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, configuration and logger setup
//   - runtime.go: Per-invocation state shared by commands
//   - get.go: Typed lookup of one key
//   - list.go: keys and dump
//   - path.go: Storage paths and value-file names
//   - export.go: Copy entries into Badger or SQLite
//   - watch.go: Re-read a key whenever the storage directory changes
//   - version.go: Build information
//
// Commands parse their arguments, read through a storage.Reader and hand
// the result to an output.Formatter.
package command
