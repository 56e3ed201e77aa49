package command

import (
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/asyncstorage-go/internal/cli/config"
	"github.com/yndnr/asyncstorage-go/internal/cli/output"
	"github.com/yndnr/asyncstorage-go/internal/storage"
	"github.com/yndnr/asyncstorage-go/internal/telemetry/logger"
	"github.com/yndnr/asyncstorage-go/internal/telemetry/metric"
)

const runtimeKey = "runtime"

// errNoRuntime means a command ran without the App's Before hook.
var errNoRuntime = errors.New("command: runtime not initialized")

// Runtime is the per-invocation state built by the App's Before hook.
type Runtime struct {
	Config  *config.Config
	Logger  logger.Logger
	Metrics *metric.Registry
	Format  output.Format
	TraceID string
}

// RuntimeFrom returns the Runtime stored on the app.
func RuntimeFrom(c *cli.Context) (*Runtime, error) {
	if rt, ok := c.App.Metadata[runtimeKey].(*Runtime); ok {
		return rt, nil
	}
	return nil, errNoRuntime
}

// ReaderOptions returns the storage options selected by the configuration.
func (rt *Runtime) ReaderOptions() []storage.Option {
	opts := []storage.Option{
		storage.WithLogger(rt.Logger.Slog().With("trace_id", rt.TraceID)),
		storage.WithMetrics(rt.Metrics),
	}

	s := rt.Config.Storage
	switch {
	case s.Dir != "":
		opts = append(opts, storage.WithDir(s.Dir))
	case s.BaseDir != "":
		opts = append(opts, storage.WithPlatform(storage.StaticPlatform{Dir: s.BaseDir, ID: s.AppID}))
	default:
		opts = append(opts, storage.WithPlatform(storage.HostPlatform{ID: s.AppID}))
	}
	return opts
}

// NewReader creates a fresh Reader. Each call reads the manifest anew.
func (rt *Runtime) NewReader() *storage.Reader {
	return storage.New(rt.ReaderOptions()...)
}

// StorageDir resolves the configured storage directory.
func (rt *Runtime) StorageDir() (string, bool) {
	return rt.NewReader().StorageDir()
}

// Formatter returns the formatter for the selected output format.
func (rt *Runtime) Formatter() output.Formatter {
	return output.NewFormatter(rt.Format)
}

// stdout returns the app's output writer.
func stdout(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return os.Stdout
}
