package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/asyncstorage-go/internal/cli/config"
	"github.com/yndnr/asyncstorage-go/internal/cli/output"
	"github.com/yndnr/asyncstorage-go/internal/infra/buildinfo"
	"github.com/yndnr/asyncstorage-go/internal/infra/confloader"
	"github.com/yndnr/asyncstorage-go/internal/telemetry/logger"
	"github.com/yndnr/asyncstorage-go/internal/telemetry/metric"
)

// App creates the CLI application.
//
// Exit codes travel back to the caller as cli.ExitCoder errors; App never
// exits the process itself.
func App() *cli.App {
	app := &cli.App{
		Name:    "asyncstorage-cli",
		Usage:   "Read values from a React Native AsyncStorage directory",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			GetCommand(),
			KeysCommand(),
			DumpCommand(),
			PathCommand(),
			HashCommand(),
			ExportCommand(),
			InspectCommand(),
			WatchCommand(),
			VersionCommand(),
		},
		Before:         setup,
		After:          teardown,
		ExitErrHandler: func(*cli.Context, error) {},
	}

	return app
}

// globalFlags returns the global CLI flags.
//
// Storage and log flags have no defaults here so that only explicitly set
// flags override the config file and environment.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a YAML configuration file (default: <user config dir>/asyncstorage/config.yaml if present)",
			EnvVars: []string{"ASYNCSTORAGE_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "base-dir",
			Usage: "Application support directory (default: the platform's)",
		},
		&cli.StringFlag{
			Name:    "app-id",
			Aliases: []string{"a"},
			Usage:   "Application bundle identifier",
		},
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Storage directory, skipping base-dir and app-id resolution",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml",
			Value:   string(output.FormatText),
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file on exit",
		},
	}
}

// flagKeys maps global flag names to configuration keys.
var flagKeys = map[string]string{
	"base-dir":     "storage.basedir",
	"app-id":       "storage.appid",
	"dir":          "storage.dir",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"metrics-file": "metrics.textfile",
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	ConfigFile string
	Output     string
	// Overrides holds explicitly set flags keyed by configuration key.
	Overrides map[string]any
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	flags := &GlobalFlags{
		ConfigFile: c.String("config"),
		Output:     c.String("output"),
		Overrides:  make(map[string]any),
	}
	for name, key := range flagKeys {
		if c.IsSet(name) {
			flags.Overrides[key] = c.String(name)
		}
	}
	return flags
}

// LoadConfig loads and verifies the configuration for this invocation.
func LoadConfig(flags *GlobalFlags) (*config.Config, error) {
	cfg := config.Default()
	loader := confloader.NewLoader(
		confloader.WithConfigFile(config.ResolvePath(flags.ConfigFile)),
		confloader.WithDefaults(config.Defaults()),
		confloader.WithOverrides(flags.Overrides),
	)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}
	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setup(c *cli.Context) error {
	flags := ParseGlobalFlags(c)

	format, err := output.ParseFormat(flags.Output)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(flags)
	if err != nil {
		return err
	}

	errWriter := c.App.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	rt := &Runtime{
		Config:  cfg,
		Logger:  log,
		Metrics: metric.NewRegistry(),
		Format:  format,
		TraceID: logger.NewTraceID(),
	}
	if err := rt.Metrics.Register(metric.NewDirCollector(rt.StorageDir)); err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	ctx := logger.WithLogger(c.Context, log)
	c.Context = logger.WithTraceID(ctx, rt.TraceID)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[runtimeKey] = rt

	logger.L(c.Context).Debug("configuration loaded",
		"dir", cfg.Storage.Dir,
		"base_dir", cfg.Storage.BaseDir,
		"app_id", cfg.Storage.AppID,
	)
	return nil
}

func teardown(c *cli.Context) error {
	rt, ok := c.App.Metadata[runtimeKey].(*Runtime)
	if !ok || rt.Config.Metrics.Textfile == "" {
		return nil
	}
	if err := rt.Metrics.WriteTextfile(rt.Config.Metrics.Textfile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
