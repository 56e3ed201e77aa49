package command

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/yndnr/asyncstorage-go/internal/cli/output"
	"github.com/yndnr/asyncstorage-go/internal/infra/fswatch"
	"github.com/yndnr/asyncstorage-go/internal/infra/shutdown"
	"github.com/yndnr/asyncstorage-go/internal/storage"
	"github.com/yndnr/asyncstorage-go/internal/telemetry/logger"
	"github.com/yndnr/asyncstorage-go/pkg/keyhash"
)

// WatchEvent is printed for every observed value of the watched key.
type WatchEvent struct {
	Key    string         `json:"key" yaml:"key"`
	Found  bool           `json:"found" yaml:"found"`
	Source storage.Source `json:"source" yaml:"source"`
	Value  any            `json:"value" yaml:"value"`
}

// WatchCommand returns the watch command.
func WatchCommand() *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Print a key's value now and whenever the storage directory changes",
		ArgsUsage: "<key>",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Minimum time between re-reads",
				Value: fswatch.DefaultInterval,
			},
		},
		Action: watchKey,
	}
}

// isStorageFile reports whether path can affect a lookup.
func isStorageFile(path string) bool {
	base := filepath.Base(path)
	return base == storage.ManifestFileName || keyhash.IsHashName(base)
}

func watchKey(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: watch <key>", 2)
	}
	key := c.Args().First()

	rt, err := RuntimeFrom(c)
	if err != nil {
		return err
	}
	dir, ok := rt.StorageDir()
	if !ok {
		return cli.Exit("storage directory cannot be resolved", 1)
	}

	log := logger.L(c.Context)

	w, err := fswatch.New(
		fswatch.WithLogger(rt.Logger.Slog()),
		fswatch.WithInterval(c.Duration("interval")),
		fswatch.WithFilter(isStorageFile),
	)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Watch(dir); err != nil {
		w.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var mu sync.Mutex
	printErrs := make(chan error, 1)
	show := func() {
		mu.Lock()
		defer mu.Unlock()
		if err := printValue(c, rt, key); err != nil {
			select {
			case printErrs <- err:
			default:
			}
		}
	}
	w.OnChange(func(path string) {
		log.Debug("re-reading after change", "file", filepath.Base(path))
		show()
	})

	h := shutdown.NewHandler(5 * time.Second)
	h.OnShutdown(func(context.Context) error { return w.Close() })
	ctx := h.Context(c.Context)

	show()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := w.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		select {
		case err := <-printErrs:
			return err
		case <-gctx.Done():
			return nil
		}
	})
	g.Go(func() error { return h.Wait(gctx) })

	return g.Wait()
}

func printValue(c *cli.Context, rt *Runtime, key string) error {
	v, src, ok := storage.Lookup(rt.NewReader(), key)
	if rt.Format == output.FormatText {
		if !ok {
			v = "(absent)"
		}
		return rt.Formatter().Format(stdout(c), v)
	}
	return rt.Formatter().Format(stdout(c), WatchEvent{Key: key, Found: ok, Source: src, Value: v})
}
