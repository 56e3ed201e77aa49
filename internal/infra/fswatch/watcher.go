package fswatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum time between notifications.
const DefaultInterval = 250 * time.Millisecond

// changeOps are the operations that can change a lookup result.
const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Remove | fsnotify.Rename

// Watcher watches a directory for changes.
type Watcher struct {
	watcher   *fsnotify.Watcher
	limiter   *rate.Limiter
	filter    func(string) bool
	callbacks []func(string)
	mu        sync.RWMutex
	done      chan struct{}
	closeOnce sync.Once
	logger    *slog.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger for the watcher.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithInterval sets the minimum time between notifications.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithFilter restricts notifications to paths for which keep returns true.
func WithFilter(keep func(path string) bool) Option {
	return func(w *Watcher) {
		w.filter = keep
	}
}

// New creates a new directory watcher.
func New(opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		limiter: rate.NewLimiter(rate.Every(DefaultInterval), 1),
		filter:  func(string) bool { return true },
		done:    make(chan struct{}),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Watch adds a directory to watch.
func (w *Watcher) Watch(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		w.logger.Error("failed to watch directory",
			"path", dir,
			"error", err,
		)
		return err
	}
	w.logger.Debug("watching directory for changes", "path", dir)
	return nil
}

// OnChange registers a callback. It receives the last changed path of a
// coalesced burst.
func (w *Watcher) OnChange(callback func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Run delivers notifications until ctx is done or Close is called.
// It returns ctx.Err() when ctx ends the loop.
func (w *Watcher) Run(ctx context.Context) error {
	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&changeOps == 0 || !w.filter(event.Name) {
				continue
			}
			w.logger.Debug("storage file changed",
				"file", event.Name,
				"op", event.Op.String(),
			)
			pending = event.Name
			if fire == nil {
				timer = time.NewTimer(w.limiter.Reserve().Delay())
				fire = timer.C
			}
		case <-fire:
			fire = nil
			w.notify(pending)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("storage watcher error", "error", err)
		case <-ctx.Done():
			return ctx.Err()
		case <-w.done:
			return nil
		}
	}
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
		if err != nil {
			w.logger.Error("failed to close watcher", "error", err)
		}
	})
	return err
}

func (w *Watcher) notify(path string) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, cb := range w.callbacks {
		cb(path)
	}
}
