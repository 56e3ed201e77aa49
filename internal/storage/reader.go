package storage

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/yndnr/asyncstorage-go/internal/telemetry/metric"
	"github.com/yndnr/asyncstorage-go/pkg/keyhash"
)

// Source identifies where a lookup was answered.
type Source string

const (
	SourceManifest Source = "manifest"
	SourceFile     Source = "file"
	SourceMiss     Source = "miss"
)

// Entry is a resolved manifest key.
type Entry struct {
	Key    string `json:"key" yaml:"key"`
	Source Source `json:"source" yaml:"source"`
	Value  any    `json:"value" yaml:"value"`
}

// Reader looks up values in an AsyncStorage directory.
//
// The manifest is read at most once per Reader and never refreshed. Create
// a new Reader to observe a changed manifest.
type Reader struct {
	resolver *Resolver
	files    *FileStore
	logger   *slog.Logger
	metrics  *metric.Registry

	once     sync.Once
	manifest Manifest
}

// Option configures a Reader.
type Option func(*Reader)

// WithPlatform resolves the directory from p.
func WithPlatform(p Platform) Option {
	return func(r *Reader) {
		r.resolver = NewResolver(p)
	}
}

// WithDir uses dir as the storage directory, skipping platform resolution.
func WithDir(dir string) Option {
	return func(r *Reader) {
		r.resolver = FixedResolver(dir)
	}
}

// WithFileSystem sets the file system the Reader reads from.
func WithFileSystem(fsys FileSystem) Option {
	return func(r *Reader) {
		r.files = NewFileStore(fsys)
	}
}

// WithLogger sets the logger for absorbed failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithMetrics sets the metrics registry.
func WithMetrics(m *metric.Registry) Option {
	return func(r *Reader) {
		r.metrics = m
	}
}

// New creates a Reader. Without WithPlatform or WithDir the Reader uses
// HostPlatform with no bundle identifier, so every lookup reports absence.
func New(opts ...Option) *Reader {
	r := &Reader{
		resolver: NewResolver(HostPlatform{}),
		files:    NewFileStore(nil),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Get returns the value stored under key as T.
//
// The manifest is consulted first. If it has no entry for key, or the entry
// is not a T, the value file named by the key's hash is read and its text
// converted to T. Any failure reports false.
func Get[T any](r *Reader, key string) (T, bool) {
	v, _, ok := lookup[T](r, key)
	return v, ok
}

// Lookup returns the value stored under key and the source that held it.
func Lookup(r *Reader, key string) (any, Source, bool) {
	return lookup[any](r, key)
}

// LookupAs is Get that also reports the source that held the value.
func LookupAs[T any](r *Reader, key string) (T, Source, bool) {
	return lookup[T](r, key)
}

func lookup[T any](r *Reader, key string) (T, Source, bool) {
	var zero T

	if raw, ok := r.loadManifest()[key]; ok {
		if v, ok := Convert[T](raw); ok {
			r.metrics.ObserveLookup(string(SourceManifest))
			return v, SourceManifest, true
		}
		if raw != nil {
			r.absorb(fmt.Errorf("%w: manifest entry is %T", ErrTypeMismatch, raw), key)
		}
	}

	if text, ok := r.readValueFile(key); ok {
		if v, ok := Convert[T](text); ok {
			r.metrics.ObserveLookup(string(SourceFile))
			return v, SourceFile, true
		}
		r.absorb(fmt.Errorf("%w: value file holds text", ErrTypeMismatch), key)
	}

	r.metrics.ObserveLookup(string(SourceMiss))
	return zero, SourceMiss, false
}

// Keys returns the manifest keys in sorted order.
func (r *Reader) Keys() []string {
	return r.loadManifest().Keys()
}

// Entries resolves every manifest key. Keys that resolve to nothing are
// skipped.
func (r *Reader) Entries() []Entry {
	keys := r.Keys()
	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		v, src, ok := Lookup(r, key)
		if !ok {
			continue
		}
		out = append(out, Entry{Key: key, Source: src, Value: v})
	}
	return out
}

// StorageDir returns the resolved storage directory.
func (r *Reader) StorageDir() (string, bool) {
	return r.resolver.StorageDir()
}

// ManifestPath returns the manifest path.
func (r *Reader) ManifestPath() (string, bool) {
	dir, ok := r.StorageDir()
	if !ok {
		return "", false
	}
	return ManifestPath(dir), true
}

// PathForKey returns the value-file path for key.
func (r *Reader) PathForKey(key string) (string, bool) {
	dir, ok := r.StorageDir()
	if !ok {
		return "", false
	}
	return ValueFilePath(dir, key), true
}

func (r *Reader) loadManifest() Manifest {
	r.once.Do(func() {
		m, err := r.readManifest()
		if err != nil {
			r.absorb(err, "")
			r.metrics.ObserveManifestLoad(0, false)
			r.manifest = Manifest{}
			return
		}
		r.logger.Debug("manifest loaded", "entries", len(m))
		r.metrics.ObserveManifestLoad(len(m), true)
		r.manifest = m
	})
	return r.manifest
}

func (r *Reader) readManifest() (Manifest, error) {
	path, ok := r.ManifestPath()
	if !ok {
		return nil, ErrDirectoryUnresolvable
	}

	text, ok := r.readText(path)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrManifestUnreadable, path)
	}

	m, err := ParseManifest([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestUnparsable, path, err)
	}
	return m, nil
}

func (r *Reader) readValueFile(key string) (string, bool) {
	path, ok := r.PathForKey(key)
	if !ok {
		r.absorb(ErrDirectoryUnresolvable, key)
		return "", false
	}

	text, ok := r.readText(path)
	if !ok {
		r.absorb(fmt.Errorf("%w: %s", ErrValueFileUnreadable, keyhash.Hash(key)), key)
		return "", false
	}
	return text, true
}

func (r *Reader) readText(path string) (string, bool) {
	text, ok := r.files.ReadText(path)
	r.metrics.ObserveFileRead(ok)
	return text, ok
}

// absorb records a failure that the caller will only see as absence.
func (r *Reader) absorb(err error, key string) {
	reason := Reason(err)
	r.metrics.ObserveFailure(reason)
	if key != "" {
		r.logger.Debug("lookup degraded", "reason", reason, "storage_key", key, "error", err)
		return
	}
	r.logger.Debug("lookup degraded", "reason", reason, "error", err)
}
