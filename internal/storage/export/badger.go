package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/dgraph-io/badger/v3"

	"github.com/yndnr/asyncstorage-go/internal/storage"
)

// keyPrefix namespaces exported keys. AsyncStorage allows the empty key,
// Badger does not.
const keyPrefix = "asyncstorage:"

// Badger user-meta bytes recording where a value came from.
const (
	metaManifest byte = 'm'
	metaFile     byte = 'f'
)

// BadgerSink writes records into a Badger directory through a write batch.
type BadgerSink struct {
	db     *badger.DB
	batch  *badger.WriteBatch
	logger *slog.Logger

	mu     sync.Mutex
	closed bool
}

// OpenBadger opens (or creates) the Badger directory at dir.
func OpenBadger(dir string, logger *slog.Logger) (*BadgerSink, error) {
	if dir == "" {
		return nil, fmt.Errorf("badger: dir is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{logger: logger}
	opts.MemTableSize = 16 << 20
	opts.ValueLogFileSize = 64 << 20
	opts.NumVersionsToKeep = 1

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger: open db: %w", err)
	}

	logger.Debug("badger sink opened", "dir", dir)
	return &BadgerSink{
		db:     db,
		batch:  db.NewWriteBatch(),
		logger: logger,
	}, nil
}

// Put queues rec in the write batch.
func (s *BadgerSink) Put(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	e := badger.NewEntry([]byte(keyPrefix+rec.Key), rec.Value).WithMeta(sourceMeta(rec.Source))
	return s.batch.SetEntry(e)
}

// Close flushes the batch and closes the database.
func (s *BadgerSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	flushErr := s.batch.Flush()
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("badger: close db: %w", err)
	}
	if flushErr != nil {
		return fmt.Errorf("badger: flush: %w", flushErr)
	}
	return nil
}

// ReadBadger calls fn for every record in the Badger directory at dir.
func ReadBadger(dir string, logger *slog.Logger, fn func(Record) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = &badgerLogger{logger: logger}

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("badger: open db: %w", err)
	}
	defer db.Close()

	return db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			rec := Record{
				Key:    strings.TrimPrefix(string(item.KeyCopy(nil)), keyPrefix),
				Source: metaSource(item.UserMeta()),
				Value:  value,
			}
			if err := fn(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func sourceMeta(src storage.Source) byte {
	if src == storage.SourceFile {
		return metaFile
	}
	return metaManifest
}

func metaSource(b byte) storage.Source {
	if b == metaFile {
		return storage.SourceFile
	}
	return storage.SourceManifest
}

// badgerLogger adapts slog.Logger to Badger's Logger interface.
// Badger's info chatter is demoted to debug.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}
