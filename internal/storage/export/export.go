package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yndnr/asyncstorage-go/internal/storage"
)

// ErrClosed is returned by a sink used after Close.
var ErrClosed = errors.New("export: sink closed")

// Record is one exported entry.
type Record struct {
	Key    string
	Source storage.Source
	// Value is the JSON encoding of the resolved value.
	Value []byte
}

// Sink receives exported records.
type Sink interface {
	Put(ctx context.Context, rec Record) error
	// Close flushes pending writes and releases the sink.
	Close() error
}

// EntrySource lists resolved entries. *storage.Reader implements it.
type EntrySource interface {
	Entries() []storage.Entry
}

// Run writes every entry of src to sink and returns the number written.
// It stops at the first error or when ctx is done. Run does not close sink.
func Run(ctx context.Context, src EntrySource, sink Sink) (int, error) {
	n := 0
	for _, e := range src.Entries() {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return n, fmt.Errorf("encode %q: %w", e.Key, err)
		}
		if err := sink.Put(ctx, Record{Key: e.Key, Source: e.Source, Value: value}); err != nil {
			return n, fmt.Errorf("put %q: %w", e.Key, err)
		}
		n++
	}
	return n, nil
}
