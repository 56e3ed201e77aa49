package storage

import "errors"

// Absorbed failure kinds. None of these are returned by Get; they are
// logged and counted, and the lookup reports absence.
var (
	ErrDirectoryUnresolvable = errors.New("storage: directory unresolvable")
	ErrManifestUnreadable    = errors.New("storage: manifest unreadable")
	ErrManifestUnparsable    = errors.New("storage: manifest unparsable")
	ErrValueFileUnreadable   = errors.New("storage: value file unreadable")
	ErrTypeMismatch          = errors.New("storage: type mismatch")
)

// Reason returns the metric label for an absorbed failure.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrDirectoryUnresolvable):
		return "directory_unresolvable"
	case errors.Is(err, ErrManifestUnreadable):
		return "manifest_unreadable"
	case errors.Is(err, ErrManifestUnparsable):
		return "manifest_unparsable"
	case errors.Is(err, ErrValueFileUnreadable):
		return "value_file_unreadable"
	case errors.Is(err, ErrTypeMismatch):
		return "type_mismatch"
	default:
		return "unknown"
	}
}
