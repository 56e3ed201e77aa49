package storage

import (
	"io/fs"
	"os"
	"unicode/utf8"
)

// FileSystem is the subset of file operations the reader needs.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// OSFileSystem reads from the local disk.
type OSFileSystem struct{}

// Stat implements FileSystem.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) { return os.Stat(name) }

// ReadFile implements FileSystem.
func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// FileStore reads whole files as UTF-8 text.
type FileStore struct {
	fs FileSystem
}

// NewFileStore returns a FileStore over fsys. A nil fsys reads from disk.
func NewFileStore(fsys FileSystem) *FileStore {
	if fsys == nil {
		fsys = OSFileSystem{}
	}
	return &FileStore{fs: fsys}
}

// ReadText returns the contents of path, or false if the file does not
// exist, is a directory, cannot be read, or is not valid UTF-8.
//
// The file is stat'ed before it is read. A file removed in between fails the
// read and is reported as absent.
func (s *FileStore) ReadText(path string) (string, bool) {
	info, err := s.fs.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}

	b, err := s.fs.ReadFile(path)
	if err != nil || !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}
