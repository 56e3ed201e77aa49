package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/yndnr/asyncstorage-go/pkg/keyhash"
)

// countingFS counts ReadFile calls per path.
type countingFS struct {
	OSFileSystem

	mu    sync.Mutex
	reads map[string]int
}

func newCountingFS() *countingFS {
	return &countingFS{reads: make(map[string]int)}
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.mu.Lock()
	c.reads[name]++
	c.mu.Unlock()
	return c.OSFileSystem.ReadFile(name)
}

func (c *countingFS) count(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads[name]
}

// storageDir creates an empty storage directory and returns its path.
func storageDir(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "com.example.app", StorageDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create storage dir: %v", err)
	}
	return dir
}

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, ManifestFileName), []byte(content))
}

func writeValueFile(t *testing.T, dir, key, content string) {
	t.Helper()
	writeFile(t, filepath.Join(dir, keyhash.Hash(key)), []byte(content))
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
