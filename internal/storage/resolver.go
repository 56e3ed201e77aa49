package storage

import (
	"path/filepath"

	"github.com/yndnr/asyncstorage-go/pkg/keyhash"
)

// Fixed names of the AsyncStorage layout.
const (
	StorageDirName   = "RCTAsyncLocalStorage_V1"
	ManifestFileName = "manifest.json"
)

// Resolver computes the storage directory.
//
// Nothing is cached: when the platform cannot supply its inputs the next
// call tries again.
type Resolver struct {
	platform Platform
	fixed    string
}

// NewResolver returns a Resolver that derives the directory from p.
func NewResolver(p Platform) *Resolver {
	return &Resolver{platform: p}
}

// FixedResolver returns a Resolver for an explicit storage directory.
func FixedResolver(dir string) *Resolver {
	return &Resolver{fixed: dir}
}

// StorageDir returns base/bundleID/RCTAsyncLocalStorage_V1 as an absolute
// path. The directory is not created and need not exist.
func (r *Resolver) StorageDir() (string, bool) {
	if r.fixed != "" {
		return absPath(r.fixed)
	}
	if r.platform == nil {
		return "", false
	}
	base, ok := r.platform.AppSupportDir()
	if !ok || base == "" {
		return "", false
	}
	id, ok := r.platform.BundleID()
	if !ok || id == "" {
		return "", false
	}
	return absPath(filepath.Join(base, id, StorageDirName))
}

func absPath(p string) (string, bool) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", false
	}
	return abs, true
}

// ManifestPath returns the manifest path inside dir.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestFileName)
}

// ValueFilePath returns the value-file path for key inside dir.
func ValueFilePath(dir, key string) string {
	return filepath.Join(dir, keyhash.Hash(key))
}
