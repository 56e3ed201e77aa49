package storage

import "os"

// Platform supplies the host inputs for directory resolution.
// Either method may report absence.
type Platform interface {
	// AppSupportDir returns the per-user application support directory.
	AppSupportDir() (string, bool)
	// BundleID returns the running application's bundle identifier.
	BundleID() (string, bool)
}

// HostPlatform resolves the application support directory from the OS.
//
// On macOS this is ~/Library/Application Support; on Linux it follows
// $XDG_CONFIG_HOME. There is no process-wide bundle identifier outside an
// app bundle, so ID must be configured.
type HostPlatform struct {
	ID string
}

// AppSupportDir implements Platform.
func (p HostPlatform) AppSupportDir() (string, bool) {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "", false
	}
	return dir, true
}

// BundleID implements Platform.
func (p HostPlatform) BundleID() (string, bool) {
	return p.ID, p.ID != ""
}

// StaticPlatform returns fixed values. Empty fields report absence.
type StaticPlatform struct {
	Dir string
	ID  string
}

// AppSupportDir implements Platform.
func (p StaticPlatform) AppSupportDir() (string, bool) {
	return p.Dir, p.Dir != ""
}

// BundleID implements Platform.
func (p StaticPlatform) BundleID() (string, bool) {
	return p.ID, p.ID != ""
}
