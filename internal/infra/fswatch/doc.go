// Package fswatch reports changes to an AsyncStorage directory.
//
// A Watcher follows a directory with fsnotify and coalesces bursts of
// events with a rate limiter, so a manifest rewrite that touches several
// files produces one notification.
package fswatch
