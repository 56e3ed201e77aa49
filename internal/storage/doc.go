// Package storage reads values from an AsyncStorage directory.
//
// The on-disk layout is written by the React Native AsyncStorage module and
// is only ever read here:
//
//	<app-support-dir>/<bundle-id>/RCTAsyncLocalStorage_V1/
//	    manifest.json    JSON object of inline values
//	    <md5(key)>       one file per value too large to inline
//
// A Reader resolves the directory, loads the manifest once, and answers
// lookups from the manifest first and the hash-named value file second.
//
// Failure policy:
//
//   - A missing directory, manifest or value file is absence, not an error
//   - A malformed manifest is treated as an empty manifest
//   - A value of the wrong type is absence
//
// Failures are logged at debug level and counted in metrics, then dropped.
// Get only ever reports whether a value was found.
package storage
