// Package export copies resolved AsyncStorage entries into another store.
//
// Two sinks are provided:
//
//   - BadgerSink: a Badger key-value directory, one key per entry
//   - SQLiteSink: a SQLite database with an entries table
//
// Values are written as their JSON encoding. The source (manifest or file)
// is kept alongside each value. Nothing is ever written to the AsyncStorage
// directory itself.
package export
