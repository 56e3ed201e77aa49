// Package output renders asyncstorage-cli results.
//
//   - formatter.go: Formatter interface and factory
//   - text.go: human-readable output, raw strings and aligned tables
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// Stored values keep their exact JSON numbers in every format.
package output
