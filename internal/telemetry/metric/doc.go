// Package metric provides Prometheus metrics for asyncstorage.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: lookup, manifest and file-read counters
//   - collector.go: storage directory collector (value-file count and bytes)
//
// Metrics are registered on a caller-supplied registerer and can be written
// to a node-exporter textfile with WriteTextfile. A nil *Registry is valid
// and records nothing.
package metric
