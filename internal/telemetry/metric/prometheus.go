// Package metric provides Prometheus metrics for asyncstorage.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name.
const Namespace = "asyncstorage"

// Registry holds all reader metrics.
type Registry struct {
	registry *prometheus.Registry

	// Lookup metrics
	Lookups        *prometheus.CounterVec
	LookupFailures *prometheus.CounterVec

	// Manifest metrics
	ManifestLoads   *prometheus.CounterVec
	ManifestEntries prometheus.Gauge

	// File metrics
	FileReads *prometheus.CounterVec
}

// NewRegistry creates a registry backed by a fresh prometheus.Registry.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := newMetrics()
	r.registry = reg
	reg.MustRegister(r.Lookups, r.LookupFailures, r.ManifestLoads, r.ManifestEntries, r.FileReads)
	return r
}

func newMetrics() *Registry {
	return &Registry{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lookups_total",
			Help:      "Key lookups by the source that answered them.",
		}, []string{"source"}),
		LookupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "lookup_failures_total",
			Help:      "Absorbed lookup failures by reason.",
		}, []string{"reason"}),
		ManifestLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "manifest_loads_total",
			Help:      "Manifest loads by result.",
		}, []string{"result"}),
		ManifestEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "manifest_entries",
			Help:      "Number of entries in the most recently loaded manifest.",
		}),
		FileReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "file_reads_total",
			Help:      "File read attempts by result.",
		}, []string{"result"}),
	}
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Register adds an extra collector to the registry.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// ObserveLookup records a lookup answered by source ("manifest", "file" or "miss").
func (r *Registry) ObserveLookup(source string) {
	if r == nil {
		return
	}
	r.Lookups.WithLabelValues(source).Inc()
}

// ObserveFailure records an absorbed failure.
func (r *Registry) ObserveFailure(reason string) {
	if r == nil {
		return
	}
	r.LookupFailures.WithLabelValues(reason).Inc()
}

// ObserveManifestLoad records a manifest load and its entry count.
func (r *Registry) ObserveManifestLoad(entries int, ok bool) {
	if r == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "empty"
	}
	r.ManifestLoads.WithLabelValues(result).Inc()
	r.ManifestEntries.Set(float64(entries))
}

// ObserveFileRead records a file read attempt.
func (r *Registry) ObserveFileRead(ok bool) {
	if r == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "absent"
	}
	r.FileReads.WithLabelValues(result).Inc()
}

// WriteTextfile writes all gathered metrics to path in the text exposition
// format. The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
