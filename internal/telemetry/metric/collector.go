// Package metric provides Prometheus metrics for asyncstorage.
package metric

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/asyncstorage-go/pkg/keyhash"
)

// DirCollector reports the value files present in the storage directory.
//
// The directory is listed on every scrape; nothing is cached.
type DirCollector struct {
	dir func() (string, bool)

	files *prometheus.Desc
	bytes *prometheus.Desc
}

// NewDirCollector creates a collector for the directory returned by dir.
// When dir reports absence the collector emits nothing.
func NewDirCollector(dir func() (string, bool)) *DirCollector {
	return &DirCollector{
		dir: dir,
		files: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "value_files"),
			"Number of value files in the storage directory.",
			nil, nil,
		),
		bytes: prometheus.NewDesc(
			prometheus.BuildFQName(Namespace, "", "value_file_bytes"),
			"Total size of value files in the storage directory.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *DirCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.files
	ch <- c.bytes
}

// Collect implements prometheus.Collector.
func (c *DirCollector) Collect(ch chan<- prometheus.Metric) {
	dir, ok := c.dir()
	if !ok {
		return
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var count, size int64
	for _, e := range entries {
		if e.IsDir() || !keyhash.IsHashName(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		count++
		size += info.Size()
	}

	ch <- prometheus.MustNewConstMetric(c.files, prometheus.GaugeValue, float64(count))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.GaugeValue, float64(size))
}
