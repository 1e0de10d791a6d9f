package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for regions_records_total.
const (
	OutcomeWritten = "written"
	OutcomeSkipped = "skipped"
)

// ExportCollector bundles Prometheus metrics for region-file exports.
type ExportCollector struct {
	gatherer prometheus.Gatherer

	Records        *prometheus.CounterVec
	Skipped        *prometheus.CounterVec
	ExportDuration prometheus.Histogram
	CatalogRecords prometheus.Gauge
	MatchedRecords prometheus.Gauge
}

// NewExportCollector registers export metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewExportCollector(reg prometheus.Registerer) (*ExportCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	records, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "regions_records_total",
		Help: "Records processed by the exporter, labeled by outcome.",
	}, []string{"outcome"}), "regions_records_total")
	if err != nil {
		return nil, err
	}

	skipped, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "regions_skipped_total",
		Help: "Records skipped during export, labeled by reason.",
	}, []string{"reason"}), "regions_skipped_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "regions_export_duration_seconds",
		Help:    "Wall time of a complete export, including the file write.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}), "regions_export_duration_seconds")
	if err != nil {
		return nil, err
	}

	catalogSize, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "regions_catalog_records",
		Help: "Number of records in the loaded catalog.",
	}), "regions_catalog_records")
	if err != nil {
		return nil, err
	}

	matched, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "regions_matched_records",
		Help: "Number of records selected by the last search.",
	}), "regions_matched_records")
	if err != nil {
		return nil, err
	}

	return &ExportCollector{
		gatherer:       gatherer,
		Records:        records,
		Skipped:        skipped,
		ExportDuration: duration,
		CatalogRecords: catalogSize,
		MatchedRecords: matched,
	}, nil
}

// RecordWritten counts one record emitted to the region file.
func (c *ExportCollector) RecordWritten() {
	if c == nil {
		return
	}
	c.Records.WithLabelValues(OutcomeWritten).Inc()
}

// RecordSkipped counts one record dropped for reason.
func (c *ExportCollector) RecordSkipped(reason string) {
	if c == nil {
		return
	}
	c.Records.WithLabelValues(OutcomeSkipped).Inc()
	c.Skipped.WithLabelValues(reason).Inc()
}

// SetCatalogSize records the catalog size.
func (c *ExportCollector) SetCatalogSize(n int) {
	if c == nil {
		return
	}
	c.CatalogRecords.Set(float64(n))
}

// SetMatched records how many records the search selected.
func (c *ExportCollector) SetMatched(n int) {
	if c == nil {
		return
	}
	c.MatchedRecords.Set(float64(n))
}

// ObserveExport records the duration of one export.
func (c *ExportCollector) ObserveExport(d time.Duration) {
	if c == nil {
		return
	}
	c.ExportDuration.Observe(d.Seconds())
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *ExportCollector) Gatherer() prometheus.Gatherer {
	if c == nil || c.gatherer == nil {
		return prometheus.DefaultGatherer
	}
	return c.gatherer
}

// WriteTextfile dumps the collector's registry in the text exposition format,
// for pickup by a node_exporter textfile collector after a batch run.
func (c *ExportCollector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.Gatherer()); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
