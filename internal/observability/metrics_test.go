package observability

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestExportCollectorCountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewExportCollector(reg)
	if err != nil {
		t.Fatalf("NewExportCollector: %v", err)
	}

	collector.RecordWritten()
	collector.RecordWritten()
	collector.RecordSkipped("unsupported_epoch")

	if got := testutil.ToFloat64(collector.Records.WithLabelValues(OutcomeWritten)); got != 2 {
		t.Fatalf("regions_records_total{outcome=written} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(collector.Records.WithLabelValues(OutcomeSkipped)); got != 1 {
		t.Fatalf("regions_records_total{outcome=skipped} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.Skipped.WithLabelValues("unsupported_epoch")); got != 1 {
		t.Fatalf("regions_skipped_total{reason=unsupported_epoch} = %v, want 1", got)
	}
}

func TestExportCollectorObservesDuration(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewExportCollector(reg)
	if err != nil {
		t.Fatalf("NewExportCollector: %v", err)
	}
	collector.ObserveExport(15 * time.Millisecond)

	if count := histogramSampleCount(t, reg, "regions_export_duration_seconds", nil); count != 1 {
		t.Fatalf("regions_export_duration_seconds sample_count = %d, want 1", count)
	}
}

func TestExportCollectorReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewExportCollector(reg)
	if err != nil {
		t.Fatalf("first NewExportCollector: %v", err)
	}
	second, err := NewExportCollector(reg)
	if err != nil {
		t.Fatalf("second NewExportCollector: %v", err)
	}
	first.RecordWritten()
	if got := testutil.ToFloat64(second.Records.WithLabelValues(OutcomeWritten)); got != 1 {
		t.Fatalf("expected shared counter, got %v", got)
	}
}

func TestNilExportCollectorIsSafe(t *testing.T) {
	var c *ExportCollector
	c.RecordWritten()
	c.RecordSkipped("x")
	c.SetCatalogSize(3)
	c.SetMatched(2)
	c.ObserveExport(time.Second)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewExportCollector(reg)
	if err != nil {
		t.Fatalf("NewExportCollector: %v", err)
	}
	collector.SetCatalogSize(46)
	collector.SetMatched(24)

	path := filepath.Join(t.TempDir(), "regions.prom")
	if err := collector.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, want := range []string{"regions_catalog_records 46", "regions_matched_records 24"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("textfile missing %q: %s", want, data)
		}
	}
}

func histogramSampleCount(t *testing.T, gatherer prometheus.Gatherer, name string, labels map[string]string) uint64 {
	t.Helper()

	metrics, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, mf := range metrics {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.Metric {
			if matchLabels(m.GetLabel(), labels) && m.GetHistogram() != nil {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}

func matchLabels(got []*dto.LabelPair, want map[string]string) bool {
	if len(got) < len(want) {
		return false
	}
	matched := 0
	for _, lp := range got {
		if val, ok := want[lp.GetName()]; ok && val == lp.GetValue() {
			matched++
		}
	}
	return matched == len(want)
}
