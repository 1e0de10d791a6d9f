package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/signalsfoundry/ds9-regions/catalog"
	"github.com/signalsfoundry/ds9-regions/internal/logging"
	"github.com/signalsfoundry/ds9-regions/internal/observability"
	"github.com/signalsfoundry/ds9-regions/model"
	"github.com/signalsfoundry/ds9-regions/regionfile"
)

// MetricsRecorder receives per-record outcomes and run timings.
type MetricsRecorder interface {
	RecordWritten()
	RecordSkipped(reason string)
	SetMatched(n int)
	ObserveExport(d time.Duration)
}

// Outcome is the result of processing one record.
type Outcome struct {
	Index int
	Name  string
	Entry regionfile.Entry
	Err   error
}

// Skipped reports whether the record was dropped.
func (o Outcome) Skipped() bool { return o.Err != nil }

// Skip describes a record left out of the region file.
type Skip struct {
	Index  int
	Name   string
	Reason error
}

// Report summarises one export run.
type Report struct {
	Total   int
	Matched int
	Written int
	Skipped []Skip
}

// Exporter runs the search, normalise, serialise and write pipeline.
type Exporter struct {
	Normalizer *Normalizer
	Serializer Serializer
	Style      regionfile.Style
	Log        logging.Logger
	Metrics    MetricsRecorder

	// Workers > 1 processes records concurrently. Output order always
	// follows the input order.
	Workers int
}

// NewExporter constructs an exporter with a default normalizer.
func NewExporter(style regionfile.Style, log logging.Logger) *Exporter {
	if log == nil {
		log = logging.Noop()
	}
	return &Exporter{
		Normalizer: NewNormalizer(),
		Style:      style,
		Log:        log,
	}
}

// Process normalises and serialises a single record.
func (e *Exporter) Process(rec model.RegionRecord) (regionfile.Entry, error) {
	if v, ok := rec.Mistyped(model.KeyEpoch); ok && rec.Epoch == nil {
		return regionfile.Entry{}, fmt.Errorf("%w: %q", ErrUnsupportedEpoch, v)
	}
	if err := rec.Validate(); err != nil {
		return regionfile.Entry{}, err
	}
	n := e.Normalizer
	if n == nil {
		n = NewNormalizer()
	}
	pos, err := n.Normalize(rec.Coord, rec.CType, *rec.Epoch)
	if err != nil {
		return regionfile.Entry{}, err
	}
	return e.Serializer.SerializeRecord(rec, pos, e.Style)
}

// Build processes every record and returns one outcome per record, in order.
// The index of each outcome is the record's position in records.
func (e *Exporter) Build(ctx context.Context, records []model.RegionRecord) []Outcome {
	out := make([]Outcome, len(records))
	work := func(i int) {
		entry, err := e.Process(records[i])
		out[i] = Outcome{Index: i, Name: records[i].Name, Entry: entry, Err: err}
	}

	if e.Workers <= 1 {
		for i := range records {
			work(i)
		}
		return out
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(e.Workers)
	for i := range records {
		g.Go(func() error {
			work(i)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// Export filters records by query, builds the entries and writes the region
// file at path. Per-record failures are logged and reported as skips; only a
// write failure is returned as an error.
func (e *Exporter) Export(ctx context.Context, records []model.RegionRecord, query, path string) (Report, error) {
	start := time.Now()
	log := e.logger(ctx)

	ctx, span := observability.StartSpan(ctx, "Export",
		attribute.Int("catalog.records", len(records)),
		attribute.String("search.query", query),
		attribute.String("output.path", path),
	)
	defer span.End()

	idx := catalog.Match(records, query)
	selected := make([]model.RegionRecord, len(idx))
	for i, j := range idx {
		selected[i] = records[j]
	}
	if e.Metrics != nil {
		e.Metrics.SetMatched(len(selected))
	}
	log.Info(ctx, "search complete",
		logging.String("query", query),
		logging.Int("matched", len(selected)),
		logging.Int("total", len(records)),
	)

	report := Report{Total: len(records), Matched: len(selected)}
	var entries []regionfile.Entry
	for _, o := range e.Build(ctx, selected) {
		catalogIndex := idx[o.Index]
		if o.Skipped() {
			reason := SkipReason(o.Err)
			log.Warn(ctx, "skipping record",
				logging.Int("index", catalogIndex),
				logging.String("name", o.Name),
				logging.String("reason", reason),
				logging.Err(o.Err),
			)
			report.Skipped = append(report.Skipped, Skip{Index: catalogIndex, Name: o.Name, Reason: o.Err})
			if e.Metrics != nil {
				e.Metrics.RecordSkipped(reason)
			}
			continue
		}
		entries = append(entries, o.Entry)
		if e.Metrics != nil {
			e.Metrics.RecordWritten()
		}
	}
	report.Written = len(entries)
	span.SetAttributes(
		attribute.Int("export.written", report.Written),
		attribute.Int("export.skipped", len(report.Skipped)),
	)

	if err := regionfile.Write(path, FrameFK5, entries, e.Style); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "write failed")
		return report, fmt.Errorf("Export: %w", err)
	}

	if e.Metrics != nil {
		e.Metrics.ObserveExport(time.Since(start))
	}
	log.Info(ctx, "region file written",
		logging.String("path", path),
		logging.Int("written", report.Written),
		logging.Int("skipped", len(report.Skipped)),
	)
	return report, nil
}

func (e *Exporter) logger(ctx context.Context) logging.Logger {
	if e.Log != nil {
		return e.Log
	}
	return logging.LoggerFromContext(ctx)
}

// SkipReason maps a per-record error to a short metric/log label.
func SkipReason(err error) string {
	switch {
	case errors.Is(err, model.ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrUnsupportedCoordinateSystem):
		return "unsupported_coordinate_system"
	case errors.Is(err, ErrUnsupportedEpoch):
		return "unsupported_epoch"
	case errors.Is(err, ErrInvalidCoordinate):
		return "invalid_coordinate"
	case errors.Is(err, ErrUnsupportedShapeType):
		return "unsupported_shape_type"
	case errors.Is(err, ErrInvalidShape):
		return "invalid_shape"
	case errors.Is(err, ErrUnsupportedUnit):
		return "unsupported_unit"
	default:
		return "other"
	}
}
