package observe

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the soundlaw instruments. All fields are safe for
// concurrent use.
type Metrics struct {
	// PairsAligned counts pairs with an alignment. Attribute "pass".
	PairsAligned metric.Int64Counter

	// PairsSkipped counts pairs without an alignment path. Attribute "pass".
	PairsSkipped metric.Int64Counter

	// PairsMatched counts second-pass matches.
	PairsMatched metric.Int64Counter

	// MappingsSelected counts correspondences kept by refinement.
	MappingsSelected metric.Int64Counter

	// ExperimentRuns counts finished random-cognate experiments.
	// Attribute "method".
	ExperimentRuns metric.Int64Counter

	// PhaseDuration tracks wall time per pipeline phase. Attribute "phase".
	PhaseDuration metric.Float64Histogram
}

// phaseBuckets covers sub-millisecond toy runs up to minute-long corpora.
var phaseBuckets = []float64{
	0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60,
}

// NewMetrics creates every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(scopeName)
	var err error
	met := &Metrics{}

	if met.PairsAligned, err = m.Int64Counter("soundlaw.pairs.aligned",
		metric.WithDescription("Sequence pairs aligned, by pass."),
	); err != nil {
		return nil, err
	}
	if met.PairsSkipped, err = m.Int64Counter("soundlaw.pairs.skipped",
		metric.WithDescription("Sequence pairs without an alignment path, by pass."),
	); err != nil {
		return nil, err
	}
	if met.PairsMatched, err = m.Int64Counter("soundlaw.pairs.matched",
		metric.WithDescription("Second-pass alignments within the edit limit."),
	); err != nil {
		return nil, err
	}
	if met.MappingsSelected, err = m.Int64Counter("soundlaw.mappings.selected",
		metric.WithDescription("Correspondences kept by refinement."),
	); err != nil {
		return nil, err
	}
	if met.ExperimentRuns, err = m.Int64Counter("soundlaw.experiment.runs",
		metric.WithDescription("Random-cognate experiments finished, by method."),
	); err != nil {
		return nil, err
	}
	if met.PhaseDuration, err = m.Float64Histogram("soundlaw.phase.duration",
		metric.WithDescription("Wall time of a learner phase."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(phaseBuckets...),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns a package-level Metrics on the global provider,
// created on first use. Tests should use NewMetrics instead.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})

	return defaultMetrics
}

// RecordPhase records the duration of phase.
func (m *Metrics) RecordPhase(ctx context.Context, phase string, d time.Duration) {
	m.PhaseDuration.Record(ctx, d.Seconds(),
		metric.WithAttributes(attribute.String("phase", phase)),
	)
}

// RecordPass adds the aligned and skipped counts of one pass.
func (m *Metrics) RecordPass(ctx context.Context, pass string, aligned, skipped int) {
	attrs := metric.WithAttributes(attribute.String("pass", pass))
	m.PairsAligned.Add(ctx, int64(aligned), attrs)
	m.PairsSkipped.Add(ctx, int64(skipped), attrs)
}
