package observe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newTestMetrics returns Metrics backed by a ManualReader.
func newTestMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	m, err := NewMetrics(mp)
	require.NoError(t, err)
	return m, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

// sumByAttr returns the data point value whose attribute key equals value.
func sumByAttr(t *testing.T, rm metricdata.ResourceMetrics, name, key, value string) int64 {
	t.Helper()
	met := findMetric(rm, name)
	require.NotNil(t, met, name)
	sum, ok := met.Data.(metricdata.Sum[int64])
	require.True(t, ok, "%s is not a sum", name)
	for _, dp := range sum.DataPoints {
		for _, kv := range dp.Attributes.ToSlice() {
			if string(kv.Key) == key && kv.Value.AsString() == value {
				return dp.Value
			}
		}
	}
	t.Fatalf("%s: no data point with %s=%s", name, key, value)
	return 0
}

func TestRecordPass(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordPass(ctx, "pass1", 5, 0)
	m.RecordPass(ctx, "pass2", 3, 2)
	m.RecordPass(ctx, "pass2", 1, 1)

	rm := collect(t, reader)
	assert.EqualValues(t, 5, sumByAttr(t, rm, "soundlaw.pairs.aligned", "pass", "pass1"))
	assert.EqualValues(t, 4, sumByAttr(t, rm, "soundlaw.pairs.aligned", "pass", "pass2"))
	assert.EqualValues(t, 3, sumByAttr(t, rm, "soundlaw.pairs.skipped", "pass", "pass2"))
}

func TestRecordPhase(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.RecordPhase(ctx, "estimate", 2*time.Millisecond)
	m.RecordPhase(ctx, "estimate", 3*time.Millisecond)

	rm := collect(t, reader)
	met := findMetric(rm, "soundlaw.phase.duration")
	require.NotNil(t, met)
	hist, ok := met.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.EqualValues(t, 2, hist.DataPoints[0].Count)
	assert.InDelta(t, 0.005, hist.DataPoints[0].Sum, 1e-9)
}

func TestPlainCounters(t *testing.T) {
	m, reader := newTestMetrics(t)
	ctx := context.Background()

	m.PairsMatched.Add(ctx, 7)
	m.MappingsSelected.Add(ctx, 4)

	rm := collect(t, reader)
	for name, want := range map[string]int64{
		"soundlaw.pairs.matched":     7,
		"soundlaw.mappings.selected": 4,
	} {
		met := findMetric(rm, name)
		require.NotNil(t, met, name)
		sum, ok := met.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		assert.Equal(t, want, sum.DataPoints[0].Value, name)
	}
}

func TestDefaultMetrics_Singleton(t *testing.T) {
	assert.Same(t, DefaultMetrics(), DefaultMetrics())
}
