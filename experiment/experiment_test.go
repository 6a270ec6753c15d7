package experiment_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/katalvlaran/soundlaw/corpus"
	"github.com/katalvlaran/soundlaw/experiment"
	"github.com/katalvlaran/soundlaw/internal/observe"
)

func opts(t *testing.T) []experiment.Option {
	t.Helper()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := observe.NewMetrics(mp)
	require.NoError(t, err)
	return []experiment.Option{
		experiment.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		experiment.WithMetrics(m),
	}
}

func roots(entries ...corpus.Root) *corpus.Roots { return corpus.NewRoots(entries) }

func TestDistance_CountsTokens(t *testing.T) {
	assert.Equal(t, 0, experiment.Distance("k a t", "k a t"))
	assert.Equal(t, 1, experiment.Distance("k a t", "k a d"))
	assert.Equal(t, 2, experiment.Distance("th a", "t h a"))
	assert.Equal(t, 3, experiment.Distance("a b c", ""))
}

func TestParseMethod(t *testing.T) {
	m, err := experiment.ParseMethod("aligner")
	require.NoError(t, err)
	assert.Equal(t, experiment.MethodAligner, m)
	_, err = experiment.ParseMethod("lingpy")
	assert.ErrorIs(t, err, experiment.ErrUnknownMethod)
}

func TestRun_Validation(t *testing.T) {
	r := roots(corpus.Root{Form: "a", Count: 1})
	_, err := experiment.Run(context.Background(), nil, r, experiment.DefaultConfig(), io.Discard, opts(t)...)
	assert.ErrorIs(t, err, experiment.ErrNilRoots)

	cfg := experiment.DefaultConfig()
	cfg.MaxHomophones = 0
	_, err = experiment.Run(context.Background(), r, r, cfg, io.Discard, opts(t)...)
	assert.ErrorIs(t, err, experiment.ErrBadConfig)
}

// TestRun_Levenshtein: every pair is within distance 1.
func TestRun_Levenshtein(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Experiments = 2
	cfg.Etyma = 3
	cfg.LevenshteinThreshold = 1

	var buf bytes.Buffer
	b, err := experiment.Run(context.Background(),
		roots(corpus.Root{Form: "k a t", Count: 5}),
		roots(corpus.Root{Form: "k a d", Count: 5}),
		cfg, &buf, opts(t)...)
	require.NoError(t, err)

	line := "k a t\tk a d\n"
	want := strings.Repeat(line, 3) + "RUN:\t0\t3\n" + strings.Repeat(line, 3) + "RUN:\t1\t3\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, []experiment.Outcome{{Run: 0, Pairs: 3, Successes: 3}, {Run: 1, Pairs: 3, Successes: 3}}, b.Outcomes)
	assert.NotEqual(t, uuid.Nil, b.ID)
}

// TestRun_ParallelIsDeterministic: output depends on the seed only.
func TestRun_ParallelIsDeterministic(t *testing.T) {
	r1 := roots(
		corpus.Root{Form: "k a t", Count: 4}, corpus.Root{Form: "p a", Count: 3},
		corpus.Root{Form: "t i", Count: 2}, corpus.Root{Form: "k u", Count: 5},
	)
	r2 := roots(
		corpus.Root{Form: "g a d", Count: 4}, corpus.Root{Form: "f a", Count: 3},
		corpus.Root{Form: "d i", Count: 2}, corpus.Root{Form: "k u", Count: 5},
	)
	outputs := map[int]string{}
	for _, parallel := range []int{1, 3, 8} {
		cfg := experiment.DefaultConfig()
		cfg.Experiments = 10
		cfg.Etyma = 6
		cfg.MaxHomophones = 2
		cfg.Seed = 42
		cfg.Parallel = parallel

		var buf bytes.Buffer
		_, err := experiment.Run(context.Background(), r1, r2, cfg, &buf, opts(t)...)
		require.NoError(t, err)
		outputs[parallel] = buf.String()
	}
	assert.Equal(t, outputs[1], outputs[3])
	assert.Equal(t, outputs[1], outputs[8])
	assert.Equal(t, 10, strings.Count(outputs[1], "RUN:\t"))
}

// TestRun_Aligner: the learner judges each experiment.
func TestRun_Aligner(t *testing.T) {
	cfg := experiment.DefaultConfig()
	cfg.Method = experiment.MethodAligner
	cfg.Experiments = 3
	cfg.Etyma = 4
	cfg.Learner.Workers = 1

	r := roots(corpus.Root{Form: "k a t", Count: 2}, corpus.Root{Form: "d o g", Count: 2})
	var buf bytes.Buffer
	b, err := experiment.Run(context.Background(), r, r, cfg, &buf, opts(t)...)
	require.NoError(t, err)
	require.Len(t, b.Outcomes, 3)
	for _, o := range b.Outcomes {
		assert.Equal(t, 4, o.Pairs)
		assert.GreaterOrEqual(t, o.Successes, 0)
		assert.LessOrEqual(t, o.Successes, o.Pairs)
	}
	assert.Contains(t, buf.String(), "HOMOPHONE_GROUPS:\t")
	assert.Contains(t, buf.String(), "RUN:\t2\t")
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := roots(corpus.Root{Form: "a", Count: 1})
	cfg := experiment.DefaultConfig()
	cfg.Experiments = 2
	_, err := experiment.Run(ctx, r, r, cfg, io.Discard, opts(t)...)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	s := experiment.Summarize([]experiment.Outcome{
		{Successes: 4}, {Successes: 2}, {Successes: 1}, {Successes: 2},
	})
	assert.Equal(t, 4, s.Runs)
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 4, s.Max)
	assert.InDelta(t, 2.25, s.Mean, 1e-12)
	assert.InDelta(t, 1.258305739, s.StdDev, 1e-6)
	assert.InDelta(t, 2.0, s.Median, 1e-12)
	assert.Equal(t, []experiment.Bin{{Successes: 1, Runs: 1}, {Successes: 2, Runs: 2}, {Successes: 4, Runs: 1}}, s.Histogram)

	var buf bytes.Buffer
	require.NoError(t, experiment.WriteSummary(&buf, s))
	assert.Contains(t, buf.String(), "MEAN:\t2.2500\n")
	assert.Contains(t, buf.String(), "BIN:\t2\t2\n")

	assert.Equal(t, experiment.Summary{}, experiment.Summarize(nil))
	one := experiment.Summarize([]experiment.Outcome{{Successes: 7}})
	assert.Zero(t, one.StdDev)
	assert.Equal(t, []experiment.Bin{{Successes: 7, Runs: 1}}, one.Histogram)
}
