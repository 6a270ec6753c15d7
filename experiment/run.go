package experiment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/soundlaw/cooccur"
	"github.com/katalvlaran/soundlaw/corpus"
	"github.com/katalvlaran/soundlaw/internal/observe"
	"github.com/katalvlaran/soundlaw/learner"
)

// Options carries collaborators for Run.
type Options struct {
	Logger  *slog.Logger
	Metrics *observe.Metrics
}

// Option is a functional option for Run.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithMetrics sets the instruments.
func WithMetrics(m *observe.Metrics) Option { return func(o *Options) { o.Metrics = m } }

// Batch is the result of Run.
type Batch struct {
	ID       uuid.UUID
	Outcomes []Outcome
}

// Run executes cfg.Experiments experiments and streams their output to w in
// experiment order.
func Run(ctx context.Context, roots1, roots2 *corpus.Roots, cfg Config, w io.Writer, opts ...Option) (*Batch, error) {
	if roots1 == nil || roots2 == nil {
		return nil, ErrNilRoots
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := Options{Logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Metrics == nil {
		o.Metrics = observe.DefaultMetrics()
	}
	parallel := max(1, cfg.Parallel)

	b := &Batch{ID: uuid.New(), Outcomes: make([]Outcome, 0, cfg.Experiments)}
	log := o.Logger.With(slog.String("batch", b.ID.String()), slog.String("method", cfg.Method.String()))
	log.Info("experiment: start",
		slog.Int("experiments", cfg.Experiments),
		slog.Int("etyma", cfg.Etyma),
		slog.Uint64("seed", cfg.Seed),
	)

	// Batches of `parallel` experiments run together; their buffered output
	// is flushed in order before the next batch starts.
	for start := 0; start < cfg.Experiments; start += parallel {
		end := min(start+parallel, cfg.Experiments)
		bufs := make([]bytes.Buffer, end-start)
		outs := make([]Outcome, end-start)

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				out, err := one(gctx, i, roots1, roots2, cfg, &bufs[i-start], log, o.Metrics)
				outs[i-start] = out
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return b, err
		}

		for k := range bufs {
			if _, err := bufs[k].WriteTo(w); err != nil {
				return b, fmt.Errorf("experiment: write: %w", err)
			}
			o.Metrics.ExperimentRuns.Add(ctx, 1,
				metric.WithAttributes(attribute.String("method", cfg.Method.String())))
		}
		b.Outcomes = append(b.Outcomes, outs...)
	}

	log.Info("experiment: done", slog.Int("runs", len(b.Outcomes)))

	return b, nil
}

// one runs experiment i, writing its lines and RUN footer to buf.
func one(ctx context.Context, i int, roots1, roots2 *corpus.Roots, cfg Config, buf *bytes.Buffer, log *slog.Logger, met *observe.Metrics) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
	e1 := roots1.Etyma(rng, cfg.Etyma, cfg.MaxHomophones)
	e2 := roots2.Etyma(rng, cfg.Etyma, cfg.MaxHomophones)
	n := min(len(e1), len(e2))
	if len(e1) != len(e2) {
		log.Warn("experiment: etyma lists differ in length; truncating",
			slog.Int("run", i), slog.Int("list1", len(e1)), slog.Int("list2", len(e2)))
	}

	out := Outcome{Run: i, Pairs: n}
	switch cfg.Method {
	case MethodAligner:
		pairs := make([]corpus.Pair, n)
		for k := 0; k < n; k++ {
			pairs[k] = corpus.Pair{Line: k + 1, A: strings.Fields(e1[k]), B: strings.Fields(e2[k])}
		}
		res, err := learner.Run(ctx, pairs, cfg.Learner, learner.WithLogger(log), learner.WithMetrics(met))
		switch {
		case errors.Is(err, cooccur.ErrNoCoverage):
			log.Warn("experiment: no coverage", slog.Int("run", i))
		case err != nil:
			return out, fmt.Errorf("experiment: run %d: %w", i, err)
		default:
			if err := res.Write(buf, cfg.PrintMappings); err != nil {
				return out, err
			}
			out.Successes = res.MatchCount()
		}
	default:
		for k := 0; k < n; k++ {
			if float64(Distance(e1[k], e2[k])) <= cfg.LevenshteinThreshold {
				fmt.Fprintf(buf, "%s\t%s\n", e1[k], e2[k])
				out.Successes++
			}
		}
	}
	fmt.Fprintf(buf, "RUN:\t%d\t%d\n", i, out.Successes)

	return out, nil
}

// Distance is the Levenshtein distance between two space-separated token
// sequences, counting whole tokens rather than characters.
func Distance(a, b string) int {
	enc := make(map[string]rune)
	code := func(s string) string {
		var sb strings.Builder
		for _, tok := range strings.Fields(s) {
			r, ok := enc[tok]
			if !ok {
				r = rune(0xE000 + len(enc)) // private use area
				enc[tok] = r
			}
			sb.WriteRune(r)
		}
		return sb.String()
	}

	return matchr.Levenshtein(code(a), code(b))
}
