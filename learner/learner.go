package learner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/cooccur"
	"github.com/katalvlaran/soundlaw/corpus"
	"github.com/katalvlaran/soundlaw/internal/observe"
	"github.com/katalvlaran/soundlaw/model"
	"github.com/katalvlaran/soundlaw/refine"
	"github.com/katalvlaran/soundlaw/report"
	"github.com/katalvlaran/soundlaw/symbols"
)

// Result is everything one run produced.
type Result struct {
	Catalog  *symbols.Catalog
	Stats    *cooccur.Stats
	Initial  *model.Model
	Mappings refine.MappingSet
	Refined  *model.Model

	// Matches holds one entry per pair aligned in pass 2, in input order;
	// Match.Matched tells whether it is within MaxZeroes.
	Matches []report.Match
	Summary report.Summary
	Skipped Skipped
}

// MatchCount returns the number of matched pairs.
func (r *Result) MatchCount() int { return r.Summary.Matches }

// Write emits the optional mapping report, the match lines and the summary.
func (r *Result) Write(w io.Writer, printMappings bool) error {
	if printMappings {
		if err := report.WriteMappings(w, r.Catalog, r.Mappings); err != nil {
			return err
		}
	}
	if err := report.WriteMatches(w, r.Matches); err != nil {
		return err
	}

	return report.WriteSummary(w, r.Summary)
}

// Validate checks c's ranges.
func (c Config) Validate() error {
	switch {
	case c.MaxZeroes < 0:
		return fmt.Errorf("%w: max zeroes %d < 0", ErrBadConfig, c.MaxZeroes)
	case c.MaxAllowedMappings < 1:
		return fmt.Errorf("%w: max allowed mappings %d < 1", ErrBadConfig, c.MaxAllowedMappings)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d < 0", ErrBadConfig, c.Workers)
	case c.Method != align.MethodDP && c.Method != align.MethodLattice:
		return fmt.Errorf("%w: %v", ErrBadConfig, align.ErrUnknownMethod)
	}

	return nil
}

// run bundles one execution's state.
type run struct {
	cfg     Config
	log     *slog.Logger
	met     *observe.Metrics
	workers int
	pairs   []cooccur.Pair
}

// Run executes the two-pass pipeline over raw.
func Run(ctx context.Context, raw []corpus.Pair, cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Metrics == nil {
		o.Metrics = observe.DefaultMetrics()
	}

	ctx, span := observe.StartSpan(ctx, "learner.run")
	defer span.End()

	r := &run{cfg: cfg, log: o.Logger, met: o.Metrics}
	res := &Result{Catalog: symbols.NewCatalog()}

	r.pairs = make([]cooccur.Pair, len(raw))
	for i, p := range raw {
		a, b := res.Catalog.InternAll(p.A), res.Catalog.InternAll(p.B)
		if cfg.InitialOnly {
			a, b = a[:min(1, len(a))], b[:min(1, len(b))]
		}
		r.pairs[i] = cooccur.Pair{A: a, B: b}
	}
	r.workers = cfg.Workers
	if r.workers == 0 {
		r.workers = runtime.GOMAXPROCS(0)
	}
	r.workers = max(1, min(r.workers, len(r.pairs)))
	log := observe.With(ctx, r.log)
	log.Info("learner: start",
		slog.Int("pairs", len(r.pairs)),
		slog.Int("symbols", res.Catalog.Len()-1),
		slog.Int("workers", r.workers),
		slog.String("method", cfg.Method.String()),
		slog.Bool("initial_only", cfg.InitialOnly),
	)

	var err error
	if err = r.phase(ctx, PhaseEstimate, func(ctx context.Context) error {
		if res.Stats, err = cooccur.Estimate(r.pairs, cooccur.WithInitialOnly(cfg.InitialOnly)); err != nil {
			return err
		}
		res.Initial, err = model.Build(res.Stats)
		return err
	}); err != nil {
		return nil, fmt.Errorf("learner: estimate: %w", err)
	}

	var partners *refine.Partners
	if err = r.phase(ctx, PhasePass1, func(ctx context.Context) error {
		partners, res.Skipped.Pass1, err = r.pass1(ctx, res.Initial)
		return err
	}); err != nil {
		return nil, err
	}

	if err = r.phase(ctx, PhaseRefine, func(ctx context.Context) error {
		if res.Mappings, err = partners.Select(cfg.MaxAllowedMappings); err != nil {
			return err
		}
		res.Refined = res.Mappings.Model()
		r.met.MappingsSelected.Add(ctx, int64(res.Mappings.Len()))
		return nil
	}); err != nil {
		return nil, fmt.Errorf("learner: refine: %w", err)
	}

	if err = r.phase(ctx, PhasePass2, func(ctx context.Context) error {
		return r.pass2(ctx, res)
	}); err != nil {
		return nil, err
	}

	log.Info("learner: done",
		slog.Int("matches", res.Summary.Matches),
		slog.Int("mappings", res.Mappings.Len()),
		slog.Int("skipped_pass1", res.Skipped.Pass1),
		slog.Int("skipped_pass2", res.Skipped.Pass2),
	)

	return res, nil
}

// phase wraps fn in a span, a duration measurement and a debug log.
func (r *run) phase(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := observe.StartSpan(ctx, "learner."+name)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	r.met.RecordPhase(ctx, name, elapsed)
	observe.With(ctx, r.log).Debug("learner: phase finished",
		slog.String("phase", name),
		slog.Duration("elapsed", elapsed),
		slog.Any("error", err),
	)
	if err != nil {
		span.RecordError(err)
	}

	return err
}

// fanOut runs visit(worker, i) for every pair index, striding indices over
// r.workers goroutines. It stops early on ctx cancellation.
func (r *run) fanOut(ctx context.Context, visit func(worker, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for w := 0; w < r.workers; w++ {
		g.Go(func() error {
			for i := w; i < len(r.pairs); i += r.workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := visit(w, i); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// pass1 aligns against the initial model and tallies partners.
func (r *run) pass1(ctx context.Context, m *model.Model) (*refine.Partners, int, error) {
	eng, err := align.New(m, align.WithMethod(r.cfg.Method))
	if err != nil {
		return nil, 0, err
	}

	partial := make([]*refine.Partners, r.workers)
	skipped := make([]int, r.workers)
	for w := range partial {
		partial[w] = refine.NewPartners(r.cfg.InitialOnly)
	}

	err = r.fanOut(ctx, func(w, i int) error {
		a, err := eng.Align(r.pairs[i].A, r.pairs[i].B)
		if errors.Is(err, align.ErrNoAlignment) {
			skipped[w]++
			return nil
		}
		if err != nil {
			return fmt.Errorf("learner: pass 1 pair %d: %w", i, err)
		}
		partial[w].Observe(i, a)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	merged := refine.NewPartners(r.cfg.InitialOnly)
	total := 0
	for w := range partial {
		merged.Merge(partial[w])
		total += skipped[w]
	}
	r.met.RecordPass(ctx, PhasePass1, len(r.pairs)-total, total)

	return merged, total, nil
}

// pass2 realigns with the refined model and reports in input order.
func (r *run) pass2(ctx context.Context, res *Result) error {
	eng, err := align.New(res.Refined, align.WithMethod(r.cfg.Method))
	if err != nil {
		return err
	}

	slots := make([]align.Alignment, len(r.pairs))
	found := make([]bool, len(r.pairs))
	err = r.fanOut(ctx, func(_, i int) error {
		a, err := eng.Align(r.pairs[i].A, r.pairs[i].B)
		if errors.Is(err, align.ErrNoAlignment) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("learner: pass 2 pair %d: %w", i, err)
		}
		slots[i], found[i] = a, true
		return nil
	})
	if err != nil {
		return err
	}

	rep, err := report.NewReporter(res.Catalog, r.cfg.MaxZeroes)
	if err != nil {
		return err
	}
	log := observe.With(ctx, r.log)
	for i := range slots {
		if !found[i] {
			res.Skipped.Pass2++
			log.Debug("learner: no alignment", slog.Int("pair", i))
			continue
		}
		res.Matches = append(res.Matches, rep.Observe(i, slots[i]))
	}
	res.Summary = rep.Summary()

	r.met.RecordPass(ctx, PhasePass2, len(r.pairs)-res.Skipped.Pass2, res.Skipped.Pass2)
	r.met.PairsMatched.Add(ctx, int64(res.Summary.Matches))

	return nil
}
