// Command cognatesim measures how many "cognates" chance alone produces:
// it draws random etyma from two root lists, pairs them, and counts matches
// over many experiments.
//
// Flags:
//
//	-list1, -list2           root lists (root<TAB>count<TAB>prob)
//	-config                  YAML config path (default $SOUNDLAW_CONFIG)
//	-experiments             number of experiments
//	-etyma                   etyma drawn per experiment
//	-max-homophones          copies of any one root allowed per draw
//	-max-distinct-roots      distinct roots kept per list (-1 = all)
//	-method                  aligner or levenshtein
//	-levenshtein-threshold   largest token edit distance counted as a match
//	-seed                    random seed (0 = time based)
//	-max-zeroes              aligner: insertions+deletions still counted as a match
//	-max-allowed-mappings    aligner: partners kept per symbol and direction
//	-initial-only            aligner: use only the first symbol of every root
//	-print-mappings          aligner: print each run's mappings (default true)
//	-parallel                experiments run concurrently
//	-metrics-addr            serve Prometheus metrics on this address
//
// Aligner runs honour the soundlaw aligner settings from the config.
// Experiment output goes to stdout; the histogram summary goes to stderr.
//
// Exit codes: 0 = success, 1 = I/O error, 2 = configuration error.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/corpus"
	"github.com/katalvlaran/soundlaw/experiment"
	"github.com/katalvlaran/soundlaw/internal/cli"
	"github.com/katalvlaran/soundlaw/internal/config"
	"github.com/katalvlaran/soundlaw/internal/observe"
	"github.com/katalvlaran/soundlaw/learner"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cognatesim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list1 := fs.String("list1", "", "first root list")
	list2 := fs.String("list2", "", "second root list")
	configPath := fs.String("config", "", "YAML config path (default $"+config.PathEnv+")")
	experiments := fs.Int("experiments", 1000, "number of experiments")
	etyma := fs.Int("etyma", 1000, "etyma per experiment")
	maxHomophones := fs.Int("max-homophones", 5, "maximum copies of any root per draw")
	maxDistinct := fs.Int("max-distinct-roots", -1, "distinct roots kept per list (-1 = all)")
	method := fs.String("method", "levenshtein", "aligner or levenshtein")
	threshold := fs.Float64("levenshtein-threshold", 3, "maximum token edit distance for a match")
	seed := fs.Uint64("seed", 0, "random seed (0 = time based)")
	maxZeroes := fs.Int("max-zeroes", 1, "aligner: maximum insertions+deletions for a match")
	maxMappings := fs.Int("max-allowed-mappings", 2, "aligner: maximum mappings kept per phone and direction")
	initialOnly := fs.Bool("initial-only", false, "aligner: use only the initial sound of each root")
	printMappings := fs.Bool("print-mappings", true, "aligner: print each run's mappings before its matches")
	parallel := fs.Int("parallel", 1, "experiments run concurrently")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address")
	if err := fs.Parse(args); err != nil {
		return cli.ExitConfig
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return cli.ExitConfig
	}
	cli.Visit(fs, map[string]func(){
		"experiments":           func() { cfg.Experiment.Experiments = *experiments },
		"etyma":                 func() { cfg.Experiment.Etyma = *etyma },
		"max-homophones":        func() { cfg.Experiment.MaxHomophones = *maxHomophones },
		"max-distinct-roots":    func() { cfg.Experiment.MaxDistinctRoots = *maxDistinct },
		"method":                func() { cfg.Experiment.Method = *method },
		"levenshtein-threshold": func() { cfg.Experiment.LevenshteinThreshold = *threshold },
		"seed":                  func() { cfg.Experiment.Seed = *seed },
		"max-zeroes":            func() { cfg.Aligner.MaxZeroes = *maxZeroes },
		"max-allowed-mappings":  func() { cfg.Aligner.MaxAllowedMappings = *maxMappings },
		"initial-only":          func() { cfg.Aligner.InitialOnly = *initialOnly },
		"print-mappings":        func() { cfg.Experiment.PrintMappings = *printMappings },
		"metrics-addr":          func() { cfg.Metrics.Addr = *metricsAddr },
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return cli.ExitConfig
	}

	logger := observe.NewLogger(cfg.Log)
	if *list1 == "" || *list2 == "" {
		logger.Error("both -list1 and -list2 are required")
		return cli.ExitConfig
	}

	shutdown, err := cli.StartMetrics(ctx, cfg.Metrics, logger)
	if err != nil {
		logger.Error("start metrics", slog.String("error", err.Error()))
		return cli.ExitConfig
	}
	defer shutdown()

	ecfg, err := experimentConfig(cfg, *parallel)
	if err != nil {
		logger.Error("configuration error", slog.String("error", err.Error()))
		return cli.ExitConfig
	}
	if ecfg.Seed == 0 {
		ecfg.Seed = uint64(time.Now().UnixNano())
	}
	logger.Info("seed", slog.Uint64("seed", ecfg.Seed))

	rng := rand.New(rand.NewPCG(ecfg.Seed, 0))
	roots := make([]*corpus.Roots, 2)
	for i, path := range []string{*list1, *list2} {
		r, err := corpus.LoadRoots(path)
		if err != nil {
			logger.Error("load roots", slog.String("path", path), slog.String("error", err.Error()))
			return cli.ExitIO
		}
		roots[i] = r.Limit(rng, cfg.Experiment.MaxDistinctRoots)
	}

	bw := bufio.NewWriter(stdout)
	batch, err := experiment.Run(ctx, roots[0], roots[1], ecfg, bw, experiment.WithLogger(logger))
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		logger.Error("experiments failed", slog.String("error", err.Error()))
		return cli.ExitIO
	}

	if err := experiment.WriteSummary(stderr, experiment.Summarize(batch.Outcomes)); err != nil {
		return cli.ExitIO
	}

	return cli.ExitOK
}

// experimentConfig maps the file/flag configuration onto experiment.Config.
func experimentConfig(cfg *config.Config, parallel int) (experiment.Config, error) {
	m, err := experiment.ParseMethod(cfg.Experiment.Method)
	if err != nil {
		return experiment.Config{}, err
	}
	am, err := align.ParseMethod(cfg.Aligner.Method)
	if err != nil {
		return experiment.Config{}, err
	}

	return experiment.Config{
		Experiments:          cfg.Experiment.Experiments,
		Etyma:                cfg.Experiment.Etyma,
		MaxHomophones:        cfg.Experiment.MaxHomophones,
		Method:               m,
		LevenshteinThreshold: cfg.Experiment.LevenshteinThreshold,
		Seed:                 cfg.Experiment.Seed,
		PrintMappings:        cfg.Experiment.PrintMappings,
		Parallel:             parallel,
		Learner: learner.Config{
			MaxZeroes:          cfg.Aligner.MaxZeroes,
			MaxAllowedMappings: cfg.Aligner.MaxAllowedMappings,
			InitialOnly:        cfg.Aligner.InitialOnly,
			Method:             am,
			Workers:            cfg.Aligner.Workers,
		},
	}, nil
}
