// Command soundlaw learns regular phoneme correspondences from a list of
// sequence pairs and reports which pairs they explain.
//
// Flags:
//
//	-examples              path to the pair list (TSV, two columns)
//	-config                YAML config path (default $SOUNDLAW_CONFIG)
//	-max-zeroes            insertions+deletions still counted as a match
//	-max-allowed-mappings  partners kept per symbol and direction
//	-initial-only          use only the first symbol of every sequence
//	-print-mappings        print the refined correspondences first
//	-mappings-yaml         also write the refined correspondences to this YAML file
//	-method                alignment engine: dp or lattice
//	-workers               alignment goroutines (0 = GOMAXPROCS)
//	-metrics-addr          serve Prometheus metrics on this address
//	-print-config          print the effective config and exit
//
// Output: optional mappings, one line per match, the homophone summary and
// finally the match count.
//
// Exit codes: 0 = success, 1 = I/O error, 2 = configuration error.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/soundlaw/align"
	"github.com/katalvlaran/soundlaw/cooccur"
	"github.com/katalvlaran/soundlaw/corpus"
	"github.com/katalvlaran/soundlaw/internal/cli"
	"github.com/katalvlaran/soundlaw/internal/config"
	"github.com/katalvlaran/soundlaw/internal/observe"
	"github.com/katalvlaran/soundlaw/learner"
	"github.com/katalvlaran/soundlaw/report"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("soundlaw", flag.ContinueOnError)
	fs.SetOutput(stderr)
	examples := fs.String("examples", "", "path to the pair list (TSV)")
	configPath := fs.String("config", "", "YAML config path (default $"+config.PathEnv+")")
	maxZeroes := fs.Int("max-zeroes", 1, "maximum insertions+deletions for a match")
	maxMappings := fs.Int("max-allowed-mappings", 2, "maximum mappings kept per phone and direction")
	initialOnly := fs.Bool("initial-only", false, "use only the initial sound of each sequence")
	printMappings := fs.Bool("print-mappings", false, "print the refined mappings before the matches")
	mappingsYAML := fs.String("mappings-yaml", "", "write the refined mappings to this YAML file")
	method := fs.String("method", "dp", "alignment engine: dp or lattice")
	workers := fs.Int("workers", 0, "alignment goroutines (0 = GOMAXPROCS)")
	metricsAddr := fs.String("metrics-addr", "", "serve Prometheus metrics on this address")
	printConfig := fs.Bool("print-config", false, "print the effective configuration and exit")
	if err := fs.Parse(args); err != nil {
		return cli.ExitConfig
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return cli.ExitConfig
	}

	// CLI flags override config.
	cli.Visit(fs, map[string]func(){
		"max-zeroes":           func() { cfg.Aligner.MaxZeroes = *maxZeroes },
		"max-allowed-mappings": func() { cfg.Aligner.MaxAllowedMappings = *maxMappings },
		"initial-only":         func() { cfg.Aligner.InitialOnly = *initialOnly },
		"print-mappings":       func() { cfg.Aligner.PrintMappings = *printMappings },
		"method":               func() { cfg.Aligner.Method = *method },
		"workers":              func() { cfg.Aligner.Workers = *workers },
		"metrics-addr":         func() { cfg.Metrics.Addr = *metricsAddr },
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid config: %v\n", err)
		return cli.ExitConfig
	}

	if *printConfig {
		if err := cfg.Dump(stdout); err != nil {
			fmt.Fprintln(stderr, err)
			return cli.ExitIO
		}
		return cli.ExitOK
	}

	logger := observe.NewLogger(cfg.Log)
	if *examples == "" {
		logger.Error("missing -examples")
		return cli.ExitConfig
	}

	shutdown, err := cli.StartMetrics(ctx, cfg.Metrics, logger)
	if err != nil {
		logger.Error("start metrics", slog.String("error", err.Error()))
		return cli.ExitConfig
	}
	defer shutdown()

	pairs, skipped, err := corpus.LoadPairs(*examples)
	if err != nil {
		logger.Error("load examples", slog.String("error", err.Error()))
		return cli.ExitIO
	}
	if skipped.Count() > 0 {
		logger.Debug("skipped malformed lines", slog.Any("lines", skipped.Malformed))
	}

	m, err := align.ParseMethod(cfg.Aligner.Method)
	if err != nil {
		logger.Error("parse method", slog.String("error", err.Error()))
		return cli.ExitConfig
	}
	lcfg := learner.Config{
		MaxZeroes:          cfg.Aligner.MaxZeroes,
		MaxAllowedMappings: cfg.Aligner.MaxAllowedMappings,
		InitialOnly:        cfg.Aligner.InitialOnly,
		Method:             m,
		Workers:            cfg.Aligner.Workers,
	}

	res, err := learner.Run(ctx, pairs, lcfg, learner.WithLogger(logger))
	switch {
	case errors.Is(err, cooccur.ErrNoCoverage), errors.Is(err, learner.ErrBadConfig):
		logger.Error("configuration error", slog.String("error", err.Error()))
		return cli.ExitConfig
	case err != nil:
		logger.Error("learner failed", slog.String("error", err.Error()))
		return cli.ExitIO
	}

	if *mappingsYAML != "" {
		if err := writeMappingsYAML(*mappingsYAML, res); err != nil {
			logger.Error("write mappings", slog.String("error", err.Error()))
			return cli.ExitIO
		}
	}

	bw := bufio.NewWriter(stdout)
	if err := res.Write(bw, cfg.Aligner.PrintMappings); err != nil {
		logger.Error("write results", slog.String("error", err.Error()))
		return cli.ExitIO
	}
	fmt.Fprintln(bw, res.MatchCount())
	if err := bw.Flush(); err != nil {
		logger.Error("flush output", slog.String("error", err.Error()))
		return cli.ExitIO
	}

	return cli.ExitOK
}

func writeMappingsYAML(path string, res *learner.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.WriteMappingsYAML(f, res.Catalog, res.Mappings); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
