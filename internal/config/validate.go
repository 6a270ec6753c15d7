package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	alignMethods      = []string{"dp", "lattice"}
	experimentMethods = []string{"aligner", "levenshtein"}
	logLevels         = []string{"debug", "info", "warn", "error"}
	logFormats        = []string{"text", "json"}
)

// Validate checks value ranges and reports every violation at once.
func (c *Config) Validate() error {
	var errs []error

	a := c.Aligner
	if a.MaxZeroes < 0 {
		errs = append(errs, fmt.Errorf("aligner.max_zeroes must be >= 0 (got %d)", a.MaxZeroes))
	}
	if a.MaxAllowedMappings < 1 {
		errs = append(errs, fmt.Errorf("aligner.max_allowed_mappings must be >= 1 (got %d)", a.MaxAllowedMappings))
	}
	if !slices.Contains(alignMethods, a.Method) {
		errs = append(errs, fmt.Errorf("aligner.method must be one of %v (got %q)", alignMethods, a.Method))
	}
	if a.Workers < 0 {
		errs = append(errs, fmt.Errorf("aligner.workers must be >= 0 (got %d)", a.Workers))
	}

	e := c.Experiment
	if e.Experiments < 0 {
		errs = append(errs, fmt.Errorf("experiment.experiments must be >= 0 (got %d)", e.Experiments))
	}
	if e.Etyma < 0 {
		errs = append(errs, fmt.Errorf("experiment.etyma must be >= 0 (got %d)", e.Etyma))
	}
	if e.MaxHomophones < 1 {
		errs = append(errs, fmt.Errorf("experiment.max_homophones must be >= 1 (got %d)", e.MaxHomophones))
	}
	if e.MaxDistinctRoots < -1 {
		errs = append(errs, fmt.Errorf("experiment.max_distinct_roots must be >= -1 (got %d)", e.MaxDistinctRoots))
	}
	if !slices.Contains(experimentMethods, e.Method) {
		errs = append(errs, fmt.Errorf("experiment.method must be one of %v (got %q)", experimentMethods, e.Method))
	}
	if e.LevenshteinThreshold < 0 {
		errs = append(errs, fmt.Errorf("experiment.levenshtein_threshold must be >= 0 (got %v)", e.LevenshteinThreshold))
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level))
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format))
	}

	return errors.Join(errs...)
}
