// Package config loads soundlaw configuration from YAML and environment.
package config

// Config is the root configuration shared by both binaries.
type Config struct {
	Aligner    AlignerConfig    `yaml:"aligner"`
	Experiment ExperimentConfig `yaml:"experiment"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// AlignerConfig holds the learner settings.
//
// Fields where zero is a valid setting carry no env-default: cleanenv would
// apply it to a YAML zero. Their defaults come from Default instead.
type AlignerConfig struct {
	MaxZeroes          int    `yaml:"max_zeroes"           env:"SOUNDLAW_MAX_ZEROES"`
	MaxAllowedMappings int    `yaml:"max_allowed_mappings" env:"SOUNDLAW_MAX_ALLOWED_MAPPINGS" env-default:"2"`
	InitialOnly        bool   `yaml:"initial_only"         env:"SOUNDLAW_INITIAL_ONLY"`
	PrintMappings      bool   `yaml:"print_mappings"       env:"SOUNDLAW_PRINT_MAPPINGS"`
	Method             string `yaml:"method"               env:"SOUNDLAW_METHOD"               env-default:"dp"`
	Workers            int    `yaml:"workers"              env:"SOUNDLAW_WORKERS"`
}

// ExperimentConfig holds the random-cognate experiment settings.
type ExperimentConfig struct {
	Experiments          int     `yaml:"experiments"           env:"SOUNDLAW_EXPERIMENTS"`
	Etyma                int     `yaml:"etyma"                 env:"SOUNDLAW_ETYMA"`
	MaxHomophones        int     `yaml:"max_homophones"        env:"SOUNDLAW_MAX_HOMOPHONES"        env-default:"5"`
	MaxDistinctRoots     int     `yaml:"max_distinct_roots"    env:"SOUNDLAW_MAX_DISTINCT_ROOTS"`
	Method               string  `yaml:"method"                env:"SOUNDLAW_EXPERIMENT_METHOD"     env-default:"levenshtein"`
	LevenshteinThreshold float64 `yaml:"levenshtein_threshold" env:"SOUNDLAW_LEVENSHTEIN_THRESHOLD"`
	Seed                 uint64  `yaml:"seed"                  env:"SOUNDLAW_SEED"`
	PrintMappings        bool    `yaml:"print_mappings"        env:"SOUNDLAW_EXPERIMENT_PRINT_MAPPINGS"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"SOUNDLAW_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"SOUNDLAW_LOG_FORMAT" env-default:"text"`
}

// MetricsConfig holds the optional Prometheus listener.
type MetricsConfig struct {
	Addr        string `yaml:"addr"         env:"SOUNDLAW_METRICS_ADDR"`
	ServiceName string `yaml:"service_name" env:"SOUNDLAW_SERVICE_NAME"  env-default:"soundlaw"`
}

// Default returns the configuration used before YAML and ENV are applied.
func Default() Config {
	return Config{
		Aligner: AlignerConfig{
			MaxZeroes:          1,
			MaxAllowedMappings: 2,
			Method:             "dp",
		},
		Experiment: ExperimentConfig{
			Experiments:          1000,
			Etyma:                1000,
			MaxHomophones:        5,
			MaxDistinctRoots:     -1,
			Method:               "levenshtein",
			LevenshteinThreshold: 3,
			PrintMappings:        true,
		},
		Log:     LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{ServiceName: "soundlaw"},
	}
}
