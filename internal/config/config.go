package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/slither/search"
)

// fileConfig mirrors search.SolverConfig's shape for YAML decoding. Timeout
// is a string here (e.g. "500ms", "2s") since YAML has no duration type.
type fileConfig struct {
	FindAll          bool    `yaml:"find_all"`
	MaxSolutions     int     `yaml:"max_solutions"`
	WorkerCount      int     `yaml:"worker_count"`
	ParallelFraction float64 `yaml:"parallel_fraction"`
	ParallelDepth    int     `yaml:"parallel_depth"`
	CanonicalOnly    bool    `yaml:"canonical_only"`
	Timeout          string  `yaml:"timeout"`
}

// Load resolves a search.SolverConfig starting from search.DefaultConfig,
// applying path's YAML contents (if path is non-empty), then applying any
// flag in flags that was explicitly set on the command line. A nil flags is
// treated as no flags set.
func Load(path string, flags *pflag.FlagSet) (search.SolverConfig, error) {
	cfg := search.DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrConfigLoad, err)
		}

		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return cfg, fmt.Errorf("%w: %v", ErrConfigLoad, err)
		}
		if err := applyFile(&cfg, fc); err != nil {
			return cfg, err
		}
	}

	if flags == nil {
		return cfg, nil
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrConfigLoad, err)
	}
	applyFlags(&cfg, flags, v)

	return cfg, nil
}

func applyFile(cfg *search.SolverConfig, fc fileConfig) error {
	cfg.FindAll = fc.FindAll
	cfg.MaxSolutions = fc.MaxSolutions
	cfg.WorkerCount = fc.WorkerCount
	if fc.ParallelFraction > 0 {
		cfg.ParallelFraction = fc.ParallelFraction
	}
	cfg.ParallelDepth = fc.ParallelDepth
	cfg.CanonicalOnly = fc.CanonicalOnly

	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout: %v", ErrConfigLoad, err)
		}
		cfg.Timeout = d
	}

	return nil
}

// applyFlags overrides cfg with every flag the caller actually set,
// leaving the options of flags never passed on the command line at
// whatever the file or default already produced.
func applyFlags(cfg *search.SolverConfig, flags *pflag.FlagSet, v *viper.Viper) {
	if flags.Changed("find-all") {
		cfg.FindAll = v.GetBool("find-all")
	}
	if flags.Changed("max-solutions") {
		cfg.MaxSolutions = v.GetInt("max-solutions")
	}
	if flags.Changed("worker-count") {
		cfg.WorkerCount = v.GetInt("worker-count")
	}
	if flags.Changed("parallel-fraction") {
		cfg.ParallelFraction = v.GetFloat64("parallel-fraction")
	}
	if flags.Changed("parallel-depth") {
		cfg.ParallelDepth = v.GetInt("parallel-depth")
	}
	if flags.Changed("canonical-only") {
		cfg.CanonicalOnly = v.GetBool("canonical-only")
	}
	if flags.Changed("timeout") {
		cfg.Timeout = v.GetDuration("timeout")
	}
}
