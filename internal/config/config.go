package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options holds all configuration for a scan.
type Options struct {
	// Target
	URL       string
	BatchFile string // file with one target URL per line
	PathsFile string // extra candidate paths, one per line (optional)

	// Performance
	MaxWorkers int
	Timeout    time.Duration
	MaxRetries int

	// Behaviour
	StealthMode    bool    // filter suspicious path patterns before dispatch
	Aggressive     bool    // enable encoding/traversal/case mutations
	QuickScan      bool    // base catalog only, no variation generation
	RateLimitDelay float64 // base inter-request delay in seconds
	UseHEAD        bool    // probe with HEAD instead of GET

	// Analysis
	AnalyzeFindings bool // run secret/technology heuristics on findings

	// Output
	OutputDir  string
	ReportFile string
	SaveBodies bool
	Quiet      bool
	NoColor    bool

	// HTTP
	Proxy string
}

// Defaults returns the baseline configuration used when no config file or
// flag overrides a value: 10 workers, 15s timeout, 3 retries, stealth on.
func Defaults() Options {
	return Options{
		MaxWorkers:      10,
		Timeout:         15 * time.Second,
		MaxRetries:      3,
		StealthMode:     true,
		RateLimitDelay:  1.0,
		AnalyzeFindings: true,
		SaveBodies:      true,
		OutputDir:       "results",
	}
}

// fileConfig is the YAML shape of an optional config file. Only keys
// present in the file override defaults.
type fileConfig struct {
	Scanning struct {
		MaxWorkers     int     `yaml:"max_workers"`
		Timeout        int     `yaml:"timeout"`
		MaxRetries     int     `yaml:"max_retries"`
		RateLimitDelay float64 `yaml:"rate_limit_delay"`
	} `yaml:"scanning"`
	Evasion struct {
		StealthMode *bool `yaml:"stealth_mode"`
	} `yaml:"evasion"`
	Output struct {
		Directory  string `yaml:"directory"`
		SaveBodies *bool  `yaml:"save_bodies"`
	} `yaml:"output"`
}

// LoadFile merges settings from a YAML config file into opts. A missing
// file is not an error when path is the implicit default; an unreadable or
// malformed file always is.
func LoadFile(path string, opts *Options, implicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && implicit {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.Scanning.MaxWorkers != 0 {
		opts.MaxWorkers = fc.Scanning.MaxWorkers
	}
	if fc.Scanning.Timeout != 0 {
		opts.Timeout = time.Duration(fc.Scanning.Timeout) * time.Second
	}
	if fc.Scanning.MaxRetries != 0 {
		opts.MaxRetries = fc.Scanning.MaxRetries
	}
	if fc.Scanning.RateLimitDelay != 0 {
		opts.RateLimitDelay = fc.Scanning.RateLimitDelay
	}
	if fc.Evasion.StealthMode != nil {
		opts.StealthMode = *fc.Evasion.StealthMode
	}
	if fc.Output.Directory != "" {
		opts.OutputDir = fc.Output.Directory
	}
	if fc.Output.SaveBodies != nil {
		opts.SaveBodies = *fc.Output.SaveBodies
	}
	return nil
}

// Validate checks every range-bound option and returns an error naming the
// first invalid field. Out-of-range values are rejected, not clamped.
func (o *Options) Validate() error {
	if o.MaxWorkers < 1 || o.MaxWorkers > 50 {
		return fmt.Errorf("max_workers must be between 1 and 50, got %d", o.MaxWorkers)
	}
	if o.Timeout < 5*time.Second || o.Timeout > 60*time.Second {
		return fmt.Errorf("timeout must be between 5s and 60s, got %s", o.Timeout)
	}
	if o.MaxRetries < 1 || o.MaxRetries > 10 {
		return fmt.Errorf("max_retries must be between 1 and 10, got %d", o.MaxRetries)
	}
	if o.RateLimitDelay < 0 || o.RateLimitDelay > 10 {
		return fmt.Errorf("rate_limit_delay must be between 0 and 10 seconds, got %g", o.RateLimitDelay)
	}
	if o.StealthMode && o.Aggressive {
		return fmt.Errorf("stealth mode and aggressive mode are mutually exclusive")
	}
	return nil
}
