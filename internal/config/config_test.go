package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	opts := Defaults()
	if err := opts.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadFileMergesValues(t *testing.T) {
	path := writeConfig(t, `
scanning:
  max_workers: 25
  timeout: 30
  rate_limit_delay: 0.5
evasion:
  stealth_mode: false
output:
  directory: custom-out
  save_bodies: false
`)
	opts := Defaults()
	if err := LoadFile(path, &opts, false); err != nil {
		t.Fatal(err)
	}
	if opts.MaxWorkers != 25 {
		t.Errorf("MaxWorkers = %d", opts.MaxWorkers)
	}
	if opts.Timeout != 30*time.Second {
		t.Errorf("Timeout = %s", opts.Timeout)
	}
	if opts.RateLimitDelay != 0.5 {
		t.Errorf("RateLimitDelay = %g", opts.RateLimitDelay)
	}
	if opts.StealthMode {
		t.Error("StealthMode should be overridden to false")
	}
	if opts.OutputDir != "custom-out" {
		t.Errorf("OutputDir = %q", opts.OutputDir)
	}
	if opts.SaveBodies {
		t.Error("SaveBodies should be overridden to false")
	}
	// Keys absent from the file keep their defaults.
	if opts.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default 3", opts.MaxRetries)
	}
}

func TestLoadFileMissing(t *testing.T) {
	opts := Defaults()
	if err := LoadFile("does-not-exist.yaml", &opts, true); err != nil {
		t.Errorf("implicit missing file should not error: %v", err)
	}
	if err := LoadFile("does-not-exist.yaml", &opts, false); err == nil {
		t.Error("explicit missing file must error")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeConfig(t, "scanning: [not a map")
	opts := Defaults()
	if err := LoadFile(path, &opts, true); err == nil {
		t.Fatal("malformed YAML must error even when implicit")
	}
}

func TestValidateRanges(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Options)
		wantErr string
	}{
		{"workers low", func(o *Options) { o.MaxWorkers = 0 }, "max_workers"},
		{"workers high", func(o *Options) { o.MaxWorkers = 51 }, "max_workers"},
		{"timeout low", func(o *Options) { o.Timeout = 4 * time.Second }, "timeout"},
		{"timeout high", func(o *Options) { o.Timeout = 61 * time.Second }, "timeout"},
		{"retries low", func(o *Options) { o.MaxRetries = 0 }, "max_retries"},
		{"retries high", func(o *Options) { o.MaxRetries = 11 }, "max_retries"},
		{"delay negative", func(o *Options) { o.RateLimitDelay = -1 }, "rate_limit_delay"},
		{"delay high", func(o *Options) { o.RateLimitDelay = 10.5 }, "rate_limit_delay"},
		{"stealth and aggressive", func(o *Options) { o.Aggressive = true }, "mutually exclusive"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := Defaults()
			tc.mutate(&opts)
			err := opts.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not name %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	opts := Defaults()
	opts.MaxWorkers = 50
	opts.Timeout = 60 * time.Second
	opts.MaxRetries = 10
	opts.RateLimitDelay = 10
	if err := opts.Validate(); err != nil {
		t.Fatalf("upper bounds are inclusive: %v", err)
	}
	opts.MaxWorkers = 1
	opts.Timeout = 5 * time.Second
	opts.MaxRetries = 1
	opts.RateLimitDelay = 0
	if err := opts.Validate(); err != nil {
		t.Fatalf("lower bounds are inclusive: %v", err)
	}
}
