package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/config"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/runner"
	"github.com/S4yfullXD/super-intelligent-scanner/pkg/version"
)

const defaultConfigFile = "config.yaml"

var (
	opts        = config.Defaults()
	configFile  string
	interactive bool
)

var rootCmd = &cobra.Command{
	Use:     "siscan [target]",
	Short:   "Web reconnaissance scanner using natural-looking request patterns",
	Version: version.Version,
	Long: `siscan discovers exposed paths on web applications by probing a curated
catalog of endpoints with browser-like request patterns. Findings are
analyzed for leaked secrets and technology fingerprints, and every scan
produces a JSON report plus categorized copies of discovered content.`,
	Example: `  siscan https://example.com
  siscan -u https://example.com --aggressive -t 20
  siscan https://example.com --quick-scan --save-bodies=false
  siscan --batch targets.txt -o scans
  siscan --interactive
  siscan https://example.com -w extra-paths.txt --report out.json`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Precedence: defaults < config file < explicit flags.
		fileOpts := config.Defaults()
		implicit := !cmd.Flags().Changed("config")
		if err := config.LoadFile(configFile, &fileOpts, implicit); err != nil {
			return err
		}
		applyUnlessSet := func(name string, apply func()) {
			if !cmd.Flags().Changed(name) {
				apply()
			}
		}
		applyUnlessSet("workers", func() { opts.MaxWorkers = fileOpts.MaxWorkers })
		applyUnlessSet("timeout", func() { opts.Timeout = fileOpts.Timeout })
		applyUnlessSet("retries", func() { opts.MaxRetries = fileOpts.MaxRetries })
		applyUnlessSet("delay", func() { opts.RateLimitDelay = fileOpts.RateLimitDelay })
		applyUnlessSet("stealth", func() { opts.StealthMode = fileOpts.StealthMode })
		applyUnlessSet("output-dir", func() { opts.OutputDir = fileOpts.OutputDir })
		applyUnlessSet("save-bodies", func() { opts.SaveBodies = fileOpts.SaveBodies })

		if len(args) > 0 {
			if opts.URL != "" {
				return fmt.Errorf("target given both as argument and with -u")
			}
			opts.URL = args[0]
		}
		if opts.URL == "" && opts.BatchFile == "" && !interactive {
			_ = cmd.Help()
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("target required: pass a URL, -u, --batch, or --interactive")
		}

		if opts.Aggressive && !cmd.Flags().Changed("stealth") {
			// Aggressive mutations are pointless with the stealth filter
			// active, so turn it off unless the user forced it.
			opts.StealthMode = false
		}
		if opts.Aggressive && opts.QuickScan {
			return fmt.Errorf("--aggressive and --quick-scan are mutually exclusive")
		}
		return opts.Validate()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		if interactive {
			return runner.RunInteractive(ctx, &opts)
		}
		return runner.Run(ctx, &opts)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()
	d := config.Defaults()

	// Target
	f.StringVarP(&opts.URL, "url", "u", "", "Target URL")
	f.StringVar(&opts.BatchFile, "batch", "", "File with one target URL per line")
	f.StringVarP(&opts.PathsFile, "paths", "w", "", "Extra candidate paths, one per line")
	f.BoolVar(&interactive, "interactive", false, "Prompt for targets on stdin")

	// Scanning
	f.IntVarP(&opts.MaxWorkers, "workers", "t", d.MaxWorkers, "Concurrent workers (1-50)")
	f.DurationVar(&opts.Timeout, "timeout", d.Timeout, "Per-request timeout (5s-60s)")
	f.IntVar(&opts.MaxRetries, "retries", d.MaxRetries, "Attempts per path (1-10)")
	f.Float64Var(&opts.RateLimitDelay, "delay", d.RateLimitDelay, "Base delay between requests in seconds")
	f.BoolVar(&opts.StealthMode, "stealth", d.StealthMode, "Only send natural-looking paths")
	f.BoolVar(&opts.Aggressive, "aggressive", false, "Add encoding/traversal/case mutations")
	f.BoolVar(&opts.QuickScan, "quick-scan", false, "Base catalog only, no variations")
	f.BoolVar(&opts.UseHEAD, "head", false, "Probe with HEAD instead of GET")

	// Analysis
	f.BoolVar(&opts.AnalyzeFindings, "analyze", d.AnalyzeFindings, "Scan findings for secrets and technologies")

	// Output
	f.StringVarP(&opts.OutputDir, "output-dir", "o", d.OutputDir, "Base directory for scan output")
	f.StringVar(&opts.ReportFile, "report", "", "Write the JSON report to this path instead")
	f.BoolVar(&opts.SaveBodies, "save-bodies", d.SaveBodies, "Save finding bodies to disk")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Minimal output")
	f.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	// HTTP
	f.StringVar(&opts.Proxy, "proxy", "", "HTTP/SOCKS proxy URL")

	// Configuration
	f.StringVar(&configFile, "config", defaultConfigFile, "YAML config file")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
