// Package runner wires the scan pipeline together: candidate generation,
// the probe pool, content analysis, and reporting.
package runner

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/analyze"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/config"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/output"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/paths"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/scanner"
)

// Run executes the full pipeline for every resolved target. A failing
// target is reported and the batch continues; cancellation aborts the
// whole run.
func Run(ctx context.Context, opts *config.Options) error {
	printer := output.NewPrinter(opts.Quiet, opts.NoColor)

	targets, err := resolveTargets(opts)
	if err != nil {
		return err
	}

	var lastErr error
	failed := 0
	for idx, target := range targets {
		if len(targets) > 1 {
			printer.Infof("Target %d/%d: %s", idx+1, len(targets), target)
		}
		scoped := *opts
		scoped.URL = target
		if err := runSingleTarget(ctx, &scoped, printer); err != nil {
			if ctx.Err() != nil {
				return err
			}
			printer.Errorf("Scanning %s failed: %v", target, err)
			lastErr = err
			failed++
		}
	}
	// A partially failed batch still exits zero; an entirely failed run
	// does not.
	if failed == len(targets) {
		return lastErr
	}
	return nil
}

// resolveTargets builds the target list from -u and --batch.
func resolveTargets(opts *config.Options) ([]string, error) {
	var targets []string
	if opts.URL != "" {
		targets = append(targets, NormalizeTarget(opts.URL))
	}
	if opts.BatchFile != "" {
		f, err := os.Open(opts.BatchFile)
		if err != nil {
			return nil, fmt.Errorf("opening batch file: %w", err)
		}
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			targets = append(targets, NormalizeTarget(line))
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading batch file: %w", err)
		}
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets specified (-u or --batch)")
	}
	return targets, nil
}

// NormalizeTarget adds a scheme when missing and strips a trailing slash.
func NormalizeTarget(target string) string {
	target = strings.TrimSpace(target)
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "https://" + target
	}
	return strings.TrimRight(target, "/")
}

func runSingleTarget(ctx context.Context, opts *config.Options, printer *output.Printer) error {
	candidates, err := GenerateCandidates(opts, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	prober, err := scanner.NewProber(opts)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		printBanner(opts, len(candidates))
	}

	outDir, err := output.SetupOutputDir(opts.OutputDir, opts.URL)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	printer.Infof("Output directory: %s", outDir)

	session := scanner.NewSession(opts.URL, len(candidates))
	bar := output.NewBar(len(candidates), opts.Quiet)
	poolCfg := scanner.PoolConfig{
		Workers:    opts.MaxWorkers,
		OnProgress: output.ProgressFunc(bar),
	}

	for result := range scanner.RunPool(ctx, prober, candidates, poolCfg) {
		if err := session.Record(result); err != nil {
			return err
		}
		if result.Finding {
			printer.Result(result)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	session.Finalize()

	if ctx.Err() != nil {
		printer.Warnf("Scan interrupted, writing partial report")
	}

	findings := session.Findings()
	var intel *output.Intelligence
	if opts.AnalyzeFindings && len(findings) > 0 {
		intel = output.BuildIntelligence(findings, analyze.All)
		if intel.RiskSummary.TotalSecrets > 0 {
			printer.Warnf("Secrets detected: %d", intel.RiskSummary.TotalSecrets)
		}
		if len(intel.Technologies) > 0 {
			printer.Infof("Technologies: %s", strings.Join(intel.Technologies, ", "))
		}
	}

	saved := 0
	if opts.SaveBodies {
		saved = output.SaveFindings(outDir, findings)
	}

	report := output.BuildReport(session, intel, saved)
	reportPath := opts.ReportFile
	if reportPath == "" {
		reportPath, err = report.WriteJSON(outDir)
	} else {
		err = report.WriteJSONTo(reportPath)
	}
	if err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	printer.Successf("Report saved: %s", reportPath)
	printer.Summary(session)

	return ctx.Err()
}

// GenerateCandidates produces the ordered, deduplicated candidate path
// list for one target according to the scan mode.
func GenerateCandidates(opts *config.Options, rnd *rand.Rand) ([]string, error) {
	bases := paths.BasePaths()
	if opts.PathsFile != "" {
		extra, err := paths.LoadExtra(opts.PathsFile)
		if err != nil {
			return nil, fmt.Errorf("loading paths file: %w", err)
		}
		bases = append(bases, extra...)
	}

	candidates := bases
	if !opts.QuickScan {
		candidates = paths.Variations(bases, opts.Aggressive, rnd)
	}
	if opts.StealthMode {
		candidates = paths.FilterNatural(candidates)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no candidate paths to scan")
	}
	return candidates, nil
}
