// Package output renders scan results: colored terminal lines, the JSON
// scan report, and categorized saving of finding bodies.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/scanner"
)

var (
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	infoColor    = color.New(color.FgCyan).SprintFunc()
	dimColor     = color.New(color.Faint).SprintFunc()
)

// Printer writes human-readable scan output. Result lines go to Out
// (stdout), status messages to Err (stderr) so piped output stays clean.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Quiet bool
}

// NewPrinter returns a printer targeting stdout/stderr. noColor disables
// ANSI codes globally.
func NewPrinter(quiet, noColor bool) *Printer {
	if noColor {
		color.NoColor = true
	}
	return &Printer{Out: os.Stdout, Err: os.Stderr, Quiet: quiet}
}

// Successf prints a [+] tagged message.
func (p *Printer) Successf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Err, "%s %s\n", successColor("[+]"), fmt.Sprintf(format, args...))
}

// Warnf prints a [!] tagged message.
func (p *Printer) Warnf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Err, "%s %s\n", warningColor("[!]"), fmt.Sprintf(format, args...))
}

// Errorf prints a [-] tagged message. Not silenced by Quiet.
func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintf(p.Err, "%s %s\n", errorColor("[-]"), fmt.Sprintf(format, args...))
}

// Infof prints a [*] tagged message.
func (p *Printer) Infof(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.Err, "%s %s\n", infoColor("[*]"), fmt.Sprintf(format, args...))
}

// Result prints one probe result line, colored by status class. Findings
// always print; other results only when verbose reporting is wanted.
func (p *Printer) Result(r scanner.ProbeResult) {
	if r.Failed() {
		return
	}
	tag := statusColor(r.StatusCode)(fmt.Sprintf("%3d", r.StatusCode))
	marker := "   "
	if r.Finding {
		marker = successColor(" + ")
	}
	fmt.Fprintf(p.Out, "%s %s %8d  %s\n", marker, tag, r.ContentLength, r.Path)
}

// Summary prints the footer after a scan completes.
func (p *Printer) Summary(s *scanner.Session) {
	if p.Quiet {
		return
	}
	rate := float64(0)
	if secs := s.Duration().Seconds(); secs > 0 {
		rate = float64(s.ResultCount()) / secs
	}
	fmt.Fprintf(p.Err, "\n%s\n", dimColor(fmt.Sprintf(
		"Scanned: %d paths | Found: %d | Errors: %d | Duration: %s | %.1f req/s",
		s.ResultCount(), s.FoundCount(), s.ErrorCount(),
		s.Duration().Round(time.Millisecond), rate)))
}

func statusColor(code int) func(...any) string {
	switch {
	case code >= 200 && code < 300:
		return successColor
	case code >= 300 && code < 400:
		return infoColor
	case code >= 400 && code < 500:
		return warningColor
	case code >= 500:
		return errorColor
	}
	return dimColor
}
