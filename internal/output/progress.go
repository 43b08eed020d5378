package output

import (
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// NewBar builds the scan progress bar on stderr. Returns nil when quiet is
// set or stderr is not a terminal; callers must treat a nil bar as a no-op
// via ProgressFunc.
func NewBar(total int, quiet bool) *progressbar.ProgressBar {
	if quiet || total <= 0 || !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]Scanning...[reset]"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// ProgressFunc adapts a bar to the scanner's progress callback. Safe with a
// nil bar.
func ProgressFunc(bar *progressbar.ProgressBar) func(completed, total int) {
	return func(completed, total int) {
		if bar != nil {
			_ = bar.Set(completed)
		}
	}
}
