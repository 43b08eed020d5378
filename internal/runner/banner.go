package runner

import (
	"fmt"
	"os"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/config"
	"github.com/S4yfullXD/super-intelligent-scanner/pkg/version"
)

func printBanner(opts *config.Options, pathCount int) {
	const (
		cyan  = "\033[36m"
		white = "\033[97m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)

	c, w, d, rs := cyan, white, dim, reset
	if opts.NoColor {
		c, w, d, rs = "", "", "", ""
	}

	fmt.Fprintf(os.Stderr, `
%s   _____ _______ _________    _   __ %s
%s  / ___//  _/ _ / ___/ __ \  / | / / %s
%s  \__ \_/ /_\ \/ /__/ /_/ / /  |/ /  %s
%s ___/ /__/___/ /\___\__,_/ /_/|__/   %s %sv%s%s
%s/____/                               %s
%s    Natural-Path Web Recon           %s
`,
		c, rs,
		c, rs,
		c, rs,
		c, rs, d, version.Version, rs,
		c, rs,
		d, rs,
	)

	mode := "natural"
	switch {
	case opts.QuickScan:
		mode = "quick"
	case opts.Aggressive:
		mode = "aggressive"
	case opts.StealthMode:
		mode = "stealth"
	}

	fmt.Fprintf(os.Stderr, "%s  ───────────────────────────────────%s\n", d, rs)
	fmt.Fprintf(os.Stderr, "  %sTarget:%s   %s%s%s\n", d, rs, w, opts.URL, rs)
	fmt.Fprintf(os.Stderr, "  %sWorkers:%s  %s%d%s\n", d, rs, w, opts.MaxWorkers, rs)
	fmt.Fprintf(os.Stderr, "  %sPaths:%s    %s%d candidates%s\n", d, rs, w, pathCount, rs)
	fmt.Fprintf(os.Stderr, "  %sMode:%s     %s%s%s\n", d, rs, w, mode, rs)
	fmt.Fprintf(os.Stderr, "%s  ───────────────────────────────────%s\n\n", d, rs)
}
