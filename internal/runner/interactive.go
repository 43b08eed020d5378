package runner

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/S4yfullXD/super-intelligent-scanner/internal/config"
	"github.com/S4yfullXD/super-intelligent-scanner/internal/output"
)

// RunInteractive prompts for target URLs on stdin and scans each one with
// the current options. The loop ends on EOF, "exit", "quit", or context
// cancellation. Prompts are only printed when stdin is a terminal, so
// piped input still works.
func RunInteractive(ctx context.Context, opts *config.Options) error {
	printer := output.NewPrinter(opts.Quiet, opts.NoColor)
	isTTY := term.IsTerminal(int(os.Stdin.Fd()))

	if isTTY {
		printer.Infof("Interactive mode. Enter a target URL per line; \"exit\" to leave.")
	}

	sc := bufio.NewScanner(os.Stdin)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if isTTY {
			fmt.Fprint(os.Stderr, "target> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return sc.Err()
		}

		scoped := *opts
		scoped.URL = NormalizeTarget(line)
		scoped.BatchFile = ""
		if err := Run(ctx, &scoped); err != nil {
			if ctx.Err() != nil {
				return err
			}
			printer.Errorf("%v", err)
		}
	}
	return sc.Err()
}
