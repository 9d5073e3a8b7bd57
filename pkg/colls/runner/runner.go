// Package runner invokes the external listing tool and captures its
// output. The binary is executed directly (no shell) so user aliases
// cannot change the line shape the tokenizer depends on.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/jctratt/colls/pkg/colls/logging"
)

// Options configures one listing invocation.
type Options struct {
	// Path is the listing binary, e.g. /bin/ls.
	Path string

	// ColorMode is passed as --color=<mode>; always or never. Resolve
	// "auto" with ResolveColor before building Options.
	ColorMode string

	// Flags are the base listing flags, e.g. -lQAhF.
	Flags []string

	// Args are passed through to the tool, typically paths.
	Args []string
}

// Run executes the listing tool and returns its stdout split into lines.
// The trailing newline does not produce an empty final line. A non-zero
// exit returns an error carrying the tool's stderr.
func Run(ctx context.Context, opts Options) ([]string, error) {
	logger := logging.Get("runner")

	argv := make([]string, 0, len(opts.Flags)+len(opts.Args)+1)
	argv = append(argv, "--color="+opts.ColorMode)
	argv = append(argv, opts.Flags...)
	argv = append(argv, opts.Args...)

	logger.Debug("running listing tool", "path", opts.Path, "args", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, opts.Path, argv...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("running %s: %w", opts.Path, err)
		}
		return nil, fmt.Errorf("running %s: %w: %s", opts.Path, err, msg)
	}

	out := strings.TrimSuffix(stdout.String(), "\n")
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// ResolveColor maps the configured color mode to the value passed to the
// listing tool. "auto" becomes "always" when f is a terminal and "never"
// otherwise, so piped output stays clean while interactive output keeps
// the colors ls applies to symlinks and directories.
func ResolveColor(mode string, f *os.File) string {
	if mode != "auto" {
		return mode
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return "always"
	}
	return "never"
}
