package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jctratt/colls/pkg/colls/logging"
	"github.com/jctratt/colls/pkg/colls/runner"
)

// debounceDelay coalesces bursts of filesystem events into one re-listing.
const debounceDelay = 250 * time.Millisecond

// watchAndList prints the listing once, then re-runs it whenever a
// watched directory changes, until the context is cancelled.
func watchAndList(ctx context.Context, w io.Writer, opts runner.Options, p pipeline) error {
	logger := logging.Get("watch")

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	for _, root := range watchRoots(opts.Args) {
		if err := fsw.Add(root); err != nil {
			return fmt.Errorf("watching %s: %w", root, err)
		}
		logger.Debug("watching", "path", root)
	}

	if err := listOnce(ctx, w, opts, p); err != nil {
		return err
	}

	var debounce *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			logger.Debug("fs event", "op", event.Op.String(), "path", event.Name)
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				fire = debounce.C
			} else {
				debounce.Reset(debounceDelay)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		case <-fire:
			debounce = nil
			fire = nil
			fmt.Fprintln(w)
			if err := listOnce(ctx, w, opts, p); err != nil {
				// A transient listing failure (e.g. a directory removed
				// mid-watch) should not end the watch.
				printError("%v", err)
				logger.Warn("relist failed", "error", err)
			}
		}
	}
}

// listOnce runs the listing tool and renders its output.
func listOnce(ctx context.Context, w io.Writer, opts runner.Options, p pipeline) error {
	lines, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}
	p.Render(w, lines)
	return nil
}

// watchRoots picks the directories to watch: every argument that is a
// directory, or the current directory when none are.
func watchRoots(args []string) []string {
	var roots []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			roots = append(roots, arg)
		}
	}
	if len(roots) == 0 {
		roots = append(roots, ".")
	}
	return roots
}
