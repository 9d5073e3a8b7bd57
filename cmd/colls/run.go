package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jctratt/colls/pkg/colls/config"
	"github.com/jctratt/colls/pkg/colls/layout"
	"github.com/jctratt/colls/pkg/colls/logging"
	"github.com/jctratt/colls/pkg/colls/runner"
)

// runList is the root command handler.
func runList(_ *cobra.Command, args []string) error {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	if cfg.Logging.Level != "" {
		logCfg.Level = cfg.Logging.Level
	}
	if cfg.Logging.Path != "" {
		logCfg.Path = cfg.Logging.Path
	}
	logCfg.ConsoleLevel = cfg.Logging.ConsoleLevel
	if viper.GetBool("verbose") {
		logCfg.ConsoleLevel = "debug"
		logCfg.Level = "debug"
	}
	if cfg.Quiet {
		logCfg.ConsoleLevel = ""
	}
	if err := logging.Init(logCfg); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	sel, err := layout.ParseSelection(cfg.Format)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := runner.Options{
		Path:      cfg.List.Path,
		ColorMode: runner.ResolveColor(cfg.Color, os.Stdout),
		Flags:     cfg.List.Flags,
		Args:      args,
	}
	p := pipeline{
		Selection:  sel,
		UseQuotes:  cfg.Quotes,
		ShowHeader: cfg.Header,
		MaxPad:     cfg.MaxPad,
		Quiet:      cfg.Quiet,
	}

	if viper.GetBool("watch") {
		return watchAndList(ctx, os.Stdout, opts, p)
	}

	lines, err := runner.Run(ctx, opts)
	if err != nil {
		return err
	}
	p.Render(os.Stdout, lines)
	return nil
}
