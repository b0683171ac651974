// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/joseias/StrMean/config"
	"github.com/joseias/StrMean/median"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgPath     string
	envFile     string
	metricsPath string

	runID   string
	cfg     config.Config
	opts    median.Options
	logger  *slog.Logger
	reg     *prometheus.Registry
	metrics *median.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "strmean",
		Short:         "Approximate median strings by operation-guided local search",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.flushMetrics()
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "file with STRMEAN_* overrides")
	root.PersistentFlags().StringVar(&a.metricsPath, "metrics", "", "write Prometheus metrics to this file on exit")

	root.AddCommand(newMedianCmd(a), newBatchCmd(a), newDistanceCmd(a))

	return root
}

// setup loads the configuration and builds logger, options and metrics.
func (a *app) setup(stderr io.Writer) error {
	lookup, err := config.EnvLookup(a.envFile)
	if err != nil {
		return err
	}
	if a.cfg, err = config.Load(a.cfgPath, lookup); err != nil {
		return err
	}
	if a.opts, err = config.Resolve(a.cfg); err != nil {
		return err
	}

	a.runID = uuid.NewString()
	a.logger = newLogger(stderr, a.cfg).With(slog.String("run_id", a.runID))
	a.opts.Logger = a.logger

	if a.metricsPath != "" {
		a.reg = prometheus.NewRegistry()
		a.metrics = median.NewMetrics(a.reg)
		a.opts.Metrics = a.metrics
	}

	return nil
}

func (a *app) flushMetrics() error {
	if a.reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.metricsPath, a.reg); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}

// newLogger builds the slog handler selected by cfg.LogFormat; "auto" means
// text on a terminal and JSON otherwise.
func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	format := cfg.LogFormat
	if format == "auto" {
		format = "json"
		if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = "text"
		}
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}
