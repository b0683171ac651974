// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newBatchCmd(a *app) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch OUTDIR INPUT...",
		Short: "Compute the median string of several sample sets in parallel",
		Long: `Runs "median" for every INPUT, writing OUTDIR/<name>.out and
OUTDIR/<name>.out.log. Each input gets its own search state.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, args[0], args[1:], jobs)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "maximum concurrent computations")

	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, outDir string, inputs []string, jobs int) error {
	if jobs < 1 {
		return fmt.Errorf("batch: --jobs must be positive, got %d", jobs)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	outs, err := outputPaths(outDir, inputs)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, in := range inputs {
		out := outs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return a.runMedian(in, out)
		})
	}

	return g.Wait()
}

// outputPaths maps every input to OUTDIR/<name>.out. Two inputs that would
// write the same file are rejected before any computation starts.
func outputPaths(outDir string, inputs []string) ([]string, error) {
	outs := make([]string, len(inputs))
	owner := make(map[string]string, len(inputs))
	for i, in := range inputs {
		out := filepath.Join(outDir, strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))+".out")
		if prev, dup := owner[out]; dup {
			return nil, fmt.Errorf("batch: %s and %s would both write %s", prev, in, out)
		}
		owner[out] = in
		outs[i] = out
	}

	return outs, nil
}
