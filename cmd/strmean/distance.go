// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joseias/StrMean/edit"
)

func newDistanceCmd(a *app) *cobra.Command {
	var withOps bool

	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Print the edit distance between two strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			al, err := edit.Align([]rune(args[0]), []rune(args[1]), a.opts.CostModel, withOps)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, strconv.FormatFloat(al.Distance, 'f', -1, 64))
			for _, op := range al.Operations {
				fmt.Fprintf(w, "%d %s %s\n", op.SeqOrd, op, strconv.FormatFloat(op.Info.Cost, 'f', -1, 64))
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&withOps, "ops", false, "also print the operations in backtrace order")

	return cmd
}
