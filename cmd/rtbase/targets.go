package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wippyai/rtbase/target"
)

func newTargetsCommand(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List known target platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TARGET\tMODEL\tORDER\tPTR")
			for _, p := range target.Known() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", p, p.DataModel(), p.Order, p.PtrSize)
			}
			return w.Flush()
		},
	}
}
