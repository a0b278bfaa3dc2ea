package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/rtbase/buffer"
	"github.com/wippyai/rtbase/errors"
)

func newLayoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "layout <type>...",
		Short: "Print sequence element slots for WIT element types",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.platform()
			if err != nil {
				return err
			}
			lay, err := buffer.NewLayout(p)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "# %s\n", lay)
			fmt.Fprintln(w, "TYPE\tSIZE\tALIGN\tDATA")
			for _, arg := range args {
				t, err := wit.ParseType(arg)
				if err != nil {
					return errors.New(errors.PhaseLayout, errors.KindInvalidInput).
						Value(arg).Cause(err).Detail("unknown element type %q", arg).Build()
				}
				slot, err := buffer.ElemSlot(t, p)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", arg, slot.Size, slot.Align, lay.DataOffset(slot))
			}
			return w.Flush()
		},
	}
}
