package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wippyai/rtbase/buffer"
	"github.com/wippyai/rtbase/callconv"
	"github.com/wippyai/rtbase/numeric"
	"github.com/wippyai/rtbase/target"
)

func newResolveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved conventions, linkage and numeric types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.platform()
			if err != nil {
				return err
			}
			return writeResolution(cmd.OutOrStdout(), p)
		},
	}
}

func writeResolution(out io.Writer, p target.Platform) error {
	tbl, err := callconv.DefaultResolver().ResolveAll(p)
	if err != nil {
		return err
	}
	set, err := numeric.Resolve(p)
	if err != nil {
		return err
	}
	lay, err := buffer.NewLayout(p)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "target:  %s (%s, %s-endian)\n", p, p.DataModel(), p.Order)
	fmt.Fprintf(out, "export:  %q\n", tbl.Export)
	fmt.Fprintf(out, "import:  %q\n", tbl.Import)
	fmt.Fprintf(out, "inline:  %s\n", tbl.Inline.Render("R", "f"))
	fmt.Fprintf(out, "round:   %s\n", tbl.Round)
	fmt.Fprintf(out, "buffer:  header %d bytes, data at %d\n\n", lay.HeaderSize(), lay.DataOffset(buffer.TextSlot))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CONVENTION\tDECLARATION\tPOINTER\tRULE")
	for _, c := range callconv.Conventions() {
		tr := tbl.Triple(c, callconv.Export)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.Macro(), tr.Func.Render("R", "f"), tr.Ptr.Render("R", "f"), tr.Rule)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "TYPE\tC\tSIZE\tALIGN")
	for _, t := range set.Types() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", t.Name, t.C, t.Size, t.Align)
	}
	return w.Flush()
}
