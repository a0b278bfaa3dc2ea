package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/rtbase/buffer"
	"github.com/wippyai/rtbase/memory"
)

func newLiteralCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "literal <text>...",
		Short: "Lay out text literals in linear memory and dump their bytes",
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

			ctx := cmd.Context()
			lin, err := memory.NewLinear(ctx, opts.cfg.Pages)
			if err != nil {
				return err
			}
			defer lin.Close(ctx)

			mem := lin.Memory()
			arena := memory.NewArena(mem, 0)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", lay)

			var first uint32
			for i, s := range args {
				ptr, err := lay.WriteLiteral(mem, arena, s)
				if err != nil {
					return err
				}
				h, err := lay.ReadHeader(mem, ptr)
				if err != nil {
					return err
				}
				size := lay.DataOffset(buffer.TextSlot) + uint32(h.Cap) + 1
				raw, err := mem.Read(ptr, size)
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%q at %#x: len=%d cap=%d\n", s, ptr, h.Len, h.Cap)
				fmt.Fprint(out, indent(hex.Dump(raw)))

				if i == 0 {
					first = ptr
					continue
				}
				eq, err := lay.EqualData(mem, first, ptr, buffer.TextSlot, h.Len)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  equalMem(%q, %q, %d) = %v\n", args[0], s, h.Len, eq)
			}
			fmt.Fprintf(out, "arena used: %d bytes\n", arena.Used())
			return nil
		},
	}
}

func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var sb strings.Builder
	for _, l := range lines {
		if l != "" {
			sb.WriteString("  ")
			sb.WriteString(l)
		}
	}
	return sb.String()
}
