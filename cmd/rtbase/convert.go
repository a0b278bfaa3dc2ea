package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/fastconv"
)

func newConvertCommand(_ *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [--float32] <float>...",
		Short: "Run the fast float-to-int32 conversion",
		Long: fmt.Sprintf("Convert each value with the bias trick and compare it with round-half-to-even.\n"+
			"Inputs must lie in [%g, %g]. Negative values are accepted as plain arguments.",
			fastconv.MinSafe, fastconv.MaxSafe),
		// Negative inputs such as -1.5 would otherwise parse as shorthand flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, single, help, err := splitConvertArgs(args)
			if err != nil {
				return err
			}
			if help {
				return cmd.Help()
			}
			if len(values) == 0 {
				return errors.InvalidInput(errors.PhaseConvert, "convert requires at least 1 value")
			}
			return writeConversions(cmd.OutOrStdout(), values, single)
		},
	}

	cmd.Flags().Bool("float32", false, "parse inputs as float32")
	return cmd
}

// splitConvertArgs separates the --float32 and help flags from the values.
// Everything after "--" is a value.
func splitConvertArgs(args []string) (values []string, single, help bool, err error) {
	for i, arg := range args {
		switch {
		case arg == "--":
			return append(values, args[i+1:]...), single, help, nil
		case arg == "-h" || arg == "--help":
			help = true
		case arg == "--float32":
			single = true
		case strings.HasPrefix(arg, "--float32="):
			single, err = strconv.ParseBool(strings.TrimPrefix(arg, "--float32="))
			if err != nil {
				return nil, false, false, errors.New(errors.PhaseConvert, errors.KindInvalidInput).
					Value(arg).Cause(err).Detail("invalid --float32 value").Build()
			}
		case strings.HasPrefix(arg, "--"):
			return nil, false, false, errors.New(errors.PhaseConvert, errors.KindInvalidInput).
				Value(arg).Detail("unknown flag: %s", arg).Build()
		default:
			values = append(values, arg)
		}
	}
	return values, single, help, nil
}

func writeConversions(out io.Writer, values []string, single bool) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INPUT\tFAST\tRNE\tFIXED16\tSTATUS")

	bits := 64
	if single {
		bits = 32
	}
	for _, arg := range values {
		x, err := strconv.ParseFloat(arg, bits)
		if err != nil {
			return errors.New(errors.PhaseConvert, errors.KindInvalidInput).
				Value(arg).Cause(err).Detail("not a number: %q", arg).Build()
		}

		got, err := fastconv.Checked(x)
		if err != nil {
			fmt.Fprintf(w, "%g\t-\t-\t-\t%v\n", x, err)
			continue
		}
		want := int32(math.RoundToEven(x))
		status := "ok"
		if got != want {
			status = "MISMATCH"
		}
		fmt.Fprintf(w, "%g\t%d\t%d\t%#08x\t%s\n", x, got, want, uint32(fastconv.Float64ToFixed16(x)), status)
	}
	return w.Flush()
}
