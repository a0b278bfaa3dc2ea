package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/header"
)

func newHeaderCommand(opts *rootOptions) *cobra.Command {
	var (
		output      string
		frames      bool
		threadLocal bool
		native      bool
	)

	cmd := &cobra.Command{
		Use:   "header",
		Short: "Generate the C compatibility header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.platform()
			if err != nil {
				return err
			}

			hopts := opts.cfg.HeaderOptions()
			if cmd.Flags().Changed("frames") {
				hopts.Frames = frames
			}
			if cmd.Flags().Changed("thread-local") {
				hopts.ThreadLocalFrames = threadLocal
			}
			if cmd.Flags().Changed("native-round") {
				hopts.RequireNativeRound = native
			}
			if !cmd.Flags().Changed("output") {
				output = opts.cfg.Output
			}

			if output == "" || output == "-" {
				return header.Write(cmd.OutOrStdout(), p, hopts)
			}

			// Render first so a resolution failure leaves no partial file.
			text, err := header.Render(p, hopts)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
				return errors.Wrap(errors.PhaseEmit, errors.KindInvalidData, err, "write "+output)
			}
			opts.log.Info("header generated", zap.String("target", p.String()), zap.String("output", output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&frames, "frames", false, "emit call-frame records")
	cmd.Flags().BoolVar(&threadLocal, "thread-local", false, "declare the frame slot thread-local")
	cmd.Flags().BoolVar(&native, "native-round", false, "fail when the target has no native rounding primitive")

	return cmd
}
