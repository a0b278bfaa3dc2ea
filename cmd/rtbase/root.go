package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/rtbase/config"
	"github.com/wippyai/rtbase/frame"
	"github.com/wippyai/rtbase/header"
	"github.com/wippyai/rtbase/memory"
	"github.com/wippyai/rtbase/target"
)

// rootOptions holds global flags and the state PersistentPreRunE builds
// from them.
type rootOptions struct {
	cfg        *config.Config
	log        *zap.Logger
	configPath string
	target     string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "rtbase",
		Short:         "Portable ABI and representation layer toolkit",
		Long:          "Resolve calling conventions, numeric types and buffer layouts per target, and emit the C compatibility header.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML profile")
	cmd.PersistentFlags().StringVarP(&opts.target, "target", "t", "", "target triple (default: profile, then host)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newTargetsCommand(opts))
	cmd.AddCommand(newResolveCommand(opts))
	cmd.AddCommand(newHeaderCommand(opts))
	cmd.AddCommand(newConvertCommand(opts))
	cmd.AddCommand(newLayoutCommand(opts))
	cmd.AddCommand(newLiteralCommand(opts))
	cmd.AddCommand(newExploreCommand(opts))

	return cmd
}

func (o *rootOptions) setup() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.target != "" {
		cfg.Target = o.target
	}
	if o.verbose {
		cfg.Debug = true
		cfg.LogLevel = "debug"
	}
	log, err := cfg.Logger()
	if err != nil {
		return err
	}
	o.cfg, o.log = cfg, log

	memory.SetLogger(log.Named("memory"))
	frame.SetLogger(log.Named("frame"))
	header.SetLogger(log.Named("header"))
	return nil
}

func (o *rootOptions) platform() (target.Platform, error) {
	p, err := o.cfg.Platform()
	if err != nil {
		return target.Platform{}, err
	}
	o.log.Debug("target resolved", zap.String("target", p.String()))
	return p, nil
}
