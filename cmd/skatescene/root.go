package main

import (
	"github.com/solarlune/skatescene/config"
	"github.com/solarlune/skatescene/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the flags shared by every command, and the config they load to.
type options struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

func newRootCmd() *cobra.Command {

	opts := &options{}

	root := &cobra.Command{
		Use:          "skatescene",
		Short:        "A skateboard and some block letters, built from a tree of cuboids",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(opts.verbose)
			logging.SetRoot(logger)
			ctx := logging.Context(cmd.Context(), logger)
			cmd.SetContext(ctx)

			cfg, err := config.Load(ctx, opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			logger.Debug("starting", zap.String("command", cmd.Name()), zap.String("config", opts.configPath))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML file with scene settings")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newDumpCmd(opts))
	root.AddCommand(newExportCmd(opts))

	return root

}
