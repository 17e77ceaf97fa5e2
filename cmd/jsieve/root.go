package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options carries state shared by all subcommands.
type options struct {
	configPath string
	verbose    bool
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{logger: zap.NewNop()}
	cmd := &cobra.Command{
		Use:           "jsieve",
		Short:         "Extract sub-documents from JSON streams",
		Long: `jsieve reads JSON from a file or stdin in chunks and emits each value
whose path matches one of the given patterns, as soon as the value is
complete.  It never holds the whole input in memory, so it works on
arbitrarily large files and on live streams.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.verbose {
				return nil
			}
			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (flags take precedence)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	cmd.AddCommand(newExtractCmd(opts), newAnalyseCmd(opts))
	return cmd
}
