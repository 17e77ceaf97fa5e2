package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsonsieve/jsonsieve"
	"github.com/jsonsieve/jsonsieve/handler"
	"github.com/jsonsieve/jsonsieve/matcher"
)

func newAnalyseCmd(opts *options) *cobra.Command {
	var (
		groupKeys  bool
		bufferSize int
	)
	cmd := &cobra.Command{
		Use:     "analyse [file]",
		Aliases: []string{"analyze"},
		Short:   "Count the path shapes occurring in the input",
		Long: `analyse surveys the structure of a JSON document without keeping any of
it in memory: it counts how many values occur at each path shape, with
array indices folded into [].`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if bufferSize == 0 {
				bufferSize = cfg.BufferSize
			}
			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			an := &handler.Analyser{GroupKeys: groupKeys}
			ex := jsonsieve.NewExtractor()
			ex.AddMatcherObserver(matcher.All{}, an)
			if err := feed(ex, in, bufferSize, opts.logger); err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, pc := range an.Results() {
				p := pc.Path
				if p == "" {
					p = "<root>"
				}
				fmt.Fprintf(w, "%s\t%d\n", p, pc.Count)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&groupKeys, "group-keys", false, "fold object keys into {} as well")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 0, "input chunk size in bytes")
	return cmd
}
