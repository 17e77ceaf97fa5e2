package main

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsonsieve/jsonsieve"
	"github.com/jsonsieve/jsonsieve/handler"
	"github.com/jsonsieve/jsonsieve/matcher"
	"github.com/jsonsieve/jsonsieve/path"
)

func newExtractCmd(opts *options) *cobra.Command {
	var (
		patterns   []string
		depth      string
		withPath   bool
		separator  string
		bufferSize int
	)
	cmd := &cobra.Command{
		Use:   "extract [file]",
		Short: "Print the values matching the given patterns",
		Example: `  jsieve extract -m '{"users"}[]{"name"}' data.json
  jsieve extract -m '**{"id"}' -m '{"meta"}' --with-path data.json
  jsieve extract -d 1 data.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if len(patterns) == 0 {
				patterns = cfg.Matches
			}
			if depth == "" {
				depth = cfg.Depth
			}
			if separator == "" && cfg.Separator != "" {
				separator = cfg.Separator
			}
			withPath = withPath || cfg.WithPath
			if bufferSize == 0 {
				bufferSize = cfg.BufferSize
			}
			matchers, err := buildMatchers(patterns, depth)
			if err != nil {
				return err
			}
			if len(matchers) == 0 {
				return errors.New("no pattern given (use -m, -d or a config file)")
			}

			in, closeIn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeIn()

			h := newPrintHandler(withPath, separator)
			ex := jsonsieve.NewExtractor()
			for _, m := range matchers {
				ex.AddMatcherHandler(m, h)
			}
			return feed(ex, in, bufferSize, opts.logger)
		},
	}
	cmd.Flags().StringArrayVarP(&patterns, "match", "m", nil, "pattern to match, e.g. '{\"users\"}[]{\"name\"}' (repeatable)")
	cmd.Flags().StringVarP(&depth, "depth", "d", "", "depth to match: N, N- or N-M")
	cmd.Flags().BoolVar(&withPath, "with-path", false, "prefix each value with its path")
	cmd.Flags().StringVar(&separator, "separator", "", "string printed after each value (default newline)")
	cmd.Flags().IntVar(&bufferSize, "buffer-size", 0, "input chunk size in bytes")
	return cmd
}

// buildMatchers compiles the pattern expressions, restricted to the depth
// range if one is given.  A depth with no patterns stands alone.
func buildMatchers(patterns []string, depth string) ([]matcher.Matcher, error) {
	var depthM matcher.Matcher
	if depth != "" {
		d, err := matcher.ParseDepth(depth)
		if err != nil {
			return nil, err
		}
		depthM = d
	}
	if len(patterns) == 0 {
		if depthM == nil {
			return nil, nil
		}
		return []matcher.Matcher{depthM}, nil
	}
	ms := make([]matcher.Matcher, 0, len(patterns))
	for _, expr := range patterns {
		m, err := matcher.ParseSimple(expr)
		if err != nil {
			return nil, err
		}
		if depthM != nil {
			ms = append(ms, matcher.And(m, depthM))
		} else {
			ms = append(ms, m)
		}
	}
	return ms, nil
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// feed pumps the input through the extractor one chunk at a time.
func feed(ex *jsonsieve.Extractor, in io.Reader, bufferSize int, logger *zap.Logger) error {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	buf := make([]byte, bufferSize)
	total := 0
	for {
		n, err := in.Read(buf)
		if n > 0 {
			total += n
			if ferr := ex.Feed(buf[:n]); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	logger.Debug("input exhausted", zap.Int("bytes", total))
	return ex.Close()
}

// newPrintHandler writes each match to stdout, coloring the path prefix
// when stdout is a terminal.
func newPrintHandler(withPath bool, separator string) handler.Handler {
	if withPath && isatty.IsTerminal(os.Stdout.Fd()) {
		return &colorPrinter{
			w:     colorable.NewColorableStdout(),
			paint: color.New(color.FgCyan),
			sep:   separator,
		}
	}
	return &handler.Writer{W: os.Stdout, Separator: separator, WithPath: withPath}
}

type colorPrinter struct {
	w     io.Writer
	paint *color.Color
	sep   string
}

func (p *colorPrinter) Start(pth path.Path, matcherIdx int, off int) error {
	if _, err := p.paint.Fprint(p.w, pth.String()); err != nil {
		return err
	}
	_, err := io.WriteString(p.w, ": ")
	return err
}

func (p *colorPrinter) Feed(data []byte, matcherIdx int) error {
	_, err := p.w.Write(data)
	return err
}

func (p *colorPrinter) End(pth path.Path, matcherIdx int, off int) error {
	sep := p.sep
	if sep == "" {
		sep = "\n"
	}
	_, err := io.WriteString(p.w, sep)
	return err
}
