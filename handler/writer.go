package handler

import (
	"io"

	"github.com/jsonsieve/jsonsieve/path"
)

// A Writer writes each matched value to an io.Writer, followed by a
// separator.
type Writer struct {
	// W receives the output.
	W io.Writer

	// Separator is written after each value.  Leave empty for "\n".
	Separator string

	// WithPath prefixes each value with its path and ": ".
	WithPath bool
}

var _ Handler = &Writer{}

func (w *Writer) Start(p path.Path, matcherIdx int, off int) error {
	if !w.WithPath {
		return nil
	}
	if _, err := io.WriteString(w.W, p.String()); err != nil {
		return err
	}
	_, err := io.WriteString(w.W, ": ")
	return err
}

func (w *Writer) Feed(data []byte, matcherIdx int) error {
	_, err := w.W.Write(data)
	return err
}

func (w *Writer) End(p path.Path, matcherIdx int, off int) error {
	sep := w.Separator
	if sep == "" {
		sep = "\n"
	}
	_, err := io.WriteString(w.W, sep)
	return err
}
