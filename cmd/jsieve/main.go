// Command jsieve extracts sub-documents from JSON input as it streams in.
//
//	jsieve extract -m '{"users"}[]{"name"}' data.json
//	curl -sN https://example.com/feed | jsieve extract -m '**{"id"}'
//	jsieve analyse data.json
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprint(colorable.NewColorableStderr(), "jsieve: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
