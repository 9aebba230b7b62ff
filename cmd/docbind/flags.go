package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
)

// compileFlags holds parsed flags for the compile command.
type compileFlags struct {
	output      string
	config      string
	htmlOnly    bool
	imageMax    int
	jpegQuality int
	noFooter    bool
	timeout     time.Duration
	quiet       bool
	verbose     bool
}

// parseCompileFlags parses compile command flags and returns the remaining
// positional arguments.
func parseCompileFlags(args []string) (*compileFlags, []string, error) {
	f := &compileFlags{}

	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SortFlags = false
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: working directory)")
	fs.StringVarP(&f.config, "config", "c", "", "YAML config file path")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write intermediate HTML instead of PDF")
	fs.IntVar(&f.imageMax, "image-max", 0, "max embedded image dimension in px (0 = config/default)")
	fs.IntVar(&f.jpegQuality, "jpeg-quality", 0, "embedded image JPEG quality 1-100 (0 = config/default)")
	fs.BoolVar(&f.noFooter, "no-footer", false, "disable the page-number footer")
	fs.DurationVar(&f.timeout, "timeout", 0, "PDF render timeout (0 = default)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress and verification")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadFlags, err)
	}

	return f, fs.Args(), nil
}
