package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	docbind "github.com/alnah/go-docbind"
	"github.com/alnah/go-docbind/internal/config"
	"github.com/alnah/go-docbind/internal/fileutil"
)

// File permission for the output PDF.
const filePermissions = 0o644 // rw-r--r--

// runCompile executes the compile command: scan the input directory, compile
// it to one PDF, and write the result under a timestamped name.
func runCompile(args []string, env *Environment, factory compilerFactory) error {
	flags, positional, err := parseCompileFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}
	inputDir := positional[0]

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.Load(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}
	mergeFlags(flags, cfg)

	comp, err := factory(buildOptions(flags, cfg, env)...)
	if err != nil {
		return err
	}
	defer comp.Close()

	ctx := context.Background()
	var result *docbind.Result
	if flags.htmlOnly {
		result, err = comp.CompileHTML(ctx, inputDir)
	} else {
		result, err = comp.Compile(ctx, inputDir)
	}
	if err != nil {
		return err
	}

	outPath, err := writeOutput(result, flags, cfg, env)
	if err != nil {
		return err
	}

	if !flags.htmlOnly {
		verifyOutput(outPath, flags, env)
	}

	printSummary(result, outPath, flags, env)
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *compileFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.imageMax > 0 {
		cfg.Image.MaxDimension = flags.imageMax
	}
	if flags.jpegQuality > 0 {
		cfg.Image.JPEGQuality = flags.jpegQuality
	}
	if flags.noFooter {
		cfg.Render.PageNumbers = false
	}
}

// buildOptions translates config into compiler options, wiring the CLI's
// clock and status reporter into the pipeline.
func buildOptions(flags *compileFlags, cfg *config.Config, env *Environment) []docbind.Option {
	opts := []docbind.Option{
		docbind.WithImageBound(cfg.Image.MaxDimension),
		docbind.WithJPEGQuality(cfg.Image.JPEGQuality),
		docbind.WithPageNumbers(cfg.Render.PageNumbers),
		docbind.WithClock(env.Now),
	}
	if flags.timeout > 0 {
		opts = append(opts, docbind.WithTimeout(flags.timeout))
	}
	if !flags.quiet {
		opts = append(opts, docbind.WithLogf(func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	}
	return opts
}

// writeOutput writes the compiled bytes once, via a staging file and atomic
// rename so a crash mid-write never leaves a truncated output.
func writeOutput(result *docbind.Result, flags *compileFlags, cfg *config.Config, env *Environment) (string, error) {
	outDir := cfg.Output.Dir
	if outDir == "" {
		outDir = "."
	}

	outPath, err := fileutil.UniqueOutputPath(outDir, cfg.Output.BaseName, env.Now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	data := result.PDF
	if flags.htmlOnly {
		outPath = strings.TrimSuffix(outPath, ".pdf") + ".html"
		data = result.HTML
	}

	staging := outPath + ".tmp"
	if err := os.WriteFile(staging, data, filePermissions); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := os.Rename(staging, outPath); err != nil {
		_ = os.Remove(staging)
		return "", fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	return outPath, nil
}

// printSummary prints the final status line.
func printSummary(result *docbind.Result, outPath string, flags *compileFlags, env *Environment) {
	if flags.quiet {
		return
	}

	failed := result.Failures()
	fmt.Fprintf(env.Stderr, "Compiled %d file(s), %d failed -> %s\n",
		len(result.Sections), failed, outPath)

	if flags.verbose {
		for _, s := range result.Sections {
			status := "ok"
			if s.Failed {
				status = "FAILED"
			}
			fmt.Fprintf(env.Stderr, "  %-6s %-10s %s (%d blocks, %s)\n",
				status, s.Kind, s.File.RelPath, s.Blocks, s.Duration)
		}
	}
}
