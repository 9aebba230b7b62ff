package main

import (
	"context"
	"errors"
	"fmt"

	docbind "github.com/alnah/go-docbind"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput     = errors.New("no input directory specified")
	ErrBadFlags    = errors.New("invalid flags")
	ErrWriteOutput = errors.New("failed to write output file")
)

// Compiler is the interface for the compilation pipeline.
type Compiler interface {
	Compile(ctx context.Context, dir string) (*docbind.Result, error)
	CompileHTML(ctx context.Context, dir string) (*docbind.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Compiler = (*docbind.Compiler)(nil)

// compilerFactory builds the pipeline; tests inject a fake.
type compilerFactory func(opts ...docbind.Option) (Compiler, error)

// newCompiler is the production factory.
func newCompiler(opts ...docbind.Option) (Compiler, error) {
	return docbind.NewCompiler(opts...)
}

// run dispatches the subcommand and returns the process exit code.
// The bare form "docbind <dir>" is shorthand for "docbind compile <dir>".
func run(args []string, env *Environment, factory compilerFactory) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "compile":
		return exitFor(runCompile(args[1:], env, factory), env)
	case "doctor":
		return runDoctorCmd(args[1:], env)
	case "version":
		fmt.Fprintln(env.Stdout, "docbind", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(args[1:], env)
		return ExitSuccess
	default:
		// Treat anything else as an input path for compile.
		return exitFor(runCompile(args, env, factory), env)
	}
}

// exitFor logs the error (if any) and maps it to an exit code.
func exitFor(err error, env *Environment) int {
	if err != nil {
		fmt.Fprintln(env.Stderr, "Error:", err)
	}
	return exitCodeFor(err)
}
