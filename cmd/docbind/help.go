package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docbind <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  compile    Compile a directory of documents into one PDF")
	fmt.Fprintln(w, "  doctor     Check Chrome and environment readiness")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docbind help <command>' for details on a specific command.")
}

// printCompileUsage prints usage for the compile command.
func printCompileUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docbind compile <input-dir> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile every supported file under <input-dir> (.pdf .docx .xlsx .txt")
	fmt.Fprintln(w, ".jpg .jpeg .png .gif) into a single PDF named")
	fmt.Fprintln(w, "compiled_docs_<YYYYMMDD>_<HHMMSS>.pdf. Files that fail to extract are")
	fmt.Fprintln(w, "reported and appear as failure notices in the output; they never abort")
	fmt.Fprintln(w, "the run.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default: working directory)")
	fmt.Fprintln(w, "  -c, --config <path>       YAML config file")
	fmt.Fprintln(w, "      --html-only           Write intermediate HTML instead of PDF")
	fmt.Fprintln(w, "      --image-max <px>      Max embedded image dimension")
	fmt.Fprintln(w, "      --jpeg-quality <n>    Embedded image JPEG quality (1-100)")
	fmt.Fprintln(w, "      --no-footer           Disable the page-number footer")
	fmt.Fprintln(w, "      --timeout <d>         PDF render timeout (e.g. 90s)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file detail and verification")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "compile":
		printCompileUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: docbind doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome/Chromium availability and environment readiness.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: docbind version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
