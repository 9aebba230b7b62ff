package main

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// verifyOutput checks the written PDF with pdfcpu: structural validation and
// page count. A broken output is worth knowing about, but the document was
// already written, so verification problems are warnings, never fatal.
func verifyOutput(outPath string, flags *compileFlags, env *Environment) {
	if err := api.ValidateFile(outPath, nil); err != nil {
		fmt.Fprintf(env.Stderr, "warn: output validation: %v\n", err)
		return
	}

	if !flags.verbose {
		return
	}

	pages, err := api.PageCountFile(outPath)
	if err != nil {
		fmt.Fprintf(env.Stderr, "warn: page count: %v\n", err)
		return
	}
	fmt.Fprintf(env.Stderr, "Verified %s (%d pages)\n", outPath, pages)
}
