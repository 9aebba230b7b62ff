package main

import (
	"errors"
	"os"

	docbind "github.com/alnah/go-docbind"
	"github.com/alnah/go-docbind/internal/config"
)

// Exit codes for the docbind CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Per-file extraction failures are NOT errors: the run exits 0 as long as the
// output PDF was written.
const (
	ExitSuccess = 0 // Output written (even if individual files failed)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Missing input directory, output write failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, docbind.ErrBrowserConnect) ||
		errors.Is(err, docbind.ErrPageCreate) ||
		errors.Is(err, docbind.ErrPageLoad) ||
		errors.Is(err, docbind.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, docbind.ErrDirectoryNotFound) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrBadFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, docbind.ErrInvalidImageBound) ||
		errors.Is(err, docbind.ErrInvalidJPEGQuality) {
		return ExitUsage
	}

	return ExitGeneral
}
