// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
	ErrNoUniqueName           = errors.New("could not find an unused output name")
)

// outputTimeFormat produces the <YYYYMMDD>_<HHMMSS> part of output names.
const outputTimeFormat = "20060102_150405"

// maxNameAttempts bounds the collision counter in UniqueOutputPath.
const maxNameAttempts = 1000

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := validateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "docbind-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, writeErr := tmpFile.WriteString(content); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// validateExtension checks that the extension is safe for temp file names.
func validateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// OutputName returns the timestamped output file name, e.g.
// "compiled_docs_20260825_153000.pdf".
func OutputName(base string, t time.Time) string {
	return fmt.Sprintf("%s_%s.pdf", base, t.Format(outputTimeFormat))
}

// UniqueOutputPath joins dir with the timestamped name, appending a numeric
// suffix when the name is already taken. Two runs within the same second get
// "..._153000.pdf" and "..._153000_2.pdf" instead of a collision.
func UniqueOutputPath(dir, base string, t time.Time) (string, error) {
	name := OutputName(base, t)
	candidate := filepath.Join(dir, name)
	if !FileExists(candidate) {
		return candidate, nil
	}

	stem := strings.TrimSuffix(name, ".pdf")
	for i := 2; i <= maxNameAttempts; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.pdf", stem, i))
		if !FileExists(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoUniqueName, name)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
