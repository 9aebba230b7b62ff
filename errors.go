package docbind

import "errors"

// Sentinel errors for library operations.
var (
	// Fatal, pre-pipeline.
	ErrDirectoryNotFound = errors.New("input directory not found")

	// Extraction errors, isolated to one file.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrTextDecode        = errors.New("text file is not valid UTF-8")
	ErrExtract           = errors.New("content extraction failed")

	// Isolated to one image block, does not fail the whole file.
	ErrImageDecode = errors.New("image decode failed")

	// Browser errors from the PDF renderer.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Option validation errors.
	ErrInvalidImageBound  = errors.New("invalid image bound")
	ErrInvalidJPEGQuality = errors.New("invalid JPEG quality")
)
